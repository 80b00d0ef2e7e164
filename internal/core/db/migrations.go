package db

import (
	"database/sql"
	"fmt"
)

// runMigrations brings an existing database up to the current schema
func (db *DB) runMigrations() error {
	version, err := db.schemaVersion()
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}

	// Migration 1: track how often each cache entry is served
	if version < 1 {
		if err := db.migration001AddHitCount(); err != nil {
			return fmt.Errorf("migration 001: %w", err)
		}
		if err := db.setSchemaVersion(1); err != nil {
			return err
		}
	}

	return nil
}

func (db *DB) schemaVersion() (int, error) {
	var version int
	err := db.conn.QueryRow(`SELECT version FROM schema_version LIMIT 1`).Scan(&version)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	return version, err
}

func (db *DB) setSchemaVersion(version int) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM schema_version`); err != nil {
		return fmt.Errorf("clear schema version: %w", err)
	}
	if _, err := tx.Exec(`INSERT INTO schema_version (version) VALUES (?)`, version); err != nil {
		return fmt.Errorf("set schema version: %w", err)
	}
	return tx.Commit()
}

// migration001AddHitCount adds hit_count to question_cache if missing
func (db *DB) migration001AddHitCount() error {
	var hasHitCount bool
	err := db.conn.QueryRow(`
		SELECT COUNT(*) FROM pragma_table_info('question_cache')
		WHERE name='hit_count'
	`).Scan(&hasHitCount)
	if err != nil {
		return err
	}

	if !hasHitCount {
		_, err = db.conn.Exec(`ALTER TABLE question_cache ADD COLUMN hit_count INTEGER NOT NULL DEFAULT 0;`)
		if err != nil {
			return fmt.Errorf("add hit_count column: %w", err)
		}
	}

	return nil
}
