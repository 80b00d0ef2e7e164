package db

func (db *DB) initSchema() error {
	schema := `
	-- Generated screening questions, keyed by normalized stack + experience.
	-- Holds no candidate data.
	CREATE TABLE IF NOT EXISTS question_cache (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		cache_key TEXT UNIQUE NOT NULL,
		tech_stack TEXT NOT NULL,
		experience TEXT NOT NULL,
		questions TEXT NOT NULL,
		provider TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		last_used_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_question_cache_created_at ON question_cache(created_at);

	CREATE TABLE IF NOT EXISTS schema_version (
		version INTEGER NOT NULL
	);
	`

	_, err := db.conn.Exec(schema)
	return err
}
