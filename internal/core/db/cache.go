package db

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// sqliteTime matches the layout CURRENT_TIMESTAMP writes (UTC)
const sqliteTime = "2006-01-02 15:04:05"

// CachedQuestions is one cached generator result
type CachedQuestions struct {
	Key        string
	TechStack  string
	Experience string
	Questions  []string
	Provider   string
	CreatedAt  time.Time
	LastUsedAt time.Time
	HitCount   int
}

// GetCachedQuestions looks up a cache entry and records the hit.
// Returns nil, nil when the key is not cached.
func (db *DB) GetCachedQuestions(key string) (*CachedQuestions, error) {
	var (
		entry             CachedQuestions
		questionsJSON     string
		provider          sql.NullString
		created, lastUsed sql.NullString
	)
	err := db.conn.QueryRow(`
		SELECT cache_key, tech_stack, experience, questions, provider, created_at, last_used_at, hit_count
		FROM question_cache WHERE cache_key = ?
	`, key).Scan(&entry.Key, &entry.TechStack, &entry.Experience, &questionsJSON, &provider, &created, &lastUsed, &entry.HitCount)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query cache: %w", err)
	}

	if err := json.Unmarshal([]byte(questionsJSON), &entry.Questions); err != nil {
		return nil, fmt.Errorf("decode cached questions: %w", err)
	}
	entry.Provider = provider.String
	entry.CreatedAt = parseTimestamp(created.String)
	entry.LastUsedAt = parseTimestamp(lastUsed.String)

	_, err = db.conn.Exec(`
		UPDATE question_cache
		SET hit_count = hit_count + 1, last_used_at = CURRENT_TIMESTAMP
		WHERE cache_key = ?
	`, key)
	if err != nil {
		return nil, fmt.Errorf("record cache hit: %w", err)
	}
	entry.HitCount++

	return &entry, nil
}

// PutCachedQuestions inserts or replaces the entry for entry.Key
func (db *DB) PutCachedQuestions(entry CachedQuestions) error {
	if len(entry.Questions) == 0 {
		return fmt.Errorf("refusing to cache an empty question list")
	}

	questionsJSON, err := json.Marshal(entry.Questions)
	if err != nil {
		return fmt.Errorf("encode questions: %w", err)
	}

	_, err = db.conn.Exec(`
		INSERT INTO question_cache (cache_key, tech_stack, experience, questions, provider, created_at, last_used_at)
		VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		ON CONFLICT(cache_key) DO UPDATE SET
			tech_stack = excluded.tech_stack,
			experience = excluded.experience,
			questions = excluded.questions,
			provider = excluded.provider,
			created_at = CURRENT_TIMESTAMP,
			last_used_at = CURRENT_TIMESTAMP
	`, entry.Key, entry.TechStack, entry.Experience, string(questionsJSON), entry.Provider)
	if err != nil {
		return fmt.Errorf("upsert cache entry: %w", err)
	}
	return nil
}

// PruneCache deletes entries created before the given time
func (db *DB) PruneCache(before time.Time) (int64, error) {
	result, err := db.conn.Exec(`DELETE FROM question_cache WHERE created_at < ?`, before.UTC().Format(sqliteTime))
	if err != nil {
		return 0, fmt.Errorf("prune cache: %w", err)
	}
	return result.RowsAffected()
}

// ClearCache deletes every entry
func (db *DB) ClearCache() (int64, error) {
	result, err := db.conn.Exec(`DELETE FROM question_cache`)
	if err != nil {
		return 0, fmt.Errorf("clear cache: %w", err)
	}
	return result.RowsAffected()
}
