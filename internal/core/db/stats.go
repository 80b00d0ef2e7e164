package db

import (
	"database/sql"
	"time"
)

// Stats summarizes the question cache
type Stats struct {
	TotalEntries   int
	TotalQuestions int
	TotalHits      int
	OldestEntry    time.Time
	NewestEntry    time.Time
	TopStack       string
	TopStackHits   int
}

// GetStats returns cache statistics
func (db *DB) GetStats() (*Stats, error) {
	stats := &Stats{}

	err := db.QueryRow("SELECT COUNT(*), COALESCE(SUM(hit_count), 0) FROM question_cache").Scan(&stats.TotalEntries, &stats.TotalHits)
	if err != nil {
		return nil, err
	}

	if stats.TotalEntries == 0 {
		return stats, nil
	}

	err = db.QueryRow(`
		SELECT COALESCE(SUM(json_array_length(questions)), 0) FROM question_cache
	`).Scan(&stats.TotalQuestions)
	if err != nil {
		return nil, err
	}

	var oldest, newest sql.NullString
	err = db.QueryRow("SELECT MIN(created_at), MAX(created_at) FROM question_cache").Scan(&oldest, &newest)
	if err != nil {
		return nil, err
	}
	if oldest.Valid {
		stats.OldestEntry = parseTimestamp(oldest.String)
	}
	if newest.Valid {
		stats.NewestEntry = parseTimestamp(newest.String)
	}

	// Most reused stack
	var topStack sql.NullString
	err = db.QueryRow(`
		SELECT tech_stack, hit_count
		FROM question_cache
		ORDER BY hit_count DESC, created_at DESC
		LIMIT 1
	`).Scan(&topStack, &stats.TopStackHits)
	if err != nil && err != sql.ErrNoRows {
		return nil, err
	}
	if topStack.Valid {
		stats.TopStack = topStack.String
	}

	return stats, nil
}
