package db

import (
	"os"
	"testing"
	"time"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()

	tmpfile, err := os.CreateTemp("", "test-*.db")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Remove(tmpfile.Name()) })
	_ = tmpfile.Close()

	database, err := New(tmpfile.Name())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })

	return database
}

func TestNew(t *testing.T) {
	database := newTestDB(t)

	var count int
	err := database.conn.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='question_cache'").Scan(&count)
	if err != nil {
		t.Fatalf("Failed to query schema: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected question_cache table, got %d matches", count)
	}
}

func TestNew_WALMode(t *testing.T) {
	database := newTestDB(t)

	var journalMode string
	if err := database.conn.QueryRow("PRAGMA journal_mode").Scan(&journalMode); err != nil {
		t.Fatalf("Failed to query journal mode: %v", err)
	}

	if journalMode != "wal" {
		t.Errorf("Expected WAL mode, got %s", journalMode)
	}
}

func TestMigrations(t *testing.T) {
	database := newTestDB(t)

	var hasHitCount int
	err := database.conn.QueryRow(`
		SELECT COUNT(*) FROM pragma_table_info('question_cache') WHERE name='hit_count'
	`).Scan(&hasHitCount)
	if err != nil {
		t.Fatal(err)
	}
	if hasHitCount != 1 {
		t.Error("Expected hit_count column after migrations")
	}

	version, err := database.schemaVersion()
	if err != nil {
		t.Fatal(err)
	}
	if version != 1 {
		t.Errorf("schema version = %d, want 1", version)
	}

	// Running migrations again must be a no-op
	if err := database.runMigrations(); err != nil {
		t.Errorf("second runMigrations() error = %v", err)
	}
}

func TestQuestionCache(t *testing.T) {
	database := newTestDB(t)

	entry, err := database.GetCachedQuestions("go|5")
	if err != nil {
		t.Fatalf("GetCachedQuestions() error = %v", err)
	}
	if entry != nil {
		t.Fatalf("Expected cache miss, got %+v", entry)
	}

	err = database.PutCachedQuestions(CachedQuestions{
		Key:        "go|5",
		TechStack:  "Go, PostgreSQL",
		Experience: "5",
		Questions:  []string{"What is a goroutine?", "How do you index a JSONB column?"},
		Provider:   "ollama",
	})
	if err != nil {
		t.Fatalf("PutCachedQuestions() error = %v", err)
	}

	entry, err = database.GetCachedQuestions("go|5")
	if err != nil {
		t.Fatalf("GetCachedQuestions() error = %v", err)
	}
	if entry == nil {
		t.Fatal("Expected cache hit")
	}
	if len(entry.Questions) != 2 || entry.Questions[0] != "What is a goroutine?" {
		t.Errorf("Questions = %v", entry.Questions)
	}
	if entry.Provider != "ollama" {
		t.Errorf("Provider = %q, want ollama", entry.Provider)
	}
	if entry.HitCount != 1 {
		t.Errorf("HitCount = %d, want 1", entry.HitCount)
	}
	if entry.CreatedAt.IsZero() {
		t.Error("CreatedAt not parsed")
	}

	// Replacing keeps a single row
	err = database.PutCachedQuestions(CachedQuestions{
		Key:        "go|5",
		TechStack:  "Go, PostgreSQL",
		Experience: "5",
		Questions:  []string{"Explain context cancellation."},
	})
	if err != nil {
		t.Fatalf("PutCachedQuestions() replace error = %v", err)
	}

	stats, err := database.GetStats()
	if err != nil {
		t.Fatalf("GetStats() error = %v", err)
	}
	if stats.TotalEntries != 1 {
		t.Errorf("TotalEntries = %d, want 1", stats.TotalEntries)
	}
	if stats.TotalQuestions != 1 {
		t.Errorf("TotalQuestions = %d, want 1", stats.TotalQuestions)
	}
	if stats.TopStack != "Go, PostgreSQL" {
		t.Errorf("TopStack = %q", stats.TopStack)
	}
}

func TestPutCachedQuestions_Empty(t *testing.T) {
	database := newTestDB(t)

	if err := database.PutCachedQuestions(CachedQuestions{Key: "x"}); err == nil {
		t.Error("Expected error caching an empty list")
	}
}

func TestPruneAndClear(t *testing.T) {
	database := newTestDB(t)

	for _, key := range []string{"a|1", "b|2", "c|3"} {
		err := database.PutCachedQuestions(CachedQuestions{
			Key: key, TechStack: key, Experience: "1", Questions: []string{"Q"},
		})
		if err != nil {
			t.Fatal(err)
		}
	}

	removed, err := database.PruneCache(time.Now().Add(-time.Hour))
	if err != nil {
		t.Fatalf("PruneCache() error = %v", err)
	}
	if removed != 0 {
		t.Errorf("PruneCache(past) removed %d, want 0", removed)
	}

	removed, err = database.PruneCache(time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("PruneCache() error = %v", err)
	}
	if removed != 3 {
		t.Errorf("PruneCache(future) removed %d, want 3", removed)
	}

	_ = database.PutCachedQuestions(CachedQuestions{Key: "d|4", TechStack: "d", Experience: "4", Questions: []string{"Q"}})
	removed, err = database.ClearCache()
	if err != nil {
		t.Fatalf("ClearCache() error = %v", err)
	}
	if removed != 1 {
		t.Errorf("ClearCache() removed %d, want 1", removed)
	}

	stats, err := database.GetStats()
	if err != nil {
		t.Fatal(err)
	}
	if stats.TotalEntries != 0 {
		t.Errorf("TotalEntries = %d after clear", stats.TotalEntries)
	}
}
