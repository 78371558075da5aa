package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	_ "modernc.org/sqlite"

	"quicksched/internal/schedule"
	"quicksched/internal/schedule/repository"
	"quicksched/pkg/log"
)

// detailCacheSize bounds the read-through cache for point lookups.
const detailCacheSize = 256

type implRepository struct {
	db    *sql.DB
	loc   *time.Location
	l     log.Logger
	cache *lru.Cache[string, schedule.Schedule]
}

// New creates a SQLite-backed Repository for the schedule domain.
// Timestamps are stored zone-naive and interpreted in loc.
func New(db *sql.DB, loc *time.Location, l log.Logger) repository.Repository {
	if db == nil {
		panic("schedule/repository/sqlite: db is required")
	}
	cache, _ := lru.New[string, schedule.Schedule](detailCacheSize)
	return &implRepository{db: db, loc: loc, l: l, cache: cache}
}

// Open opens (creating if needed) the schedule database at path and runs
// the migrations.
func Open(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return db, nil
}

func migrate(db *sql.DB) error {
	const stmt = `CREATE TABLE IF NOT EXISTS schedules (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		source_text TEXT NOT NULL,
		start_at TEXT NOT NULL,
		end_at TEXT NOT NULL,
		duration_minutes INTEGER NOT NULL,
		calendar_event_id TEXT NOT NULL DEFAULT '',
		html_link TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_schedules_start_at ON schedules(start_at);`

	_, err := db.Exec(stmt)
	return err
}

// dsn returns a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("schedule/repository/sqlite.%s", method)
}
