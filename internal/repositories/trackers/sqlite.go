package trackers

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/KirkDiggler/pathtracker/internal/domain/tracker"
	trackererr "github.com/KirkDiggler/pathtracker/internal/errors"
	"github.com/KirkDiggler/pathtracker/internal/repositories"
	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS tracker_saves (
	key        TEXT PRIMARY KEY,
	data       TEXT NOT NULL,
	updated_at INTEGER NOT NULL
)`

// SQLiteRepository keeps one row per save key
type SQLiteRepository struct {
	sqlDB *sql.DB
	now   func() time.Time
}

// OpenSQLite opens (or creates) the database at path and ensures the schema.
// Use ":memory:" for a throwaway database.
func OpenSQLite(path string) (*SQLiteRepository, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	dsn := ":memory:"
	if path != ":memory:" {
		dsn = filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	}

	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// A second connection to :memory: would see an empty database
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.Exec(sqliteSchema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &SQLiteRepository{sqlDB: sqlDB, now: time.Now}, nil
}

// Close closes the SQLite handle
func (s *SQLiteRepository) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Save upserts the document for key
func (s *SQLiteRepository) Save(ctx context.Context, key string, state *tracker.State) error {
	if err := validateKey(key); err != nil {
		return err
	}
	data, err := encode(state)
	if err != nil {
		return err
	}

	_, err = s.sqlDB.ExecContext(ctx, `
INSERT INTO tracker_saves (key, data, updated_at) VALUES (?, ?, ?)
ON CONFLICT(key) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		key, string(data), s.now().UTC().UnixMilli(),
	)
	if err != nil {
		return trackererr.Wrapf(err, "failed to save tracker %s", key)
	}
	return nil
}

// Load reads the document for key
func (s *SQLiteRepository) Load(ctx context.Context, key string) (*tracker.State, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}

	var data string
	err := s.sqlDB.QueryRowContext(ctx, `SELECT data FROM tracker_saves WHERE key = ?`, key).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repositories.NewRecordNotFoundError(key)
		}
		return nil, trackererr.Wrapf(err, "failed to load tracker %s", key)
	}
	return decode(key, []byte(data))
}

// UpdatedAt returns when key was last saved
func (s *SQLiteRepository) UpdatedAt(ctx context.Context, key string) (time.Time, error) {
	var millis int64
	err := s.sqlDB.QueryRowContext(ctx, `SELECT updated_at FROM tracker_saves WHERE key = ?`, key).Scan(&millis)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return time.Time{}, repositories.NewRecordNotFoundError(key)
		}
		return time.Time{}, trackererr.Wrapf(err, "failed to read tracker %s", key)
	}
	return time.UnixMilli(millis).UTC(), nil
}
