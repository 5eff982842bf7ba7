package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const sqliteTimeLayout = time.RFC3339Nano

// SQLiteStore keeps the snapshot as one row of the planner_state table.
type SQLiteStore struct {
	db  *sql.DB
	key string
	now func() time.Time
}

func NewSQLiteStore(db *sql.DB, key string) (*SQLiteStore, error) {
	if db == nil {
		return nil, errors.New("storage: nil db")
	}
	if key == "" {
		key = DefaultKey
	}
	return &SQLiteStore{db: db, key: key, now: time.Now}, nil
}

// OpenSQLite opens path and applies pending migrations.
func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := MigrateUp(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	s, err := NewSQLiteStore(db, DefaultKey)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Load(ctx context.Context) ([]byte, error) {
	var raw []byte
	err := s.db.QueryRowContext(ctx, `SELECT snapshot FROM planner_state WHERE key = ?`, s.key).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}
	return raw, nil
}

func (s *SQLiteStore) Save(ctx context.Context, snapshot []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO planner_state (key, snapshot, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET snapshot = excluded.snapshot, updated_at = excluded.updated_at`,
		s.key, snapshot, s.now().UTC().Format(sqliteTimeLayout),
	)
	return err
}

// UpdatedAt reports when the snapshot was last saved.
func (s *SQLiteStore) UpdatedAt(ctx context.Context) (time.Time, error) {
	var raw string
	err := s.db.QueryRowContext(ctx, `SELECT updated_at FROM planner_state WHERE key = ?`, s.key).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return time.Time{}, ErrNotFound
		}
		return time.Time{}, err
	}
	return time.Parse(sqliteTimeLayout, raw)
}
