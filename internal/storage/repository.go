// Package storage persists the planner snapshot as one opaque document.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// DefaultKey names the snapshot row in key-value backends.
const DefaultKey = "neuraplan_state"

const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

var (
	ErrNotFound       = errors.New("storage: not found")
	ErrUnknownBackend = errors.New("storage: unknown backend")
)

// Backend stores a single snapshot. Load returns nil, nil when nothing has
// been saved yet.
type Backend interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, snapshot []byte) error
	Close() error
}

func Open(ctx context.Context, kind, path string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case BackendJSON, "":
		fs, err := NewFileStore(path)
		if err != nil {
			return nil, err
		}
		return fs, nil
	case BackendSQLite:
		db, err := OpenSQLite(ctx, path)
		if err != nil {
			return nil, err
		}
		return db, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, kind)
	}
}
