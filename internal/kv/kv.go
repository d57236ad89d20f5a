// Package kv persists small string-keyed values on the local machine.
package kv

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Store is a persisted key/value map.
type Store interface {
	// Get returns the value stored under key. ok is false when the key is
	// absent.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}

// Backend names accepted by Open.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// BaseDir returns the root data directory (~/.ttk).
func BaseDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".ttk"), nil
}

// DefaultPath returns the default location of a backend's data file inside
// base.
func DefaultPath(base, backend string) string {
	if backend == BackendSQLite {
		return filepath.Join(base, "ttk.db")
	}
	return filepath.Join(base, "storage.json")
}

// Open opens the named backend at path.
func Open(backend, path string) (Store, error) {
	switch backend {
	case BackendFile, "":
		return NewFileStore(path), nil
	case BackendSQLite:
		return OpenSQLite(path)
	default:
		return nil, fmt.Errorf("unknown storage backend %q (want %q or %q)", backend, BackendFile, BackendSQLite)
	}
}
