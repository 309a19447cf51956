// Package store persists game snapshots. Three backends share one
// interface: in-memory for tests and casual tables, sqlite for a
// single-node deployment, postgres when the server runs with a real
// database.
package store

import (
	"context"
	"errors"

	"texas-lite/holdem"
)

var ErrNotFound = errors.New("snapshot not found")

type Store interface {
	Save(ctx context.Context, gameID string, snap *holdem.Snapshot) error
	Load(ctx context.Context, gameID string) (*holdem.Snapshot, error)
	Delete(ctx context.Context, gameID string) error
	Close() error
}
