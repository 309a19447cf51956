package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "github.com/lib/pq"

	"texas-lite/holdem"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS game_snapshots (
    game_id    TEXT PRIMARY KEY,
    round      INTEGER NOT NULL,
    snapshot   JSONB NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`

// PostgresStore 服务器部署用的 postgres 存档
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(dsn string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	if _, err := db.Exec(postgresSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) Save(ctx context.Context, gameID string, snap *holdem.Snapshot) error {
	blob, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
INSERT INTO game_snapshots (game_id, round, snapshot, updated_at)
VALUES ($1, $2, $3, now())
ON CONFLICT (game_id) DO UPDATE SET
    round = EXCLUDED.round,
    snapshot = EXCLUDED.snapshot,
    updated_at = now()`,
		gameID, snap.Round, blob)
	return err
}

func (s *PostgresStore) Load(ctx context.Context, gameID string) (*holdem.Snapshot, error) {
	var blob []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT snapshot FROM game_snapshots WHERE game_id = $1`, gameID).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var snap holdem.Snapshot
	if err := json.Unmarshal(blob, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

func (s *PostgresStore) Delete(ctx context.Context, gameID string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM game_snapshots WHERE game_id = $1`, gameID)
	return err
}

func (s *PostgresStore) Close() error { return s.db.Close() }
