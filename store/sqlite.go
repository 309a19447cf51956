package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"texas-lite/holdem"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS game_snapshots (
    game_id    TEXT PRIMARY KEY,
    round      INTEGER NOT NULL,
    snapshot   TEXT NOT NULL,
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);`

// SQLiteStore 单机部署用的 sqlite 存档
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(path string) (*SQLiteStore, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(ON)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// modernc sqlite tolerates one writer; serialize through the pool.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Save(ctx context.Context, gameID string, snap *holdem.Snapshot) error {
	blob, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
INSERT INTO game_snapshots (game_id, round, snapshot, updated_at)
VALUES (?, ?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(game_id) DO UPDATE SET
    round = excluded.round,
    snapshot = excluded.snapshot,
    updated_at = CURRENT_TIMESTAMP`,
		gameID, snap.Round, string(blob))
	return err
}

func (s *SQLiteStore) Load(ctx context.Context, gameID string) (*holdem.Snapshot, error) {
	var blob string
	err := s.db.QueryRowContext(ctx,
		`SELECT snapshot FROM game_snapshots WHERE game_id = ?`, gameID).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var snap holdem.Snapshot
	if err := json.Unmarshal([]byte(blob), &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

func (s *SQLiteStore) Delete(ctx context.Context, gameID string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM game_snapshots WHERE game_id = ?`, gameID)
	return err
}

func (s *SQLiteStore) Close() error { return s.db.Close() }
