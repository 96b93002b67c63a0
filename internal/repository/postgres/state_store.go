package postgres

import (
	"clockstore-backend/internal/domain"
	"clockstore-backend/pkg/logger"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const driverName = "postgres"

const (
	getStateSQL = `SELECT value FROM session_state WHERE session_id = $1 AND state_key = $2`

	upsertStateSQL = `
INSERT INTO session_state (session_id, state_key, value, updated_at)
VALUES ($1, $2, $3, NOW())
ON CONFLICT (session_id, state_key)
DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`

	deleteStateSQL = `DELETE FROM session_state WHERE session_id = $1 AND state_key = $2`
)

type stateStore struct {
	db *pgxpool.Pool
}

func NewStateStore(db *pgxpool.Pool) domain.StateStore {
	return &stateStore{db: db}
}

func (s *stateStore) Get(ctx context.Context, sessionID, key string) ([]byte, bool, error) {
	start := time.Now()
	var value string
	err := s.db.QueryRow(ctx, getStateSQL, sessionID, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		logger.StateOp(ctx, driverName, "get", key, time.Since(start), nil)
		return nil, false, nil
	}
	logger.StateOp(ctx, driverName, "get", key, time.Since(start), err)
	if err != nil {
		return nil, false, fmt.Errorf("failed to read session state %s: %w", key, err)
	}
	return []byte(value), true, nil
}

func (s *stateStore) Set(ctx context.Context, sessionID, key string, value []byte) error {
	start := time.Now()
	_, err := s.db.Exec(ctx, upsertStateSQL, sessionID, key, string(value))
	logger.StateOp(ctx, driverName, "set", key, time.Since(start), err)
	if err != nil {
		return fmt.Errorf("failed to write session state %s: %w", key, err)
	}
	return nil
}

func (s *stateStore) Delete(ctx context.Context, sessionID, key string) error {
	start := time.Now()
	_, err := s.db.Exec(ctx, deleteStateSQL, sessionID, key)
	logger.StateOp(ctx, driverName, "delete", key, time.Since(start), err)
	if err != nil {
		return fmt.Errorf("failed to delete session state %s: %w", key, err)
	}
	return nil
}
