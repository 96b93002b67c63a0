package r2

import (
	"clockstore-backend/internal/domain"
	"clockstore-backend/pkg/logger"
	"clockstore-backend/pkg/storage"
	"context"
	"errors"
	"fmt"
	"time"
)

const driverName = "r2"

// ObjectStore is the subset of storage.R2Storage the state store needs.
type ObjectStore interface {
	GetObject(ctx context.Context, key string) ([]byte, error)
	PutObject(ctx context.Context, key string, data []byte, contentType string) error
	DeleteObject(ctx context.Context, key string) error
}

type stateStore struct {
	objects ObjectStore
}

// NewStateStore keeps each session value as one JSON object under state/<session>/<key>.json.
func NewStateStore(objects ObjectStore) domain.StateStore {
	return &stateStore{objects: objects}
}

func objectKey(sessionID, key string) string {
	return fmt.Sprintf("state/%s/%s.json", sessionID, key)
}

func (s *stateStore) Get(ctx context.Context, sessionID, key string) ([]byte, bool, error) {
	start := time.Now()
	data, err := s.objects.GetObject(ctx, objectKey(sessionID, key))
	if errors.Is(err, storage.ErrObjectNotFound) {
		logger.StateOp(ctx, driverName, "get", key, time.Since(start), nil)
		return nil, false, nil
	}
	logger.StateOp(ctx, driverName, "get", key, time.Since(start), err)
	if err != nil {
		return nil, false, fmt.Errorf("failed to read session state %s: %w", key, err)
	}
	return data, true, nil
}

func (s *stateStore) Set(ctx context.Context, sessionID, key string, value []byte) error {
	start := time.Now()
	err := s.objects.PutObject(ctx, objectKey(sessionID, key), value, "application/json")
	logger.StateOp(ctx, driverName, "set", key, time.Since(start), err)
	if err != nil {
		return fmt.Errorf("failed to write session state %s: %w", key, err)
	}
	return nil
}

func (s *stateStore) Delete(ctx context.Context, sessionID, key string) error {
	start := time.Now()
	err := s.objects.DeleteObject(ctx, objectKey(sessionID, key))
	logger.StateOp(ctx, driverName, "delete", key, time.Since(start), err)
	if err != nil {
		return fmt.Errorf("failed to delete session state %s: %w", key, err)
	}
	return nil
}
