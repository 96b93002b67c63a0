package memory

import (
	"clockstore-backend/internal/domain"
	"clockstore-backend/pkg/logger"
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const driverName = "memory"

type stateStore struct {
	store *gocache.Cache
	ttl   time.Duration
}

// NewStateStore keeps session state in process memory. A ttl of zero keeps
// entries forever; otherwise idle sessions expire ttl after their last write.
func NewStateStore(ttl time.Duration) domain.StateStore {
	expiration, cleanup := gocache.NoExpiration, time.Duration(0)
	if ttl > 0 {
		expiration, cleanup = ttl, ttl/2
	}
	return &stateStore{
		store: gocache.New(expiration, cleanup),
		ttl:   expiration,
	}
}

func stateKey(sessionID, key string) string {
	return sessionID + "/" + key
}

func (s *stateStore) Get(ctx context.Context, sessionID, key string) ([]byte, bool, error) {
	start := time.Now()
	val, found := s.store.Get(stateKey(sessionID, key))
	logger.StateOp(ctx, driverName, "get", key, time.Since(start), nil)
	if !found {
		return nil, false, nil
	}
	b, _ := val.([]byte)
	return append([]byte(nil), b...), true, nil
}

func (s *stateStore) Set(ctx context.Context, sessionID, key string, value []byte) error {
	start := time.Now()
	s.store.Set(stateKey(sessionID, key), append([]byte(nil), value...), s.ttl)
	logger.StateOp(ctx, driverName, "set", key, time.Since(start), nil)
	return nil
}

func (s *stateStore) Delete(ctx context.Context, sessionID, key string) error {
	start := time.Now()
	s.store.Delete(stateKey(sessionID, key))
	logger.StateOp(ctx, driverName, "delete", key, time.Since(start), nil)
	return nil
}
