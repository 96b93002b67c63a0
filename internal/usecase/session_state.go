package usecase

import (
	"clockstore-backend/internal/domain"
	"clockstore-backend/pkg/logger"
	"context"
	"fmt"
	"hash/fnv"
	"sync"

	"github.com/goccy/go-json"
)

const lockStripes = 64

// SessionState reads and writes per-session values through a StateStore and
// serializes read-modify-write sequences of the same session.
type SessionState struct {
	store domain.StateStore
	locks [lockStripes]sync.Mutex
}

func NewSessionState(store domain.StateStore) *SessionState {
	return &SessionState{store: store}
}

// Lock acquires the lock guarding sessionID and returns its release func.
func (s *SessionState) Lock(sessionID string) func() {
	h := fnv.New32a()
	h.Write([]byte(sessionID))
	mu := &s.locks[h.Sum32()%lockStripes]
	mu.Lock()
	return mu.Unlock
}

// loadJSON returns the stored value for key, or def when the key is absent or
// holds text that does not decode into T.
func loadJSON[T any](ctx context.Context, s *SessionState, sessionID, key string, def T) (T, error) {
	raw, found, err := s.store.Get(ctx, sessionID, key)
	if err != nil {
		return def, err
	}
	if !found {
		return def, nil
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		logger.WithContext(ctx).Warn().Err(err).Str("key", key).Msg("Discarding unreadable session state")
		return def, nil
	}
	return v, nil
}

func saveJSON[T any](ctx context.Context, s *SessionState, sessionID, key string, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return s.store.Set(ctx, sessionID, key, raw)
}

func (s *SessionState) remove(ctx context.Context, sessionID, key string) error {
	return s.store.Delete(ctx, sessionID, key)
}

func (s *SessionState) loadCart(ctx context.Context, sessionID string) (*domain.Cart, error) {
	lines, err := loadJSON(ctx, s, sessionID, domain.StateKeyCart, []domain.CartLine{})
	if err != nil {
		return nil, err
	}
	cart := &domain.Cart{Lines: lines}
	cart.Normalize()
	return cart, nil
}

func (s *SessionState) saveCart(ctx context.Context, sessionID string, cart *domain.Cart) error {
	return saveJSON(ctx, s, sessionID, domain.StateKeyCart, cart.Lines)
}

func (s *SessionState) loadCoupon(ctx context.Context, sessionID string) (string, error) {
	return loadJSON(ctx, s, sessionID, domain.StateKeyCoupon, "")
}

func (s *SessionState) loadWishlist(ctx context.Context, sessionID string) (*domain.Wishlist, error) {
	ids, err := loadJSON(ctx, s, sessionID, domain.StateKeyWishlist, []string{})
	if err != nil {
		return nil, err
	}
	w := &domain.Wishlist{ProductIDs: ids}
	w.Dedupe()
	return w, nil
}
