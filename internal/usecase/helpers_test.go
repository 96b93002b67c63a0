package usecase

import (
	"clockstore-backend/config"
	"clockstore-backend/internal/domain"
	infracache "clockstore-backend/internal/infrastructure/cache"
	"clockstore-backend/internal/repository/memory"
	"clockstore-backend/internal/repository/static"
	"clockstore-backend/pkg/cache"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const testSession = "8f14e45f-ceea-4e7a-9b1c-000000000001"

type testDeps struct {
	cfg   *config.Config
	repo  domain.ProductRepository
	store domain.StateStore
	state *SessionState
	cache cache.CacheService
}

func newTestDeps(t *testing.T) *testDeps {
	t.Helper()
	repo, err := static.NewProductRepository()
	require.NoError(t, err)

	store := memory.NewStateStore(0)
	return &testDeps{
		cfg: &config.Config{
			DefaultPageSize: 12,
			CacheCatalogTTL: time.Minute,
			CacheEnumsTTL:   time.Minute,
			StoreBaseURL:    "https://clockstore.example/",
		},
		repo:  repo,
		store: store,
		state: NewSessionState(store),
		cache: infracache.NewMemoryCache(time.Minute, time.Minute),
	}
}

// recordingObserver captures every badge count it is told about.
type recordingObserver struct {
	mu     sync.Mutex
	counts []int
}

func (o *recordingObserver) CartChanged(ctx context.Context, sessionID string, count int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.counts = append(o.counts, count)
}

func (o *recordingObserver) last() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	if len(o.counts) == 0 {
		return -1
	}
	return o.counts[len(o.counts)-1]
}

var errStoreDown = errors.New("store unavailable")

// failingStore fails every operation.
type failingStore struct{}

func (failingStore) Get(ctx context.Context, sessionID, key string) ([]byte, bool, error) {
	return nil, false, errStoreDown
}

func (failingStore) Set(ctx context.Context, sessionID, key string, value []byte) error {
	return errStoreDown
}

func (failingStore) Delete(ctx context.Context, sessionID, key string) error {
	return errStoreDown
}

// keyFailingStore wraps a working store and fails writes to one key once armed.
type keyFailingStore struct {
	domain.StateStore
	failSet string
}

func (s *keyFailingStore) Set(ctx context.Context, sessionID, key string, value []byte) error {
	if key == s.failSet {
		return errStoreDown
	}
	return s.StateStore.Set(ctx, sessionID, key, value)
}

func validForm() domain.CheckoutForm {
	return domain.CheckoutForm{
		FullName:   "Maria Souza",
		Email:      "maria@example.com",
		Phone:      "11999990000",
		CPF:        "12345678900",
		CEP:        "01001000",
		Address:    "Praça da Sé",
		Number:     "100",
		District:   "Sé",
		City:       "São Paulo",
		State:      "SP",
		CardName:   "MARIA SOUZA",
		CardNumber: "4111111111111111",
		CardExpiry: "12/30",
		CardCVV:    "123",
	}
}
