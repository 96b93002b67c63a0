package main

import (
	"clockstore-backend/config"
	"clockstore-backend/internal/delivery/http/middleware"
	v1 "clockstore-backend/internal/delivery/http/v1"
	"clockstore-backend/internal/domain"
	"clockstore-backend/internal/infrastructure/cache"
	"clockstore-backend/internal/repository/memory"
	"clockstore-backend/internal/repository/postgres"
	"clockstore-backend/internal/repository/r2"
	"clockstore-backend/internal/repository/static"
	"clockstore-backend/internal/usecase"
	"clockstore-backend/pkg/logger"
	"clockstore-backend/pkg/storage"
	"clockstore-backend/pkg/utils"
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/NYTimes/gziphandler"
	"golang.org/x/time/rate"
)

const serviceName = "clockstore-backend"

func main() {
	cfg := config.LoadConfig()
	utils.SetSecret(cfg.SessionSecret)

	// Initialize Logger
	logger.Init(cfg.Env, cfg.LogLevel)
	log := logger.Get()

	ctx := context.Background()

	// Session state store
	stateStore, closeStore, err := newStateStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.StateDriver).Msg("Failed to initialize state store")
	}
	defer closeStore()
	log.Info().Str("driver", cfg.StateDriver).Msg("Session state store ready")

	// Catalog
	productRepo, err := static.NewProductRepository()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load catalog")
	}

	// Default expiration follows the catalog TTL, cleanup every 2x
	memCache := cache.NewMemoryCache(cfg.CacheCatalogTTL, 2*cfg.CacheCatalogTTL)

	// --- Modules Initialization ---
	state := usecase.NewSessionState(stateStore)
	badge := usecase.BadgeLogger{}

	catalogUC := usecase.NewCatalogUsecase(productRepo, state, memCache, cfg)
	structuredDataUC := usecase.NewStructuredDataUsecase(catalogUC, cfg.StoreBaseURL)
	cartUC := usecase.NewCartUsecase(productRepo, state, cfg, badge)
	couponUC := usecase.NewCouponUsecase(state)
	checkoutUC := usecase.NewCheckoutUsecase(state, badge)
	wishlistUC := usecase.NewWishlistUsecase(productRepo, state)
	newsletterUC := usecase.NewNewsletterUsecase(state)

	handlers := &v1.Handlers{
		Session:    v1.NewSessionHandler(cfg),
		Catalog:    v1.NewCatalogHandler(catalogUC, structuredDataUC),
		Config:     v1.NewConfigHandler(catalogUC, cfg.CacheEnumsTTL),
		Cart:       v1.NewCartHandler(cartUC, couponUC),
		Order:      v1.NewOrderHandler(checkoutUC),
		Wishlist:   v1.NewWishlistHandler(wishlistUC),
		Newsletter: v1.NewNewsletterHandler(newsletterUC),
		Health:     v1.NewHealthHandler(cfg.StateDriver),
	}

	// Set up Router
	mux := http.NewServeMux()
	handlers.Register(mux, middleware.NewSessionMiddleware(cfg))

	// Cleanup every minute, forget clients idle for 3 minutes
	rateLimiter := middleware.NewRateLimiter(
		ctx,
		rate.Limit(cfg.RateLimitRPS),
		cfg.RateLimitBurst,
		time.Minute,
		3*time.Minute,
	)

	// Apply CORS, Request Logger, Rate Limit, and Gzip
	handler := middleware.NewCORSMiddleware(cfg)(mux)
	handler = middleware.RequestLogger(handler)
	handler = rateLimiter.Middleware()(handler)
	handler = gziphandler.GzipHandler(handler)

	addr := fmt.Sprintf(":%s", cfg.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful Shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	logger.ServiceStart(serviceName, "1.0.0", cfg.Port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Server shutting down...")
	rateLimiter.Shutdown()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	logger.ServiceStop(serviceName)
}

// newStateStore builds the backend selected by STATE_DRIVER and returns a
// func releasing its resources.
func newStateStore(ctx context.Context, cfg *config.Config) (domain.StateStore, func(), error) {
	switch cfg.StateDriver {
	case config.StateDriverPostgres:
		pool, err := postgres.NewPgxPool(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		if err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return postgres.NewStateStore(pool), pool.Close, nil

	case config.StateDriverR2:
		objects, err := storage.NewR2Storage(
			ctx,
			cfg.R2AccountID,
			cfg.R2AccessKeyID,
			cfg.R2AccessKeySecret,
			cfg.R2BucketName,
			cfg.R2Timeout,
		)
		if err != nil {
			return nil, nil, err
		}
		return r2.NewStateStore(objects), func() {}, nil

	default:
		return memory.NewStateStore(cfg.StateTTL), func() {}, nil
	}
}
