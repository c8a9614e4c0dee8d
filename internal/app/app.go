package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/riskibarqy/club-registry/internal/config"
	"github.com/riskibarqy/club-registry/internal/domain/club"
	cacherepo "github.com/riskibarqy/club-registry/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/club-registry/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/club-registry/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/club-registry/internal/interfaces/httpapi"
	"github.com/riskibarqy/club-registry/internal/platform/cache"
	"github.com/riskibarqy/club-registry/internal/platform/logging"
	"github.com/riskibarqy/club-registry/internal/usecase"
)

// NewHTTPServer wires storage, use cases and the router. The returned close
// func releases the storage handle and must be called after the server stops.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	clubRepo, closeStorage, err := newClubRepository(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	clubSvc := usecase.NewClubService(clubRepo, logger)
	handler := httpapi.NewHandler(clubSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.SwaggerEnabled, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return server, closeStorage, nil
}

func newClubRepository(ctx context.Context, cfg config.Config, logger *logging.Logger) (club.Repository, func() error, error) {
	var (
		repo    club.Repository
		closeFn = func() error { return nil }
	)

	switch cfg.StorageBackend {
	case config.StorageBackendMemory:
		repo = memory.NewClubRepository()
		logger.Warn("using in-memory club storage, data is lost on restart")
	case config.StorageBackendPostgres, "":
		db, err := openDB(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		repo = postgres.NewClubRepository(db)
		closeFn = db.Close
		logger.Info("postgres connected", "db_name", databaseName(cfg.DBURL))
	default:
		return nil, nil, fmt.Errorf("unsupported storage backend %q", cfg.StorageBackend)
	}

	if cfg.CacheEnabled {
		repo = cacherepo.NewClubRepository(repo, cache.NewStore(cfg.CacheTTL))
		logger.Info("club read cache enabled", "ttl", cfg.CacheTTL.String())
	}

	logger.Debug("club repository ready", "backend", cfg.StorageBackend, "cached", cfg.CacheEnabled)
	return repo, closeFn, nil
}
