package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/DoughGuardian_Go/internal/config"
	"github.com/osse101/DoughGuardian_Go/internal/database"
	"github.com/osse101/DoughGuardian_Go/internal/database/postgres"
	"github.com/osse101/DoughGuardian_Go/internal/database/redis"
	"github.com/osse101/DoughGuardian_Go/internal/repository"
	"github.com/osse101/DoughGuardian_Go/internal/savefile"
)

// Store is a progress store together with the resources backing it
type Store interface {
	repository.ProgressStore
	repository.PlayerLister
}

// OpenStore opens the backend selected by STORE_BACKEND. Postgres schemas
// are migrated before use. The returned closer releases connections.
func OpenStore(ctx context.Context, cfg *config.Config) (Store, func(), error) {
	switch cfg.StoreBackend {
	case config.StoreBackendFile:
		store, err := savefile.NewFileStore(cfg.SaveDir)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", ErrMsgOpenFileStore, err)
		}
		slog.Info(LogMsgStoreOpened, "backend", cfg.StoreBackend, "dir", cfg.SaveDir)
		return store, func() {}, nil

	case config.StoreBackendPostgres:
		pool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", ErrMsgOpenPostgres, err)
		}
		if err := database.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("%s: %w", ErrMsgMigratePostgres, err)
		}
		slog.Info(LogMsgStoreOpened, "backend", cfg.StoreBackend, "host", cfg.DBHost, "db", cfg.DBName)
		return postgres.NewProgressRepository(pool), pool.Close, nil

	case config.StoreBackendRedis:
		client, err := redis.Connect(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", ErrMsgOpenRedis, err)
		}
		slog.Info(LogMsgStoreOpened, "backend", cfg.StoreBackend, "addr", cfg.RedisAddr)
		return redis.NewProgressStore(client), func() { _ = client.Close() }, nil
	}

	return nil, nil, fmt.Errorf(ErrMsgUnknownBackend, cfg.StoreBackend)
}
