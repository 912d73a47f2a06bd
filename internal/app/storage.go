package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/marketing-studio/internal/adapter/filestore"
	"github.com/heartmarshall/marketing-studio/internal/adapter/postgres"
	"github.com/heartmarshall/marketing-studio/internal/adapter/sqlite"
	"github.com/heartmarshall/marketing-studio/internal/config"
)

// KVStore is the key-value store backing every persisted collection.
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}

var (
	_ KVStore = (*filestore.Store)(nil)
	_ KVStore = (*sqlite.Store)(nil)
	_ KVStore = (*postgres.KVStore)(nil)
)

// OpenStore opens the backend selected by cfg.Driver. The returned close
// function releases its resources and is never nil.
func OpenStore(ctx context.Context, cfg config.StorageConfig, logger *slog.Logger) (KVStore, func(), error) {
	driver := cfg.NormalizedDriver()

	switch driver {
	case config.StorageDriverFile:
		store, err := filestore.Open(cfg.Path)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("storage opened", slog.String("driver", driver), slog.String("path", cfg.Path))
		return store, func() {}, nil

	case config.StorageDriverSQLite:
		store, err := sqlite.Open(ctx, cfg.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite store: %w", err)
		}
		logger.Info("storage opened", slog.String("driver", driver), slog.String("path", cfg.Path))
		return store, func() {
			if err := store.Close(); err != nil {
				logger.Error("close sqlite store", slog.String("error", err.Error()))
			}
		}, nil

	case config.StorageDriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		if err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("migrate postgres: %w", err)
		}
		logger.Info("storage opened", slog.String("driver", driver))
		return postgres.NewKVStore(pool), pool.Close, nil
	}

	return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
}
