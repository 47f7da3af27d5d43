package bootstrap

import (
	"context"
	"fmt"

	"github.com/osse101/GemClicker_Go/internal/catalog"
	"github.com/osse101/GemClicker_Go/internal/config"
	"github.com/osse101/GemClicker_Go/internal/database"
	"github.com/osse101/GemClicker_Go/internal/database/postgres"
	"github.com/osse101/GemClicker_Go/internal/logger"
	"github.com/osse101/GemClicker_Go/internal/repository"
	"github.com/osse101/GemClicker_Go/internal/storage/file"
	"github.com/osse101/GemClicker_Go/internal/storage/memory"
	"github.com/osse101/GemClicker_Go/internal/storage/objectstore"
)

// LoadCatalog loads the catalog file named by cfg.CatalogPath, or the embedded
// catalog when no path is configured.
func LoadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	cat, err := catalog.LoadOrDefault(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
	}

	source := cfg.CatalogPath
	if source == "" {
		source = CatalogSourceEmbedded
	}
	logger.Info(LogMsgCatalogLoaded,
		"source", source,
		"version", cat.Version,
		"upgrades", len(cat.Upgrades),
		"quests", len(cat.Quests),
		"achievements", len(cat.Achievements),
		"skills", len(cat.Skills))
	return cat, nil
}

// OpenSaveStore opens the save store selected by cfg.StorageBackend. The
// returned close function releases any connections and is never nil.
func OpenSaveStore(ctx context.Context, cfg *config.Config) (repository.SaveStore, func(), error) {
	noop := func() {}

	var (
		store   repository.SaveStore
		closeFn = noop
	)
	switch cfg.StorageBackend {
	case config.BackendMemory:
		store = memory.NewStore()

	case config.BackendFile:
		fs, err := file.NewStore(cfg.SaveDir)
		if err != nil {
			return nil, noop, fmt.Errorf("%s: %w", ErrMsgFailedOpenFileStore, err)
		}
		store = fs

	case config.BackendPostgres:
		pool, err := database.NewPool(ctx, cfg.GetDBConnString(), database.PoolConfig{
			MaxConns:    cfg.DBMaxConns,
			MaxIdleTime: cfg.DBMaxConnIdleTime,
			MaxLifetime: cfg.DBMaxConnLifetime,
		})
		if err != nil {
			return nil, noop, fmt.Errorf("%s: %w", ErrMsgFailedConnectDB, err)
		}
		if err := database.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, noop, fmt.Errorf("%s: %w", ErrMsgFailedMigrateDB, err)
		}
		store = postgres.NewSaveRepository(pool)
		closeFn = pool.Close

	case config.BackendS3:
		client, err := objectstore.NewClient(ctx, objectstore.Config{
			Bucket:    cfg.S3Bucket,
			Prefix:    cfg.S3Prefix,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			PathStyle: cfg.S3PathStyle,
		})
		if err != nil {
			return nil, noop, fmt.Errorf("%s: %w", ErrMsgFailedCreateS3, err)
		}
		store = objectstore.NewStore(client, cfg.S3Bucket, cfg.S3Prefix)

	default:
		return nil, noop, fmt.Errorf("%s: %q", ErrMsgUnknownBackend, cfg.StorageBackend)
	}

	logger.Info(LogMsgStoreOpened, "backend", cfg.StorageBackend, "slot", cfg.SaveSlot)
	return store, closeFn, nil
}
