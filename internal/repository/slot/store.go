// Package slotrepo provides the durable backends behind domain.SlotStore.
package slotrepo

import (
	"context"
	"fmt"

	"dunkstore-backend/config"
	"dunkstore-backend/internal/domain"
	"dunkstore-backend/pkg/cache"
	"dunkstore-backend/pkg/logger"
	"dunkstore-backend/pkg/storage"
)

const slotTable = "storage_slots"

// Store is a SlotStore that owns a connection.
type Store interface {
	domain.SlotStore
	Close() error
}

// Open builds the backend selected by cfg.SlotBackend. mem backs the memory
// backend and is ignored otherwise.
func Open(ctx context.Context, cfg *config.Config, mem cache.CacheService) (Store, error) {
	log := logger.Get()

	switch cfg.SlotBackend {
	case config.SlotBackendMemory:
		log.Warn().Msg("Using in-memory slot storage; shopper state is lost on restart")
		return NewMemoryStore(mem), nil

	case config.SlotBackendSQLite:
		s, err := OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		log.Info().Str("path", cfg.SQLitePath).Msg("Slot storage: sqlite")
		return s, nil

	case config.SlotBackendPostgres:
		pool, err := NewPgxPool(ctx, cfg)
		if err != nil {
			return nil, err
		}
		s, err := NewPostgresStore(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, err
		}
		log.Info().Msg("Slot storage: postgres")
		return s, nil

	case config.SlotBackendRedis:
		s, err := NewRedisStore(ctx, cfg.RedisURL, cfg.RedisKeyPrefix)
		if err != nil {
			return nil, err
		}
		log.Info().Str("prefix", cfg.RedisKeyPrefix).Msg("Slot storage: redis")
		return s, nil

	case config.SlotBackendR2:
		r2, err := storage.NewR2Storage(ctx,
			cfg.R2AccountID,
			cfg.R2AccessKeyID,
			cfg.R2AccessKeySecret,
			cfg.R2BucketName,
			cfg.R2UploadTimeout,
		)
		if err != nil {
			return nil, fmt.Errorf("init r2 storage: %w", err)
		}
		log.Info().Str("bucket", cfg.R2BucketName).Msg("Slot storage: r2")
		return NewR2Store(r2), nil
	}

	return nil, fmt.Errorf("unknown slot backend %q", cfg.SlotBackend)
}
