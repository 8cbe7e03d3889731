package cli

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/fibgen/internal/config"
	"github.com/aretw0/fibgen/pkg/adapters/file"
	"github.com/aretw0/fibgen/pkg/adapters/memory"
	"github.com/aretw0/fibgen/pkg/adapters/redis"
	"github.com/aretw0/fibgen/pkg/ports"
)

// OpenStore builds the record store selected by cfg.
// It returns a nil store for the "none" driver. The returned close function is never nil.
func OpenStore(ctx context.Context, cfg config.StoreConfig, logger *slog.Logger) (ports.RecordStore, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Driver {
	case config.DriverNone:
		logger.Debug("Request journal disabled")
		return nil, noop, nil
	case config.DriverMemory:
		return memory.NewStore(), noop, nil
	case config.DriverFile:
		logger.Debug("Using file journal", "path", cfg.Path)
		return file.New(cfg.Path), noop, nil
	case config.DriverRedis:
		store := redis.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, redis.WithTTL(cfg.TTL))
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		defer cancel()
		if err := store.Ping(pingCtx); err != nil {
			_ = store.Close()
			return nil, noop, err
		}
		logger.Debug("Using redis journal", "addr", cfg.RedisAddr, "ttl", cfg.TTL)
		return store, store.Close, nil
	}
	return nil, noop, fmt.Errorf("unknown store driver %q", cfg.Driver)
}
