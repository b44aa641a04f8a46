package kvstore

import (
	"context"
	"fmt"

	"github.com/itael/inventory-products-api/internal/domain/repository"
	"github.com/itael/inventory-products-api/pkg/config"
)

// Open construye el adaptador de persistencia según la configuración.
// Drivers soportados: file (por defecto), memory, redis, postgres.
func Open(ctx context.Context, cfg config.StorageConfig) (repository.KVStore, error) {
	switch cfg.Driver {
	case "", "file":
		return NewFile(cfg.Dir)
	case "memory":
		return NewMemory(), nil
	case "redis":
		return NewRedis(ctx, RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
	case "postgres":
		return NewPostgres(ctx, cfg.DatabaseURL)
	default:
		return nil, fmt.Errorf("driver de almacenamiento desconocido: %q", cfg.Driver)
	}
}
