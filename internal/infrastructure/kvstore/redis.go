package kvstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/itael/inventory-products-api/internal/domain/repository"
)

// Redis es el adaptador clave→valor sobre Redis. Los documentos se guardan
// sin TTL: la colección vive hasta que se sobrescribe o elimina.
type Redis struct {
	client *redis.Client
}

// RedisConfig parámetros de conexión.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// NewRedis conecta con Redis y verifica la conexión con un ping.
func NewRedis(ctx context.Context, cfg RedisConfig) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &Redis{client: client}, nil
}

// Get devuelve el documento de la clave o repository.ErrKeyNotFound.
func (r *Redis) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, repository.ErrKeyNotFound
		}
		return nil, err
	}
	return b, nil
}

// Set guarda el documento bajo la clave.
func (r *Redis) Set(ctx context.Context, key string, value []byte) error {
	return r.client.Set(ctx, key, value, 0).Err()
}

// Delete elimina la clave.
func (r *Redis) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}

// Close cierra la conexión.
func (r *Redis) Close() error {
	return r.client.Close()
}
