package kvstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/itael/inventory-products-api/internal/domain/repository"
)

// Postgres es el adaptador clave→valor sobre PostgreSQL: una tabla única con
// la clave como primary key y el documento como jsonb.
type Postgres struct {
	pool *pgxpool.Pool
}

const createTableSQL = `
CREATE TABLE IF NOT EXISTS kv_entries (
    key        TEXT PRIMARY KEY,
    value      JSONB NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// NewPostgres crea el pool de conexiones, verifica la conexión y asegura la
// tabla de documentos.
func NewPostgres(ctx context.Context, databaseURL string) (*Postgres, error) {
	poolConfig, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}
	poolConfig.MaxConns = 10
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("crear pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping DB: %w", err)
	}
	if _, err := pool.Exec(ctx, createTableSQL); err != nil {
		pool.Close()
		return nil, fmt.Errorf("crear tabla kv_entries: %w", err)
	}
	return &Postgres{pool: pool}, nil
}

// Get devuelve el documento de la clave o repository.ErrKeyNotFound.
func (p *Postgres) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := p.pool.QueryRow(ctx,
		`SELECT value FROM kv_entries WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrKeyNotFound
		}
		return nil, err
	}
	return value, nil
}

// Set inserta o reemplaza el documento de la clave.
func (p *Postgres) Set(ctx context.Context, key string, value []byte) error {
	_, err := p.pool.Exec(ctx, `
		INSERT INTO kv_entries (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		key, value)
	return err
}

// Delete elimina la clave.
func (p *Postgres) Delete(ctx context.Context, key string) error {
	_, err := p.pool.Exec(ctx, `DELETE FROM kv_entries WHERE key = $1`, key)
	return err
}

// Close cierra el pool.
func (p *Postgres) Close() {
	p.pool.Close()
}
