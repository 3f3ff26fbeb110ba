// Package store persists saved deal analyses in Postgres. A single JSONB
// blob per deal keeps the schema flexible while the worksheet shape is still
// moving.
package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	pool *pgxpool.Pool
	once sync.Once
)

// InitDB initializes the shared connection pool from the given connection
// URL. Safe to call more than once; only the first call connects. An empty
// URL means no database is configured and leaves the pool nil.
func InitDB(ctx context.Context, dbURL string) error {
	var err error
	once.Do(func() {
		pool, err = newPool(ctx, dbURL)
	})
	return err
}

func newPool(ctx context.Context, dbURL string) (*pgxpool.Pool, error) {
	if dbURL == "" {
		return nil, fmt.Errorf("database url not configured")
	}

	config, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}
	return pgxpool.NewWithConfig(ctx, config)
}

// GetPool returns the connection pool, nil before InitDB succeeds.
func GetPool() *pgxpool.Pool {
	return pool
}

// Close closes the connection pool.
func Close() {
	if pool != nil {
		pool.Close()
	}
}
