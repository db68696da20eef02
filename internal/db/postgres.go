package db

import (
	"context"
	"fmt"
	"time"

	"loantracker/pkg/types"

	"github.com/jackc/pgx/v5/pgxpool"
)

func Connect(ctx context.Context, config *types.Config) (*pgxpool.Pool, error) {
	poolConfig, err := PoolConfig(config)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return pool, nil
}

// PoolConfig parses DATABASE_URL and pins search_path to the configured
// schema, replacing any search_path the URL carries. EnsureSchema creates the
// documents table in that same schema.
func PoolConfig(config *types.Config) (*pgxpool.Config, error) {
	if config.DatabaseURL == "" {
		return nil, fmt.Errorf("set DATABASE_URL: %w", types.ErrStoreUnavailable)
	}

	poolConfig, err := pgxpool.ParseConfig(config.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	poolConfig.ConnConfig.RuntimeParams["search_path"] = config.SchemaName()

	poolConfig.MaxConnIdleTime = 15 * time.Minute
	poolConfig.MaxConnLifetime = 45 * time.Minute

	return poolConfig, nil
}
