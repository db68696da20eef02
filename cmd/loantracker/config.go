package main

import (
	"context"
	"fmt"
	"os"

	"loantracker/internal/db"
	"loantracker/internal/store"
	"loantracker/pkg/types"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

func loadConfig(prefix string) (*types.Config, error) {
	c := new(types.Config)
	if err := envconfig.Process(prefix, c); err != nil {
		return nil, fmt.Errorf("process environment config: %w", err)
	}

	if c.ServerPort == 0 {
		c.ServerPort = 8000
	}

	if c.ReadTimeoutSec == 0 {
		c.ReadTimeoutSec = 120
	}

	if c.WriteTimeoutSec == 0 {
		c.WriteTimeoutSec = 150
	}

	if c.MaxBodyBytes <= 0 {
		c.MaxBodyBytes = 32 << 20
	}

	if c.OTPDemoCode == "" {
		c.OTPDemoCode = "123456"
	}

	return c, nil
}

func newLogger(config *types.Config) (*logrus.Logger, error) {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.JSONFormatter{})

	level, err := logrus.ParseLevel(config.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("parse LOG_LEVEL: %w", err)
	}
	logger.SetLevel(level)

	return logger, nil
}

// openRepository connects to the document store and makes sure its table
// exists. The returned pool must be closed by the caller.
func openRepository(ctx context.Context, config *types.Config) (*store.DocumentRepository, *pgxpool.Pool, error) {
	pool, err := db.Connect(ctx, config)
	if err != nil {
		return nil, nil, err
	}

	repo := store.NewDocumentRepository(pool)
	if err := repo.EnsureSchema(ctx, config.SchemaName()); err != nil {
		pool.Close()
		return nil, nil, err
	}

	return repo, pool, nil
}
