package main

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var migrateCommand = &cli.Command{
	Name:  "migrate",
	Usage: "Create the document store schema and table",
	Action: func(c *cli.Context) error {
		cfg, err := loadConfig(c.String("env-prefix"))
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		ctx := context.Background()

		_, pool, err := openRepository(ctx, cfg)
		if err != nil {
			return fmt.Errorf("failed to prepare document store: %w", err)
		}
		defer pool.Close()

		logrus.WithField("schema", cfg.SchemaName()).Info("document store ready")

		return nil
	},
}
