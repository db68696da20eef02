package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/k0kubun/pp/v3"
	"github.com/urfave/cli/v2"
)

var recordsCommand = &cli.Command{
	Name:  "records",
	Usage: "Print the documents stored in a collection",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "collection",
			Aliases:  []string{"c"},
			Usage:    "beneficiary, officer, mediaupload or review",
			Required: true,
		},
		&cli.StringSliceFlag{
			Name:    "filter",
			Aliases: []string{"f"},
			Usage:   "Exact-match filter as key=value, repeatable",
		},
	},
	Action: func(c *cli.Context) error {
		filter, err := parseFilters(c.StringSlice("filter"))
		if err != nil {
			return err
		}

		cfg, err := loadConfig(c.String("env-prefix"))
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		ctx := context.Background()

		repo, pool, err := openRepository(ctx, cfg)
		if err != nil {
			return fmt.Errorf("failed to prepare document store: %w", err)
		}
		defer pool.Close()

		docs, err := repo.Query(ctx, c.String("collection"), filter)
		if err != nil {
			return err
		}

		printer := pp.New()
		printer.SetOutput(os.Stdout)
		for _, doc := range docs {
			printer.Println(doc)
		}
		fmt.Fprintf(os.Stderr, "%d document(s)\n", len(docs))

		return nil
	},
}

func parseFilters(pairs []string) (map[string]any, error) {
	filter := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("filter %q must look like key=value", pair)
		}
		filter[key] = value
	}
	return filter, nil
}
