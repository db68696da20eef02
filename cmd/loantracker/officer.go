package main

import (
	"context"
	"fmt"

	"loantracker/internal/schema"
	"loantracker/internal/utils"
	"loantracker/pkg/types"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var officerCommand = &cli.Command{
	Name:  "officer",
	Usage: "Register a reviewing officer",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "phone", Usage: "Officer mobile number", Required: true},
		&cli.StringFlag{Name: "name", Usage: "Officer name", Required: true},
		&cli.StringFlag{Name: "role", Usage: "officer, reviewer or admin (default officer)"},
		&cli.StringFlag{Name: "organization", Usage: "State Agency or Bank name"},
	},
	Action: func(c *cli.Context) error {
		officer := officerFromFlags(c)
		if err := schema.Validate(officer); err != nil {
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

		id, err := repo.Insert(ctx, types.CollectionOfficer, officer)
		if err != nil {
			return err
		}

		logrus.WithFields(logrus.Fields{
			"id":           id,
			"phone":        officer.Phone,
			"role":         officer.Role,
			"organization": utils.PtrString(officer.Organization),
		}).Info("officer registered")

		fmt.Println(id)
		return nil
	},
}

func officerFromFlags(c *cli.Context) *types.Officer {
	return &types.Officer{
		Phone:        c.String("phone"),
		Name:         c.String("name"),
		Role:         types.OfficerRole(c.String("role")),
		Organization: utils.StringPtrOrNil(c.String("organization")),
	}
}
