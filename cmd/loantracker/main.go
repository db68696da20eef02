package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "loantracker",
		Usage: "Loan utilization evidence tracking API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "env-prefix",
				Aliases: []string{"p"},
				Usage:   "Environment variable prefix; unprefixed names are used as a fallback",
				Value:   "LUT",
			},
		},
		Commands: []*cli.Command{
			serveCommand,
			migrateCommand,
			officerCommand,
			recordsCommand,
			nanoidCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		logrus.WithError(err).Fatal("application failed")
	}
}
