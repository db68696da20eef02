package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"loantracker/internal/ai"
	"loantracker/internal/auth"
	"loantracker/internal/server"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var serveCommand = &cli.Command{
	Name:   "serve",
	Usage:  "Start the HTTP server",
	Action: serve,
}

func serve(cCtx *cli.Context) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	config, err := loadConfig(cCtx.String("env-prefix"))
	if err != nil {
		return err
	}

	logger, err := newLogger(config)
	if err != nil {
		return err
	}

	// Without a store the API still serves; writes and reads answer 503 and
	// /test reports the degraded state.
	var docStore server.DocumentStore
	repo, pool, err := openRepository(ctx, config)
	if err != nil {
		logger.WithError(err).Warn("document store unavailable, running without persistence")
	} else {
		defer pool.Close()
		docStore = repo
		logger.WithField("schema", config.SchemaName()).Info("connected to document store")
	}

	authService, err := auth.NewServiceFromConfig(config, auth.NewOTPStore())
	if err != nil {
		return err
	}

	srv, err := server.New(
		config,
		logger,
		docStore,
		authService,
		ai.NewStub(),
	)
	if err != nil {
		return err
	}

	go func() {
		logger.WithFields(logrus.Fields{
			"port":        config.ServerPort,
			"environment": config.Environment,
		}).Infof("server starting http://localhost:%d", config.ServerPort)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("server failed")
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Stop(shutdownCtx)
}
