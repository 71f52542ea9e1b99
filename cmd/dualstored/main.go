/*
 * Copyright © 2025 Campushub Software Inc., All rights reserved.
 */

// Command dualstored serves the school records API over both backing stores.
//
// The tabular store must be reachable at boot; the document store is dialed
// in the background and the service runs degraded until it answers.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/campushub/dualstore"
	"github.com/campushub/dualstore/config"
	"github.com/campushub/dualstore/datastore/mongodoc"
	"github.com/campushub/dualstore/datastore/postgres"
	"github.com/campushub/dualstore/seed"
	"github.com/campushub/dualstore/server"
)

const (
	bootRetryInterval = 5 * time.Second
	documentRetries   = 10
)

func main() {
	// A missing .env is the normal production case.
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	info := dualstore.GetVersionInfo()
	logger.Info("dualstored starting",
		"version", info.Version, "commit", info.GitCommit, "built", info.BuildDate)

	cfg := config.FromEnv()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := postgres.Open(cfg.PostgresDSN())
	if err != nil {
		logger.Error("open tabular store", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	for {
		if err := db.PingContext(ctx); err == nil {
			break
		} else if ctx.Err() != nil {
			return
		} else {
			logger.Warn("tabular store not ready, retrying", "error", err)
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(bootRetryInterval):
		}
	}

	tabular := postgres.New(db, logger)
	if err := tabular.EnsureSchema(ctx); err != nil {
		logger.Error("ensure tabular schema", "error", err)
		os.Exit(1)
	}

	documents := mongodoc.New(logger)
	go connectDocuments(ctx, documents, cfg, logger)

	router := dualstore.New(tabular, documents, dualstore.WithLogger(logger))

	seeder, err := seed.NewService(db, documents, logger)
	if err != nil {
		logger.Error("load seed dataset", "error", err)
		os.Exit(1)
	}

	app := server.New(server.Deps{
		Router:    router,
		Seeder:    seeder,
		Tabular:   tabular,
		Documents: documents,
		Log:       logger,
	})

	go func() {
		<-ctx.Done()
		logger.Info("shutting down")
		_ = app.ShutdownWithTimeout(10 * time.Second)
	}()

	logger.Info("listening", "addr", cfg.ListenAddr())
	if err := app.Listen(cfg.ListenAddr()); err != nil {
		logger.Error("serve", "error", err)
		os.Exit(1)
	}
}

// connectDocuments dials the document store with capped retries and binds
// the handle once it answers. Requests arriving before that see the store as
// unavailable, which the routing layer degrades around.
func connectDocuments(ctx context.Context, store *mongodoc.Store, cfg config.Config, logger *slog.Logger) {
	for attempt := 1; attempt <= documentRetries; attempt++ {
		dialCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		db, err := mongodoc.Connect(dialCtx, cfg.MongoURI, cfg.MongoDB)
		cancel()
		if err == nil {
			store.Bind(db)
			logger.Info("document store connected")
			return
		}
		logger.Warn("document store connect failed",
			"attempt", attempt, "max", documentRetries, "error", err)

		select {
		case <-ctx.Done():
			return
		case <-time.After(bootRetryInterval):
		}
	}
	logger.Error("document store unreachable, serving tabular only")
}
