package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"eatz-backend/internal/audit"
	"eatz-backend/internal/auth"
	"eatz-backend/internal/catalog"
	"eatz-backend/internal/config"
	"eatz-backend/internal/logging"
	"eatz-backend/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[FATAL] config: %v", err)
	}

	logger, cleanup, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		log.Fatalf("[FATAL] logging: %v", err)
	}
	defer cleanup()

	store := catalog.NewStore(catalog.WithLogger(logger))
	if cfg.SeedDemoData {
		if err := store.SeedDemoData(); err != nil {
			logger.Error("seeding demo data failed", "error", err)
			os.Exit(1)
		}
		logger.Info("demo data loaded")
	}

	trail := audit.NewTrail(logger)
	store.Subscribe(trail.Record)

	app := server.New(server.Deps{
		Config:    cfg,
		Logger:    logger,
		Store:     store,
		Directory: auth.NewDirectory(),
		Trail:     trail,
	})

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		logger.Info("shutting down")
		_ = app.Shutdown()
	}()

	logger.Info("server listening", "port", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		logger.Error("server stopped", "error", err)
		cleanup()
		os.Exit(1)
	}
}
