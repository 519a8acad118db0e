package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"esgchat/adapters/llm"
	"esgchat/adapters/store"
	"esgchat/ai"
	"esgchat/app"
	"esgchat/internal"
	"esgchat/internal/config"
	"esgchat/ui"
)

func main() {
	// .env is optional; real deployments use process environment.
	_ = godotenv.Load()

	logger := internal.NewDefaultLogger()
	log := logger.Named("main")

	cfg, err := config.Load()
	if err != nil {
		log.Error("failed to load configuration: %v", err)
		os.Exit(1)
	}

	db, err := store.Open(cfg.Database.Driver, cfg.Database.URL, logger)
	if err != nil {
		log.Error("failed to open store: %v", err)
		os.Exit(1)
	}
	defer db.Close()

	// Ingestion runs once before serving; a missing source file leaves
	// the store empty with a warning.
	ingest := app.NewIngestService(db, logger)
	if err := ingest.Run(context.Background(), cfg.Data.CSVFile); err != nil {
		log.Error("ingestion failed, serving with existing data: %v", err)
	}

	client, err := llm.NewFromConfig(cfg.AI, logger)
	if err != nil {
		log.Warn("completion provider unavailable: %v", err)
	}
	synth := ai.NewSynthesizer(client, cfg.AI.MaxTokens, cfg.AI.Temperature, logger)

	chat := app.NewChatService(db, synth, logger)
	httpApp := ui.NewApp(chat, db, logger)

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: httpApp.Router(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("listening on :%s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server failed: %v", err)
		os.Exit(1)
	}
}
