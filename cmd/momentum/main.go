package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"momentum/internal/config"
	"momentum/internal/db"
	httpx "momentum/internal/http"
	"momentum/internal/logger"
	"momentum/internal/voice"
)

func main() {
	seed := flag.Bool("seed", false, "create the demo user and default goal areas, then exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load failed", "error", err)
		os.Exit(1)
	}
	logger.Init(cfg.IsDev(), cfg.SentryDSN)

	gdb, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connect failed", "error", err)
		os.Exit(1)
	}
	if err := db.AutoMigrateAndIndexes(gdb); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	if *seed {
		userID, err := db.Seed(gdb)
		if err != nil {
			slog.Error("seed failed", "error", err)
			os.Exit(1)
		}
		slog.Info("seed complete", "user_id", userID)
		return
	}

	transcriber := voice.NewDeepgramTranscriber(cfg.DeepgramAPIKey)

	var gen voice.Generator
	if cfg.AnthropicAPIKey != "" {
		gen = voice.NewAnthropicGenerator(cfg.AnthropicAPIKey, cfg.AnthropicModel)
	}
	extractor := voice.NewExtractor(gen)

	r := httpx.NewRouter(cfg, gdb, transcriber, extractor)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	// graceful shutdown
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
