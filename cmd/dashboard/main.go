package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"slices"
	"syscall"

	"github.com/Houeta/shelf-watch/internal/bot"
	"github.com/Houeta/shelf-watch/internal/config"
	"github.com/Houeta/shelf-watch/internal/fetcher"
	"github.com/Houeta/shelf-watch/internal/render"
	"github.com/Houeta/shelf-watch/internal/repository/sqlite"
	"github.com/Houeta/shelf-watch/internal/server"
	"github.com/Houeta/shelf-watch/internal/services/loader"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Constants for different environment types.
const (
	envLocal = "local"
	envDev   = "development"
	envProd  = "production"
)

// main is the entry point of the application.
func main() {
	// Create a context that will be canceled when an interrupt signal is received.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.MustLoad()

	logger := setupLogger(cfg.Env, logOutput(cfg.LogFile))

	src, closeSrc, err := newSource(ctx, logger, cfg.Source)
	if err != nil {
		log.Fatalf("Failed to init document source: %v", err)
	}
	defer closeSrc()

	renderer, err := render.New()
	if err != nil {
		log.Fatalf("Failed to init renderer: %v", err)
	}

	ldr := loader.New(logger, src, cfg.Source.Timeout)
	srv := server.New(logger, cfg.HTTP.Addr, cfg.HTTP.Mode, ldr, renderer)

	var tgBot *bot.Bot
	if cfg.Tg.Token != "" {
		tgBot, err = bot.NewBot(logger, cfg.Tg.Token, cfg.Tg.Timeout, ldr)
		if err != nil {
			log.Fatalf("Failed to init bot: %v", err)
		}
	}

	logger.InfoContext(ctx, "Application started. Press Ctrl+C to stop.",
		"source", cfg.Source.Kind, "location", cfg.Source.Location)

	srv.Start()
	if tgBot != nil {
		go tgBot.Start()
	}

	// Wait for the context to be canceled (e.g., by Ctrl+C).
	<-ctx.Done()

	logger.Info("Shutdown signal received. Stopping application...")

	if err = srv.Stop(context.Background()); err != nil {
		logger.Error("HTTP server did not stop cleanly", "error", err)
	}
	if tgBot != nil {
		tgBot.Stop()
	}

	logger.Info("Application stopped gracefully.")
}

// newSource opens the configured document source. The returned func releases it.
func newSource(ctx context.Context, log *slog.Logger, cfg config.Source) (loader.Source, func(), error) {
	noop := func() {}

	switch cfg.Kind {
	case config.SourceURL:
		return fetcher.NewHTTP(log, cfg.Location), noop, nil
	case config.SourceDir:
		return fetcher.NewDir(cfg.Location), noop, nil
	case config.SourceDB:
		repo, err := sqlite.NewRepository(ctx, log, cfg.Location)
		if err != nil {
			return nil, noop, fmt.Errorf("failed to open snapshot database: %w", err)
		}

		names, err := repo.Documents(ctx)
		if err != nil {
			log.Warn("failed to list stored documents", "error", err)
		}
		for _, doc := range []string{loader.SummaryDoc, loader.SitesDoc, loader.ErrorsDoc} {
			if !slices.Contains(names, doc) {
				log.Warn("document is missing from the snapshot database", "document", doc)
			}
		}

		return repo, func() {
			if cerr := repo.Close(); cerr != nil {
				log.Error("failed to close snapshot database", "error", cerr)
			}
		}, nil
	default:
		return nil, noop, fmt.Errorf("unknown source kind %q", cfg.Kind)
	}
}

// logOutput returns stdout, teed into a rotated file when one is configured.
func logOutput(file string) io.Writer {
	if file == "" {
		return os.Stdout
	}

	return io.MultiWriter(os.Stdout, &lumberjack.Logger{
		Filename:   file,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	})
}

// setupLogger initializes and returns a logger based on the environment provided.
func setupLogger(env string, out io.Writer) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(out, &slog.HandlerOptions{
				Level:     slog.LevelDebug,
				AddSource: true,
			}),
		)
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(out, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(out, &slog.HandlerOptions{
				Level: slog.LevelWarn,
				ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
					if a.Key == slog.TimeKey {
						return slog.Attr{}
					}
					return a
				},
			}),
		)
	default:
		log = slog.New(
			slog.NewJSONHandler(out, &slog.HandlerOptions{
				Level: slog.LevelError,
				ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
					if a.Key == slog.TimeKey {
						return slog.Attr{}
					}
					return a
				},
			}),
		)

		log.Error(
			"The env parameter was not specified or was invalid. Logging will be minimal, by default.",
			slog.String("available_envs", "local, development, production"))
	}

	return log
}
