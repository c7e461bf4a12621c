package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"socialgrowth/internal/assistant"
	"socialgrowth/internal/config"
	"socialgrowth/internal/logger"
	"socialgrowth/internal/server"
	"socialgrowth/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	zl, err := logger.New(cfg.LogLevel, cfg.AppEnv)
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer zl.Sync()
	sugar := zl.Sugar()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, sugar); err != nil {
		sugar.Fatalw("application terminated with error", "error", err)
	}
}

func run(ctx context.Context, cfg *config.Config, sugar *zap.SugaredLogger) error {
	opts := server.Options{RequestLog: true}

	// --- RabbitMQ (optional) ---
	var mqClient *rabbitmq.Client
	if cfg.RabbitMQURL != "" {
		c, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL}, sugar)
		if err != nil {
			return err
		}
		defer c.Close()
		mqClient = c
		opts.Events = c
	} else {
		sugar.Warn("RABBITMQ_URL not set, domain events are disabled")
	}

	// --- Assistant ---
	if cfg.GeminiAPIKey != "" {
		opts.Generator = assistant.NewClient(assistant.Config{
			BaseURL: cfg.GeminiBaseURL,
			APIKey:  cfg.GeminiAPIKey,
			Model:   cfg.GeminiModel,
			Timeout: cfg.GeminiTimeout,
		})
	} else {
		sugar.Warn("GEMINI_API_KEY not set, assistant answers with fallback text")
	}

	srv, err := server.New(ctx, cfg, sugar, opts)
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)

	if mqClient != nil {
		g.Go(func() error {
			return mqClient.Consume(ctx, func(routingKey string, body []byte) error {
				sugar.Infow("event received", "routing_key", routingKey, "body", string(body))
				return nil
			})
		})
	}

	g.Go(func() error {
		if err := srv.Listen(); err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		sugar.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown error: %w", err)
		}
		sugar.Info("server stopped gracefully")
		return nil
	})

	return g.Wait()
}
