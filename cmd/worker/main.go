package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/planeseats/config"
	"github.com/Domenick1991/planeseats/internal/email"
	"github.com/Domenick1991/planeseats/internal/kafka"
	"github.com/Domenick1991/planeseats/internal/logger"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("worker: %v", err)
	}
}

func run() error {
	cfg, err := config.LoadConfig(config.Path())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if !cfg.Kafka.Enabled() {
		return fmt.Errorf("kafka brokers and ticket_events_topic must be configured")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	appLog := logger.New(cfg.Log)

	consumer := kafka.NewConsumer(cfg.Kafka, appLog)
	defer func() {
		if err := consumer.Close(); err != nil {
			appLog.Warn("close consumer", slog.String("error", err.Error()))
		}
	}()

	if err := consumer.CheckConnection(ctx); err != nil {
		appLog.Warn("kafka not reachable yet", slog.String("error", err.Error()))
	}

	emailSender := email.NewSender()
	err = consumer.ConsumeTicketEvents(ctx, emailSender.Send)
	if err != nil && ctx.Err() == nil {
		return fmt.Errorf("consumer stopped: %w", err)
	}
	appLog.Info("worker shutting down")
	return nil
}
