package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/planeseats/config"
	"github.com/Domenick1991/planeseats/internal/bootstrap"
	"github.com/Domenick1991/planeseats/internal/logger"
)

func main() {
	cfg, err := config.LoadConfig(config.Path())
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	appLog := logger.New(cfg.Log)

	svc, cleanup, err := bootstrap.NewReservationService(ctx, cfg, appLog)
	if err != nil {
		log.Fatalf("init reservations: %v", err)
	}
	defer cleanup()

	if err := bootstrap.Run(ctx, cfg, svc, appLog); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
