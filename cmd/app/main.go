package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/planeseats/config"
	"github.com/Domenick1991/planeseats/internal/bootstrap"
	"github.com/Domenick1991/planeseats/internal/console"
	"github.com/Domenick1991/planeseats/internal/logger"
)

func main() {
	cfg, err := config.LoadOrDefault(config.Path())
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	svc, cleanup, err := bootstrap.NewReservationService(ctx, cfg, logger.New(cfg.Log))
	if err != nil {
		log.Fatalf("init reservations: %v", err)
	}
	defer cleanup()

	if err := console.New(svc, os.Stdin, os.Stdout).Run(ctx); err != nil && ctx.Err() == nil {
		log.Printf("console stopped: %v", err)
	}
}
