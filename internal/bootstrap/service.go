package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Domenick1991/planeseats/config"
	"github.com/Domenick1991/planeseats/internal/kafka"
	"github.com/Domenick1991/planeseats/internal/receipt"
	"github.com/Domenick1991/planeseats/internal/service/reservation"
)

// NewReservationService opens the configured receipt store and, when brokers
// are set, the ticket event producer. The returned func releases both.
func NewReservationService(ctx context.Context, cfg *config.Config, log *slog.Logger) (*reservation.ReservationService, func(), error) {
	store, err := receipt.Open(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("open receipt store: %w", err)
	}
	closers := []func() error{store.Close}

	opts := []reservation.ReservationServiceOption{
		reservation.WithLogger(log),
		reservation.WithUnpricedSeats(cfg.Booking.AllowUnpricedSeats),
	}
	if cfg.Kafka.Enabled() {
		producer := kafka.NewProducer(cfg.Kafka.Brokers, log)
		closers = append(closers, producer.Close)
		opts = append(opts, reservation.WithEvents(producer, cfg.Kafka.TicketEventsTopic))
	}

	cleanup := func() {
		for _, c := range closers {
			if err := c(); err != nil {
				log.Warn("close failed", slog.String("error", err.Error()))
			}
		}
	}

	log.Debug("reservation service ready",
		slog.String("receipts", cfg.Receipt.Backend),
		slog.Bool("events", cfg.Kafka.Enabled()),
	)
	return reservation.NewReservationService(store, opts...), cleanup, nil
}
