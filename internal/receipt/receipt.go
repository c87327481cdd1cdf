// Package receipt persists one human-readable record per sold seat, keyed by seat label.
package receipt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Domenick1991/planeseats/config"
	"github.com/Domenick1991/planeseats/internal/domain"
)

var ErrNotFound = errors.New("receipt not found")

type Writer interface {
	Write(ctx context.Context, ticket *domain.Ticket) error
}

// Store is a Writer that can also read records back.
type Store interface {
	Writer
	Read(ctx context.Context, label string) (string, error)
	io.Closer
}

// Format renders the four-line receipt for ticket.
func Format(ticket *domain.Ticket) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Seat: %s\n", ticket.Seat.Label())
	fmt.Fprintf(&b, "Passenger's Full Name: %s\n", ticket.Passenger.FullName())
	fmt.Fprintf(&b, "Email: %s\n", ticket.Passenger.Email)
	fmt.Fprintf(&b, "Price: £%d\n", ticket.Price)
	return b.String()
}

func key(label string) string {
	return "receipt:" + label
}

// Open builds the store selected by cfg.Receipt.Backend.
func Open(ctx context.Context, cfg *config.Config) (Store, error) {
	switch strings.ToLower(cfg.Receipt.Backend) {
	case "", "file":
		return NewFileStore(cfg.Receipt.Dir)
	case "badger":
		return OpenBadgerStore(cfg.Receipt.BadgerPath)
	case "redis":
		return NewRedisStore(cfg.Redis), nil
	case "postgres":
		return OpenPGStore(ctx, cfg.Database)
	case "none":
		return Discard{}, nil
	default:
		return nil, fmt.Errorf("unknown receipt backend %q", cfg.Receipt.Backend)
	}
}

// Discard accepts every receipt and keeps none.
type Discard struct{}

func (Discard) Write(context.Context, *domain.Ticket) error { return nil }

func (Discard) Read(_ context.Context, label string) (string, error) {
	return "", fmt.Errorf("%s: %w", label, ErrNotFound)
}

func (Discard) Close() error { return nil }
