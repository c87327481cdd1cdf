package receipt

import (
	"context"
	"errors"
	"fmt"

	"github.com/Domenick1991/planeseats/config"
	"github.com/Domenick1991/planeseats/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const createReceiptsTable = `CREATE TABLE IF NOT EXISTS receipts (
	seat_label TEXT PRIMARY KEY,
	body       TEXT NOT NULL,
	email      TEXT NOT NULL,
	price      INTEGER NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

type PGStore struct {
	db *pgxpool.Pool
}

func NewPGStore(db *pgxpool.Pool) *PGStore {
	return &PGStore{db: db}
}

// OpenPGStore connects and makes sure the receipts table exists.
func OpenPGStore(ctx context.Context, cfg config.DatabaseConfig) (*PGStore, error) {
	pool, err := pgxpool.New(ctx, cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	if _, err := pool.Exec(ctx, createReceiptsTable); err != nil {
		pool.Close()
		return nil, fmt.Errorf("create receipts table: %w", err)
	}
	return NewPGStore(pool), nil
}

func (s *PGStore) Write(ctx context.Context, ticket *domain.Ticket) error {
	_, err := s.db.Exec(ctx, `INSERT INTO receipts (seat_label, body, email, price)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (seat_label) DO UPDATE SET body = EXCLUDED.body, email = EXCLUDED.email, price = EXCLUDED.price, updated_at = now()`,
		ticket.Seat.Label(), Format(ticket), ticket.Passenger.Email, ticket.Price)
	return err
}

func (s *PGStore) Read(ctx context.Context, label string) (string, error) {
	var body string
	err := s.db.QueryRow(ctx, `SELECT body FROM receipts WHERE seat_label=$1`, label).Scan(&body)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", fmt.Errorf("%s: %w", label, ErrNotFound)
	}
	return body, err
}

func (s *PGStore) Close() error {
	s.db.Close()
	return nil
}

var _ Store = (*PGStore)(nil)
