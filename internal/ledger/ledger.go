// Package ledger keeps the tickets currently issued, in sale order.
package ledger

import (
	"fmt"
	"iter"
	"slices"

	"github.com/Domenick1991/planeseats/internal/domain"
)

// Ledger does not check for duplicate seats; callers rely on the seat map for that.
type Ledger struct {
	tickets []*domain.Ticket
}

func New() *Ledger {
	return &Ledger{}
}

func (l *Ledger) Add(ticket *domain.Ticket) {
	l.tickets = append(l.tickets, ticket)
}

// RemoveMatching removes the ticket issued for seat, wherever it sits in the ledger.
func (l *Ledger) RemoveMatching(seat domain.SeatCoordinate) (*domain.Ticket, error) {
	i := l.index(seat)
	if i < 0 {
		return nil, fmt.Errorf("seat %s: %w", seat, domain.ErrTicketNotFound)
	}
	ticket := l.tickets[i]
	l.tickets = slices.Delete(l.tickets, i, i+1)
	return ticket, nil
}

func (l *Ledger) FindByCoordinate(seat domain.SeatCoordinate) (*domain.Ticket, error) {
	i := l.index(seat)
	if i < 0 {
		return nil, fmt.Errorf("seat %s: %w", seat, domain.ErrTicketNotFound)
	}
	return l.tickets[i], nil
}

// All yields tickets in insertion order. Each call starts a fresh scan.
func (l *Ledger) All() iter.Seq[*domain.Ticket] {
	return func(yield func(*domain.Ticket) bool) {
		for _, t := range l.tickets {
			if !yield(t) {
				return
			}
		}
	}
}

func (l *Ledger) TotalRevenue() int {
	total := 0
	for _, t := range l.tickets {
		total += t.Price
	}
	return total
}

func (l *Ledger) Len() int {
	return len(l.tickets)
}

func (l *Ledger) index(seat domain.SeatCoordinate) int {
	return slices.IndexFunc(l.tickets, func(t *domain.Ticket) bool {
		return t.Seat == seat
	})
}
