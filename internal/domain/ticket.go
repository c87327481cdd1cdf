package domain

import (
	"time"

	"github.com/google/uuid"
)

// Ticket binds a sold seat to its passenger. The price is fixed when the
// ticket is issued and is never recalculated.
type Ticket struct {
	ID        string
	Seat      SeatCoordinate
	Price     int
	Passenger Passenger
	SoldAt    time.Time
}

func NewTicket(seat SeatCoordinate, price int, passenger Passenger, soldAt time.Time) *Ticket {
	return &Ticket{
		ID:        uuid.NewString(),
		Seat:      seat,
		Price:     price,
		Passenger: passenger,
		SoldAt:    soldAt,
	}
}

func (t *Ticket) SetSeat(seat SeatCoordinate) {
	t.Seat = seat
}

func (t *Ticket) SetPrice(price int) {
	t.Price = price
}

func (t *Ticket) SetPassenger(p Passenger) {
	t.Passenger = p
}
