package kafka

import (
	"time"

	"github.com/Domenick1991/planeseats/internal/domain"
)

const (
	EventTicketSold      = "ticket_sold"
	EventTicketCancelled = "ticket_cancelled"
)

type TicketEvent struct {
	Type     string    `json:"type"`
	TicketID string    `json:"ticket_id"`
	Seat     string    `json:"seat"`
	Name     string    `json:"name"`
	Surname  string    `json:"surname"`
	Email    string    `json:"email"`
	Price    int       `json:"price"`
	SoldAt   time.Time `json:"sold_at"`
}

func NewTicketEvent(eventType string, ticket *domain.Ticket) TicketEvent {
	return TicketEvent{
		Type:     eventType,
		TicketID: ticket.ID,
		Seat:     ticket.Seat.Label(),
		Name:     ticket.Passenger.Name,
		Surname:  ticket.Passenger.Surname,
		Email:    ticket.Passenger.Email,
		Price:    ticket.Price,
		SoldAt:   ticket.SoldAt,
	}
}
