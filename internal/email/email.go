package email

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/Domenick1991/planeseats/internal/kafka"
)

// Sender prints the notification it would send; there is no mail gateway yet.
type Sender struct {
	out io.Writer
}

func NewSender() *Sender {
	return NewSenderTo(os.Stdout)
}

func NewSenderTo(out io.Writer) *Sender {
	return &Sender{out: out}
}

func (s *Sender) Send(ctx context.Context, event kafka.TicketEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if event.Email == "" {
		return nil
	}
	_, err := fmt.Fprintf(s.out, "send email to %s: %s\n", event.Email, Subject(event))
	return err
}

func Subject(event kafka.TicketEvent) string {
	switch event.Type {
	case kafka.EventTicketSold:
		return fmt.Sprintf("your ticket for seat %s (£%d)", event.Seat, event.Price)
	case kafka.EventTicketCancelled:
		return fmt.Sprintf("your ticket for seat %s was cancelled", event.Seat)
	default:
		return fmt.Sprintf("%s for seat %s", event.Type, event.Seat)
	}
}
