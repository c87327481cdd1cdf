package email

import (
	"bytes"
	"context"
	"testing"

	"github.com/Domenick1991/planeseats/internal/kafka"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSender_Send(t *testing.T) {
	var buf bytes.Buffer
	sender := NewSenderTo(&buf)

	err := sender.Send(context.Background(), kafka.TicketEvent{
		Type:  kafka.EventTicketSold,
		Seat:  "B1",
		Email: "jo@x.com",
		Price: 200,
	})
	require.NoError(t, err)
	assert.Equal(t, "send email to jo@x.com: your ticket for seat B1 (£200)\n", buf.String())
}

func TestSender_SkipsEmptyEmail(t *testing.T) {
	var buf bytes.Buffer
	sender := NewSenderTo(&buf)

	require.NoError(t, sender.Send(context.Background(), kafka.TicketEvent{Type: kafka.EventTicketSold}))
	assert.Empty(t, buf.String())
}

func TestSubject(t *testing.T) {
	assert.Equal(t, "your ticket for seat A2 was cancelled", Subject(kafka.TicketEvent{Type: kafka.EventTicketCancelled, Seat: "A2"}))
	assert.Equal(t, "refund for seat A2", Subject(kafka.TicketEvent{Type: "refund", Seat: "A2"}))
}
