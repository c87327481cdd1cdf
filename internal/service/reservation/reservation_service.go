package reservation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/Domenick1991/planeseats/internal/clock"
	"github.com/Domenick1991/planeseats/internal/domain"
	"github.com/Domenick1991/planeseats/internal/kafka"
	"github.com/Domenick1991/planeseats/internal/ledger"
	"github.com/Domenick1991/planeseats/internal/logger"
	"github.com/Domenick1991/planeseats/internal/receipt"
	"github.com/Domenick1991/planeseats/internal/seatmap"
)

type ReservationUseCase interface {
	Buy(ctx context.Context, seat domain.SeatCoordinate, passenger domain.Passenger) (*domain.Ticket, error)
	Cancel(ctx context.Context, seat domain.SeatCoordinate) (*domain.Ticket, error)
	IsAvailable(ctx context.Context, seat domain.SeatCoordinate) (bool, error)
	FindFirstAvailable(ctx context.Context) (domain.SeatCoordinate, bool)
	SearchTicket(ctx context.Context, seat domain.SeatCoordinate) (*domain.Ticket, error)
	Report(ctx context.Context) Report
	SeatingPlan(ctx context.Context) [][]domain.SeatStatus
	Quote(seat domain.SeatCoordinate) (domain.Zone, int, error)
	Receipt(ctx context.Context, seat domain.SeatCoordinate) (string, error)
}

// ReceiptReader is implemented by receipt stores that can return what they wrote.
type ReceiptReader interface {
	Read(ctx context.Context, label string) (string, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

// Report is a snapshot of the ledger, tickets in sale order.
type Report struct {
	Tickets      []domain.Ticket
	TotalRevenue int
	Available    int
	Sold         int
}

// ReservationService owns the seat map and the ledger. mu covers both so a
// seat is sold exactly when the ledger holds its ticket. receiptMu holds one
// lock per seat, taken before mu, so receipts for a label are written in sale order.
type ReservationService struct {
	mu        sync.Mutex
	receiptMu [domain.RowCount][domain.MaxColumns]sync.Mutex
	seats    *seatmap.SeatMap
	tickets  *ledger.Ledger
	receipts receipt.Writer
	producer Producer
	topic    string
	clock    clock.Clock
	log      *slog.Logger

	allowUnpriced bool
}

type ReservationServiceOption func(*ReservationService)

func WithClock(c clock.Clock) ReservationServiceOption {
	return func(s *ReservationService) {
		s.clock = c
	}
}

func WithLogger(l *slog.Logger) ReservationServiceOption {
	return func(s *ReservationService) {
		s.log = l
	}
}

// WithEvents publishes ticket events to topic.
func WithEvents(producer Producer, topic string) ReservationServiceOption {
	return func(s *ReservationService) {
		s.producer = producer
		s.topic = topic
	}
}

// WithUnpricedSeats lets seats outside every zone be sold for 0.
func WithUnpricedSeats(allow bool) ReservationServiceOption {
	return func(s *ReservationService) {
		s.allowUnpriced = allow
	}
}

func NewReservationService(receipts receipt.Writer, opts ...ReservationServiceOption) *ReservationService {
	if receipts == nil {
		receipts = receipt.Discard{}
	}
	s := &ReservationService{
		seats:    seatmap.New(),
		tickets:  ledger.New(),
		receipts: receipts,
		clock:    clock.NewSystem(),
		log:      logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Quote returns the zone and price of a sellable seat.
func (s *ReservationService) Quote(seat domain.SeatCoordinate) (domain.Zone, int, error) {
	if !seat.Valid() {
		return domain.ZoneInvalid, 0, fmt.Errorf("seat %s: %w", seat, domain.ErrInvalidSeat)
	}
	zone := seatmap.ZoneOf(seat)
	if zone == domain.ZoneInvalid && !s.allowUnpriced {
		return zone, 0, fmt.Errorf("seat %s has no price zone: %w", seat, domain.ErrInvalidSeat)
	}
	return zone, seatmap.ZonePrice(zone), nil
}

// Buy sells seat to passenger. A receipt failure does not undo the sale: the
// ticket is returned together with an error wrapping domain.ErrReceiptWrite.
func (s *ReservationService) Buy(ctx context.Context, seat domain.SeatCoordinate, passenger domain.Passenger) (*domain.Ticket, error) {
	_, price, err := s.Quote(seat)
	if err != nil {
		return nil, err
	}

	unlockReceipt := s.lockReceipt(seat)
	defer unlockReceipt()

	s.mu.Lock()
	available, err := s.seats.IsAvailable(seat)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	if !available {
		s.mu.Unlock()
		return nil, fmt.Errorf("seat %s: %w", seat, domain.ErrAlreadySold)
	}
	if err := passenger.Validate(); err != nil {
		s.mu.Unlock()
		return nil, err
	}

	ticket := domain.NewTicket(seat, price, passenger, s.clock.Now())
	if err := s.seats.Sell(seat); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	s.tickets.Add(ticket)
	sold := *ticket
	s.mu.Unlock()

	s.log.InfoContext(ctx, "seat sold",
		slog.String("seat", seat.Label()),
		slog.String("ticket_id", sold.ID),
		slog.Int("price", sold.Price),
	)
	s.publish(ctx, kafka.EventTicketSold, &sold)

	if err := s.receipts.Write(ctx, &sold); err != nil {
		s.log.WarnContext(ctx, "receipt not saved", slog.String("seat", seat.Label()), slog.String("error", err.Error()))
		return &sold, fmt.Errorf("seat %s: %w: %v", seat, domain.ErrReceiptWrite, err)
	}
	return &sold, nil
}

// Cancel releases seat and removes the ticket issued for it.
func (s *ReservationService) Cancel(ctx context.Context, seat domain.SeatCoordinate) (*domain.Ticket, error) {
	s.mu.Lock()
	if err := s.seats.Release(seat); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	ticket, err := s.tickets.RemoveMatching(seat)
	s.mu.Unlock()

	if err != nil {
		s.log.ErrorContext(ctx, "ledger out of sync: sold seat had no ticket", slog.String("seat", seat.Label()))
		return nil, err
	}

	s.log.InfoContext(ctx, "seat cancelled", slog.String("seat", seat.Label()), slog.String("ticket_id", ticket.ID))
	s.publish(ctx, kafka.EventTicketCancelled, ticket)
	return ticket, nil
}

func (s *ReservationService) IsAvailable(_ context.Context, seat domain.SeatCoordinate) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seats.IsAvailable(seat)
}

func (s *ReservationService) FindFirstAvailable(_ context.Context) (domain.SeatCoordinate, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seats.FirstAvailable()
}

// SearchTicket tells an available seat (domain.ErrSeatNotSold) apart from a
// sold seat with no ticket (domain.ErrTicketNotFound).
func (s *ReservationService) SearchTicket(ctx context.Context, seat domain.SeatCoordinate) (*domain.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	available, err := s.seats.IsAvailable(seat)
	if err != nil {
		return nil, err
	}
	if available {
		return nil, fmt.Errorf("seat %s: %w", seat, domain.ErrSeatNotSold)
	}
	ticket, err := s.tickets.FindByCoordinate(seat)
	if err != nil {
		s.log.ErrorContext(ctx, "ledger out of sync: sold seat had no ticket", slog.String("seat", seat.Label()))
		return nil, err
	}
	found := *ticket
	return &found, nil
}

// Receipt returns the stored receipt of a sold seat.
func (s *ReservationService) Receipt(ctx context.Context, seat domain.SeatCoordinate) (string, error) {
	if !seat.Valid() {
		return "", fmt.Errorf("seat %s: %w", seat, domain.ErrInvalidSeat)
	}
	unlockReceipt := s.lockReceipt(seat)
	defer unlockReceipt()

	if _, err := s.SearchTicket(ctx, seat); err != nil {
		return "", err
	}
	reader, ok := s.receipts.(ReceiptReader)
	if !ok {
		return "", fmt.Errorf("seat %s: %w", seat, receipt.ErrNotFound)
	}
	return reader.Read(ctx, seat.Label())
}

func (s *ReservationService) Report(_ context.Context) Report {
	s.mu.Lock()
	defer s.mu.Unlock()

	report := Report{
		Tickets:      make([]domain.Ticket, 0, s.tickets.Len()),
		TotalRevenue: s.tickets.TotalRevenue(),
	}
	for t := range s.tickets.All() {
		report.Tickets = append(report.Tickets, *t)
	}
	report.Available, report.Sold = s.seats.Counts()
	return report
}

func (s *ReservationService) SeatingPlan(_ context.Context) [][]domain.SeatStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seats.Render()
}

// lockReceipt serialises receipt access for a valid seat.
func (s *ReservationService) lockReceipt(seat domain.SeatCoordinate) func() {
	m := &s.receiptMu[seat.Row.Index()][seat.Column-1]
	m.Lock()
	return m.Unlock
}

func (s *ReservationService) publish(ctx context.Context, eventType string, ticket *domain.Ticket) {
	if s.producer == nil || s.topic == "" {
		return
	}
	event := kafka.NewTicketEvent(eventType, ticket)
	if err := s.producer.Publish(ctx, s.topic, ticket.Seat.Label(), event); err != nil {
		s.log.WarnContext(ctx, "failed to publish ticket event",
			slog.String("type", eventType),
			slog.String("seat", ticket.Seat.Label()),
			slog.String("error", err.Error()),
		)
	}
}

// IsReceiptError reports whether err only concerns the receipt of a completed sale.
func IsReceiptError(err error) bool {
	return errors.Is(err, domain.ErrReceiptWrite)
}

var _ ReservationUseCase = (*ReservationService)(nil)
