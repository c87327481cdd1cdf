package api

import (
	"context"

	"github.com/Domenick1991/planeseats/internal/domain"
	"github.com/Domenick1991/planeseats/internal/service/reservation"
	"github.com/stretchr/testify/mock"
)

// MockReservationUseCase is a mock implementation of reservation.ReservationUseCase
type MockReservationUseCase struct {
	mock.Mock
}

func (m *MockReservationUseCase) Buy(ctx context.Context, seat domain.SeatCoordinate, passenger domain.Passenger) (*domain.Ticket, error) {
	args := m.Called(ctx, seat, passenger)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ticket), args.Error(1)
}

func (m *MockReservationUseCase) Cancel(ctx context.Context, seat domain.SeatCoordinate) (*domain.Ticket, error) {
	args := m.Called(ctx, seat)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ticket), args.Error(1)
}

func (m *MockReservationUseCase) IsAvailable(ctx context.Context, seat domain.SeatCoordinate) (bool, error) {
	args := m.Called(ctx, seat)
	return args.Bool(0), args.Error(1)
}

func (m *MockReservationUseCase) FindFirstAvailable(ctx context.Context) (domain.SeatCoordinate, bool) {
	args := m.Called(ctx)
	return args.Get(0).(domain.SeatCoordinate), args.Bool(1)
}

func (m *MockReservationUseCase) SearchTicket(ctx context.Context, seat domain.SeatCoordinate) (*domain.Ticket, error) {
	args := m.Called(ctx, seat)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ticket), args.Error(1)
}

func (m *MockReservationUseCase) Report(ctx context.Context) reservation.Report {
	args := m.Called(ctx)
	return args.Get(0).(reservation.Report)
}

func (m *MockReservationUseCase) SeatingPlan(ctx context.Context) [][]domain.SeatStatus {
	args := m.Called(ctx)
	return args.Get(0).([][]domain.SeatStatus)
}

func (m *MockReservationUseCase) Quote(seat domain.SeatCoordinate) (domain.Zone, int, error) {
	args := m.Called(seat)
	return args.Get(0).(domain.Zone), args.Int(1), args.Error(2)
}

func (m *MockReservationUseCase) Receipt(ctx context.Context, seat domain.SeatCoordinate) (string, error) {
	args := m.Called(ctx, seat)
	return args.String(0), args.Error(1)
}

var _ reservation.ReservationUseCase = (*MockReservationUseCase)(nil)
