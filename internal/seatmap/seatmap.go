// Package seatmap holds the fixed seat grid of the plane and its zone pricing.
package seatmap

import (
	"fmt"

	"github.com/Domenick1991/planeseats/internal/domain"
)

const (
	YellowPrice = 200
	BluePrice   = 150
	GreenPrice  = 180
)

// SeatMap is not safe for concurrent use; the reservation service guards it.
type SeatMap struct {
	seats [][]domain.SeatStatus
}

// New returns a map with every seat available.
func New() *SeatMap {
	seats := make([][]domain.SeatStatus, len(domain.Rows))
	for i, row := range domain.Rows {
		seats[i] = make([]domain.SeatStatus, domain.SeatsInRow(row))
	}
	return &SeatMap{seats: seats}
}

func (m *SeatMap) IsAvailable(seat domain.SeatCoordinate) (bool, error) {
	status, err := m.status(seat)
	if err != nil {
		return false, err
	}
	return status == domain.SeatAvailable, nil
}

func (m *SeatMap) Sell(seat domain.SeatCoordinate) error {
	status, err := m.status(seat)
	if err != nil {
		return err
	}
	if status == domain.SeatSold {
		return fmt.Errorf("seat %s: %w", seat, domain.ErrAlreadySold)
	}
	m.set(seat, domain.SeatSold)
	return nil
}

func (m *SeatMap) Release(seat domain.SeatCoordinate) error {
	status, err := m.status(seat)
	if err != nil {
		return err
	}
	if status != domain.SeatSold {
		return fmt.Errorf("seat %s: %w", seat, domain.ErrSeatNotSold)
	}
	m.set(seat, domain.SeatAvailable)
	return nil
}

// ZoneOf applies the zone table. Green covers columns 10-14 on rows A and B
// but only 10-13 on rows C and D, so D14 has no zone.
func ZoneOf(seat domain.SeatCoordinate) domain.Zone {
	if !seat.Valid() {
		return domain.ZoneInvalid
	}
	switch col := seat.Column; {
	case col <= 5:
		return domain.ZoneYellow
	case col <= 9:
		return domain.ZoneBlue
	case col <= 14 && (seat.Row == domain.RowA || seat.Row == domain.RowB):
		return domain.ZoneGreen
	case col <= 13 && (seat.Row == domain.RowC || seat.Row == domain.RowD):
		return domain.ZoneGreen
	}
	return domain.ZoneInvalid
}

// PriceOf returns 0 for seats without a zone.
func PriceOf(seat domain.SeatCoordinate) int {
	return ZonePrice(ZoneOf(seat))
}

func ZonePrice(zone domain.Zone) int {
	switch zone {
	case domain.ZoneYellow:
		return YellowPrice
	case domain.ZoneBlue:
		return BluePrice
	case domain.ZoneGreen:
		return GreenPrice
	}
	return 0
}

func (m *SeatMap) PriceOf(seat domain.SeatCoordinate) int {
	return PriceOf(seat)
}

// FirstAvailable scans rows A to D, columns left to right.
func (m *SeatMap) FirstAvailable() (domain.SeatCoordinate, bool) {
	for i, row := range m.seats {
		for j, status := range row {
			if status == domain.SeatAvailable {
				return domain.Seat(domain.Rows[i], j+1), true
			}
		}
	}
	return domain.SeatCoordinate{}, false
}

// Render returns a copy of the grid, row-major.
func (m *SeatMap) Render() [][]domain.SeatStatus {
	out := make([][]domain.SeatStatus, len(m.seats))
	for i, row := range m.seats {
		out[i] = append([]domain.SeatStatus(nil), row...)
	}
	return out
}

func (m *SeatMap) Counts() (available, sold int) {
	for _, row := range m.seats {
		for _, status := range row {
			if status == domain.SeatSold {
				sold++
			} else {
				available++
			}
		}
	}
	return available, sold
}

// Sold lists sold seats in scan order.
func (m *SeatMap) Sold() []domain.SeatCoordinate {
	var out []domain.SeatCoordinate
	for i, row := range m.seats {
		for j, status := range row {
			if status == domain.SeatSold {
				out = append(out, domain.Seat(domain.Rows[i], j+1))
			}
		}
	}
	return out
}

func (m *SeatMap) status(seat domain.SeatCoordinate) (domain.SeatStatus, error) {
	if !seat.Valid() {
		return 0, fmt.Errorf("seat %s: %w", seat, domain.ErrInvalidSeat)
	}
	return m.seats[seat.Row.Index()][seat.Column-1], nil
}

func (m *SeatMap) set(seat domain.SeatCoordinate, status domain.SeatStatus) {
	m.seats[seat.Row.Index()][seat.Column-1] = status
}
