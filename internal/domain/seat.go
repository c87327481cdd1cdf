package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Row is a seat row letter. The zero value is not a valid row.
type Row byte

const (
	RowA Row = 'A'
	RowB Row = 'B'
	RowC Row = 'C'
	RowD Row = 'D'
)

// Rows lists the rows in declared (scan) order.
var Rows = []Row{RowA, RowB, RowC, RowD}

const (
	RowCount = 4
	// MaxColumns is the widest row on the plane.
	MaxColumns = 14
)

var seatsPerRow = map[Row]int{
	RowA: 14,
	RowB: 13,
	RowC: 13,
	RowD: 14,
}

// SeatsInRow returns the number of seats in row, or 0 for an unknown row.
func SeatsInRow(row Row) int {
	return seatsPerRow[row]
}

// Index returns the zero-based position of the row in Rows, or -1.
func (r Row) Index() int {
	for i, row := range Rows {
		if row == r {
			return i
		}
	}
	return -1
}

func (r Row) Valid() bool {
	return r.Index() >= 0
}

func (r Row) String() string {
	return string(rune(r))
}

// ParseRow accepts a single letter, case-insensitive.
func ParseRow(s string) (Row, error) {
	s = strings.TrimSpace(s)
	if len(s) != 1 {
		return 0, fmt.Errorf("row %q: %w", s, ErrInvalidSeat)
	}
	row := Row(strings.ToUpper(s)[0])
	if !row.Valid() {
		return 0, fmt.Errorf("row %q: %w", s, ErrInvalidSeat)
	}
	return row, nil
}

// SeatCoordinate identifies a seat by row and 1-based column.
type SeatCoordinate struct {
	Row    Row
	Column int
}

func Seat(row Row, column int) SeatCoordinate {
	return SeatCoordinate{Row: row, Column: column}
}

// Valid reports whether the column fits inside the row.
func (c SeatCoordinate) Valid() bool {
	return c.Row.Valid() && c.Column >= 1 && c.Column <= SeatsInRow(c.Row)
}

// Label is the human-readable seat name, e.g. "A1".
func (c SeatCoordinate) Label() string {
	return c.Row.String() + strconv.Itoa(c.Column)
}

func (c SeatCoordinate) String() string {
	return c.Label()
}

// ParseSeat parses a label such as "A1" or "c13". The coordinate is checked
// against the row length.
func ParseSeat(label string) (SeatCoordinate, error) {
	label = strings.TrimSpace(label)
	if len(label) < 2 {
		return SeatCoordinate{}, fmt.Errorf("seat %q: %w", label, ErrInvalidSeat)
	}
	row, err := ParseRow(label[:1])
	if err != nil {
		return SeatCoordinate{}, fmt.Errorf("seat %q: %w", label, ErrInvalidSeat)
	}
	digits := label[1:]
	if digits[0] == '0' || strings.ContainsFunc(digits, func(r rune) bool { return r < '0' || r > '9' }) {
		return SeatCoordinate{}, fmt.Errorf("seat %q: %w", label, ErrInvalidSeat)
	}
	column, err := strconv.Atoi(digits)
	if err != nil {
		return SeatCoordinate{}, fmt.Errorf("seat %q: %w", label, ErrInvalidSeat)
	}
	coord := Seat(row, column)
	if !coord.Valid() {
		return SeatCoordinate{}, fmt.Errorf("seat %q: %w", label, ErrInvalidSeat)
	}
	return coord, nil
}

type SeatStatus int

const (
	SeatAvailable SeatStatus = iota
	SeatSold
)

func (s SeatStatus) String() string {
	if s == SeatSold {
		return "X"
	}
	return "O"
}

// Zone is a pricing tier.
type Zone string

const (
	ZoneYellow  Zone = "YELLOW"
	ZoneBlue    Zone = "BLUE"
	ZoneGreen   Zone = "GREEN"
	ZoneInvalid Zone = "INVALID"
)
