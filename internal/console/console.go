// Package console is the operator menu: it reads choices and seat coordinates
// from a text stream and prints the results of each reservation operation.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Domenick1991/planeseats/internal/domain"
	"github.com/Domenick1991/planeseats/internal/service/reservation"
)

const menu = `
*************************************************
*                  MENU OPTIONS                 *
*************************************************

1) Buy a seat
2) Cancel a seat
3) Find first available seat
4) Show seating plan
5) Print ticket
6) Search ticket
0) Quit

*************************************************
`

type Console struct {
	svc reservation.ReservationUseCase
	in  *bufio.Scanner
	out io.Writer
}

func New(svc reservation.ReservationUseCase, in io.Reader, out io.Writer) *Console {
	return &Console{svc: svc, in: bufio.NewScanner(in), out: out}
}

// Run shows the menu until the operator quits or input ends.
func (c *Console) Run(ctx context.Context) error {
	c.println("\n\n'Welcome to the Plane Management application'\n")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		c.println(menu)
		c.printf("\nPlease select an option: ")

		line, err := c.readLine()
		if err != nil {
			return ignoreEOF(err)
		}
		option, convErr := strconv.Atoi(line)
		if convErr != nil {
			option = -1
		}

		switch option {
		case 1:
			err = c.buySeat(ctx)
		case 2:
			err = c.cancelSeat(ctx)
		case 3:
			c.findFirstAvailable(ctx)
		case 4:
			c.showSeatingPlan(ctx)
		case 5:
			c.printTicketsInfo(ctx)
		case 6:
			err = c.searchTicket(ctx)
		case 0:
			c.println("End")
			return nil
		default:
			c.println("Invalid option")
		}
		if err != nil {
			return ignoreEOF(err)
		}
	}
}

func (c *Console) buySeat(ctx context.Context) error {
	c.println("You have chosen the option to buy a seat")
	seat, err := c.readSeat()
	if err != nil {
		return err
	}

	available, err := c.svc.IsAvailable(ctx, seat)
	if err != nil {
		c.println("Invalid seat selection.")
		return nil
	}
	if !available {
		c.printf("Seat %s is already sold.\n", seat)
		return nil
	}
	if _, _, err := c.svc.Quote(seat); err != nil {
		c.printf("Seat %s cannot be sold.\n", seat)
		return nil
	}
	c.printf("Great!.. Seat %s is available.\n", seat)

	name, err := c.readRequired("Enter your first name: ")
	if err != nil {
		return err
	}
	surname, err := c.readRequired("Enter your surname: ")
	if err != nil {
		return err
	}
	email, err := c.readRequired("Enter your email: ")
	if err != nil {
		return err
	}

	ticket, err := c.svc.Buy(ctx, seat, domain.NewPassenger(name, surname, email))
	switch {
	case err == nil:
		c.printf("Ticket saved for seat %s\n", seat)
	case reservation.IsReceiptError(err):
		c.printf("An error occurred while saving the ticket for seat %s\n", seat)
	case errors.Is(err, domain.ErrAlreadySold):
		c.printf("Seat %s is already sold.\n", seat)
		return nil
	default:
		c.printf("Could not book seat %s: %v\n", seat, err)
		return nil
	}
	c.printf("Successfully Booked a seat %s (£%d)\n", seat, ticket.Price)
	return nil
}

func (c *Console) cancelSeat(ctx context.Context) error {
	c.println("You have chosen the option to cancel a seat")
	seat, err := c.readSeat()
	if err != nil {
		return err
	}

	available, err := c.svc.IsAvailable(ctx, seat)
	if err != nil {
		c.println("Invalid seat selection.")
		return nil
	}
	if available {
		c.printf("Seat %s is not booked to cancel.\n", seat)
		return nil
	}

	c.println("Do you want to cancel your ticket? (Yes/No) ")
	answer, err := c.readLine()
	if err != nil {
		return err
	}
	if !strings.EqualFold(answer, "yes") {
		c.println("Cancellation aborted.")
		return nil
	}

	if _, err := c.svc.Cancel(ctx, seat); err != nil && !errors.Is(err, domain.ErrTicketNotFound) {
		c.printf("Could not cancel seat %s: %v\n", seat, err)
		return nil
	}
	c.printf("Seat %s canceled successfully.\n", seat)
	return nil
}

func (c *Console) findFirstAvailable(ctx context.Context) {
	c.println("You have chosen the option to find first available seat")
	seat, ok := c.svc.FindFirstAvailable(ctx)
	if !ok {
		c.println("No available seats found.")
		return
	}
	c.printf("First available seat found at row %s, column %d\n", seat.Row, seat.Column)
}

func (c *Console) showSeatingPlan(ctx context.Context) {
	c.println("You have chosen the option to show seating plan")
	c.println("\n Seating Plan:")
	for _, row := range c.svc.SeatingPlan(ctx) {
		var b strings.Builder
		for _, status := range row {
			b.WriteString(status.String())
			b.WriteByte(' ')
		}
		c.println(b.String())
	}
}

func (c *Console) printTicketsInfo(ctx context.Context) {
	c.println("You have chosen the option to print ticket information and total sales")
	report := c.svc.Report(ctx)
	for _, t := range report.Tickets {
		c.println("Tickets Information: ")
		c.printTicket(&t)
		c.println("")
	}
	c.printf("Total Amount: £%d\n", report.TotalRevenue)
}

func (c *Console) searchTicket(ctx context.Context) error {
	c.println("You have chosen the option to search for a ticket")
	seat, err := c.readSeat()
	if err != nil {
		return err
	}

	ticket, err := c.svc.SearchTicket(ctx, seat)
	switch {
	case err == nil:
		c.println("Ticket Information:")
		c.printTicket(ticket)
	case errors.Is(err, domain.ErrSeatNotSold):
		c.println("This seat is available.")
	case errors.Is(err, domain.ErrInvalidSeat):
		c.println("Invalid seat selection.")
	default:
		c.printf("No ticket found for seat %s.\n", seat)
	}
	return nil
}

func (c *Console) printTicket(t *domain.Ticket) {
	c.printf("Seat Number: %s\n", t.Seat)
	c.printf("Passenger's Full Name: %s\n", t.Passenger.FullName())
	c.printf("Email: %s\n", t.Passenger.Email)
	c.printf("Price: £%d\n", t.Price)
}

// readSeat prompts for a row and a column until both parse. The column is
// only checked against the widest row; the service checks the rest.
func (c *Console) readSeat() (domain.SeatCoordinate, error) {
	var row domain.Row
	for {
		c.printf("Enter the row letter(A-D): ")
		line, err := c.readLine()
		if err != nil {
			return domain.SeatCoordinate{}, err
		}
		if row, err = domain.ParseRow(line); err == nil {
			break
		}
		c.println("Invalid row. Please enter a valid row (A-D).")
	}

	for {
		c.printf("Enter the seat number (1-%d): ", domain.MaxColumns)
		line, err := c.readLine()
		if err != nil {
			return domain.SeatCoordinate{}, err
		}
		column, convErr := strconv.Atoi(line)
		if convErr == nil && column >= 1 && column <= domain.MaxColumns {
			return domain.Seat(row, column), nil
		}
		c.printf("Invalid column. Please enter a valid column (1-%d).\n", domain.MaxColumns)
	}
}

func (c *Console) readRequired(prompt string) (string, error) {
	for {
		c.printf("%s", prompt)
		line, err := c.readLine()
		if err != nil {
			return "", err
		}
		if line != "" {
			return line, nil
		}
	}
}

func (c *Console) readLine() (string, error) {
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(c.in.Text()), nil
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
