package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Domenick1991/planeseats/internal/domain"
	"github.com/Domenick1991/planeseats/internal/receipt"
	"github.com/Domenick1991/planeseats/internal/service/reservation"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTicket() *domain.Ticket {
	return &domain.Ticket{
		ID:        "ticket-1",
		Seat:      domain.Seat(domain.RowB, 1),
		Price:     200,
		Passenger: domain.NewPassenger("Jo", "Lee", "jo@x.com"),
		SoldAt:    time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func newTestContext(method, target string, body []byte) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func TestTicketHandler_buy(t *testing.T) {
	mockService := &MockReservationUseCase{}
	handler := NewTicketHandler(mockService)

	body, _ := json.Marshal(buyTicketRequest{Seat: "b1", Name: "Jo", Surname: "Lee", Email: "jo@x.com"})
	c, w := newTestContext("POST", "/api/v1/tickets", body)

	mockService.On("Buy", c.Request.Context(), domain.Seat(domain.RowB, 1), domain.NewPassenger("Jo", "Lee", "jo@x.com")).
		Return(sampleTicket(), nil)

	handler.buy(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response ticketResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "B1", response.Seat)
	assert.Equal(t, 200, response.Price)
	assert.Empty(t, response.Warning)

	mockService.AssertExpectations(t)
}

func TestTicketHandler_buy_AnyNonEmptyEmail(t *testing.T) {
	mockService := &MockReservationUseCase{}
	handler := NewTicketHandler(mockService)

	body, _ := json.Marshal(buyTicketRequest{Seat: "A1", Name: "Jo", Surname: "Lee", Email: "jo-at-home"})
	c, w := newTestContext("POST", "/api/v1/tickets", body)

	ticket := sampleTicket()
	ticket.Passenger.Email = "jo-at-home"
	mockService.On("Buy", c.Request.Context(), domain.Seat(domain.RowA, 1), domain.NewPassenger("Jo", "Lee", "jo-at-home")).
		Return(ticket, nil)

	handler.buy(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockService.AssertExpectations(t)
}

func TestTicketHandler_buy_ReceiptWarning(t *testing.T) {
	mockService := &MockReservationUseCase{}
	handler := NewTicketHandler(mockService)

	body, _ := json.Marshal(buyTicketRequest{Seat: "B1", Name: "Jo", Surname: "Lee", Email: "jo@x.com"})
	c, w := newTestContext("POST", "/api/v1/tickets", body)

	receiptErr := fmt.Errorf("seat B1: %w: disk full", domain.ErrReceiptWrite)
	mockService.On("Buy", c.Request.Context(), domain.Seat(domain.RowB, 1), domain.NewPassenger("Jo", "Lee", "jo@x.com")).
		Return(sampleTicket(), receiptErr)

	handler.buy(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	var response ticketResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Contains(t, response.Warning, "receipt write failed")
}

func TestTicketHandler_buy_Errors(t *testing.T) {
	testCases := []struct {
		name     string
		seat     string
		err      error
		expected int
	}{
		{"already sold", "A1", fmt.Errorf("seat A1: %w", domain.ErrAlreadySold), http.StatusConflict},
		{"unpriced", "D14", fmt.Errorf("seat D14: %w", domain.ErrInvalidSeat), http.StatusBadRequest},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockService := &MockReservationUseCase{}
			handler := NewTicketHandler(mockService)

			body, _ := json.Marshal(buyTicketRequest{Seat: tc.seat, Name: "Jo", Surname: "Lee", Email: "jo@x.com"})
			c, w := newTestContext("POST", "/api/v1/tickets", body)
			seat, err := domain.ParseSeat(tc.seat)
			require.NoError(t, err)
			mockService.On("Buy", c.Request.Context(), seat, domain.NewPassenger("Jo", "Lee", "jo@x.com")).Return(nil, tc.err)

			handler.buy(c)

			assert.Equal(t, tc.expected, w.Code)
		})
	}
}

func TestTicketHandler_buy_BadRequest(t *testing.T) {
	mockService := &MockReservationUseCase{}
	handler := NewTicketHandler(mockService)

	for _, body := range []string{`{"seat":"C14","name":"Jo","surname":"Lee","email":"jo@x.com"}`, `{"seat":"A1"}`, `{`} {
		c, w := newTestContext("POST", "/api/v1/tickets", []byte(body))
		handler.buy(c)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}
	mockService.AssertNotCalled(t, "Buy")
}

func TestTicketHandler_search(t *testing.T) {
	mockService := &MockReservationUseCase{}
	handler := NewTicketHandler(mockService)

	c, w := newTestContext("GET", "/api/v1/tickets/B1", nil)
	c.Params = gin.Params{{Key: "seat", Value: "B1"}}
	mockService.On("SearchTicket", c.Request.Context(), domain.Seat(domain.RowB, 1)).Return(sampleTicket(), nil)

	handler.search(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestTicketHandler_search_Available(t *testing.T) {
	mockService := &MockReservationUseCase{}
	handler := NewTicketHandler(mockService)

	c, w := newTestContext("GET", "/api/v1/tickets/A4", nil)
	c.Params = gin.Params{{Key: "seat", Value: "A4"}}
	mockService.On("SearchTicket", c.Request.Context(), domain.Seat(domain.RowA, 4)).Return(nil, domain.ErrSeatNotSold)

	handler.search(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTicketHandler_cancel(t *testing.T) {
	mockService := &MockReservationUseCase{}
	handler := NewTicketHandler(mockService)

	c, w := newTestContext("DELETE", "/api/v1/tickets/B1", nil)
	c.Params = gin.Params{{Key: "seat", Value: "B1"}}
	mockService.On("Cancel", c.Request.Context(), domain.Seat(domain.RowB, 1)).Return(sampleTicket(), nil)

	handler.cancel(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestTicketHandler_cancel_NotSold(t *testing.T) {
	mockService := &MockReservationUseCase{}
	handler := NewTicketHandler(mockService)

	c, w := newTestContext("DELETE", "/api/v1/tickets/B2", nil)
	c.Params = gin.Params{{Key: "seat", Value: "B2"}}
	mockService.On("Cancel", c.Request.Context(), domain.Seat(domain.RowB, 2)).Return(nil, fmt.Errorf("seat B2: %w", domain.ErrSeatNotSold))

	handler.cancel(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestTicketHandler_cancel_InvalidSeat(t *testing.T) {
	mockService := &MockReservationUseCase{}
	handler := NewTicketHandler(mockService)

	c, w := newTestContext("DELETE", "/api/v1/tickets/E1", nil)
	c.Params = gin.Params{{Key: "seat", Value: "E1"}}

	handler.cancel(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "Cancel")
}

func TestTicketHandler_report(t *testing.T) {
	mockService := &MockReservationUseCase{}
	handler := NewTicketHandler(mockService)

	c, w := newTestContext("GET", "/api/v1/tickets", nil)
	mockService.On("Report", c.Request.Context()).Return(reservation.Report{
		Tickets:      []domain.Ticket{*sampleTicket()},
		TotalRevenue: 200,
		Available:    53,
		Sold:         1,
	})

	handler.report(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var response reportResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, 200, response.TotalRevenue)
	require.Len(t, response.Tickets, 1)
	assert.Equal(t, "B1", response.Tickets[0].Seat)
}

func TestTicketHandler_receipt(t *testing.T) {
	mockService := &MockReservationUseCase{}
	handler := NewTicketHandler(mockService)

	c, w := newTestContext("GET", "/api/v1/tickets/B1/receipt", nil)
	c.Params = gin.Params{{Key: "seat", Value: "B1"}}
	mockService.On("Receipt", c.Request.Context(), domain.Seat(domain.RowB, 1)).Return("Seat: B1\n", nil)

	handler.receipt(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Seat: B1\n", w.Body.String())
}

func TestTicketHandler_receipt_Missing(t *testing.T) {
	mockService := &MockReservationUseCase{}
	handler := NewTicketHandler(mockService)

	c, w := newTestContext("GET", "/api/v1/tickets/B1/receipt", nil)
	c.Params = gin.Params{{Key: "seat", Value: "B1"}}
	mockService.On("Receipt", c.Request.Context(), domain.Seat(domain.RowB, 1)).Return("", fmt.Errorf("B1: %w", receipt.ErrNotFound))

	handler.receipt(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
