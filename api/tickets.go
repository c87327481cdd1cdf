package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/Domenick1991/planeseats/internal/domain"
	"github.com/Domenick1991/planeseats/internal/service/reservation"
	"github.com/gin-gonic/gin"
)

type TicketHandler struct {
	service reservation.ReservationUseCase
}

type buyTicketRequest struct {
	Seat    string `json:"seat" binding:"required"`
	Name    string `json:"name" binding:"required"`
	Surname string `json:"surname" binding:"required"`
	Email   string `json:"email" binding:"required"`
}

type ticketResponse struct {
	ID      string `json:"id"`
	Seat    string `json:"seat"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Email   string `json:"email"`
	Price   int    `json:"price"`
	SoldAt  string `json:"sold_at"`
	Warning string `json:"warning,omitempty"`
}

type reportResponse struct {
	Tickets      []ticketResponse `json:"tickets"`
	TotalRevenue int              `json:"total_revenue"`
	Available    int              `json:"available"`
	Sold         int              `json:"sold"`
}

func NewTicketHandler(service reservation.ReservationUseCase) *TicketHandler {
	return &TicketHandler{service: service}
}

func (h *TicketHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.report)
	router.POST("", h.buy)
	router.GET("/:seat", h.search)
	router.DELETE("/:seat", h.cancel)
	router.GET("/:seat/receipt", h.receipt)
}

func (h *TicketHandler) buy(c *gin.Context) {
	var req buyTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	seat, err := domain.ParseSeat(req.Seat)
	if err != nil {
		writeError(c, err)
		return
	}

	ticket, err := h.service.Buy(c.Request.Context(), seat, domain.NewPassenger(req.Name, req.Surname, req.Email))
	if err != nil && !reservation.IsReceiptError(err) {
		writeError(c, err)
		return
	}

	resp := toTicketResponse(ticket)
	if err != nil {
		resp.Warning = err.Error()
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *TicketHandler) search(c *gin.Context) {
	seat, ok := parseSeatParam(c)
	if !ok {
		return
	}
	ticket, err := h.service.SearchTicket(c.Request.Context(), seat)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toTicketResponse(ticket))
}

func (h *TicketHandler) cancel(c *gin.Context) {
	seat, ok := parseSeatParam(c)
	if !ok {
		return
	}
	ticket, err := h.service.Cancel(c.Request.Context(), seat)
	if err != nil {
		if errors.Is(err, domain.ErrSeatNotSold) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toTicketResponse(ticket))
}

func (h *TicketHandler) receipt(c *gin.Context) {
	seat, ok := parseSeatParam(c)
	if !ok {
		return
	}
	body, err := h.service.Receipt(c.Request.Context(), seat)
	if err != nil {
		writeError(c, err)
		return
	}
	c.String(http.StatusOK, body)
}

func (h *TicketHandler) report(c *gin.Context) {
	report := h.service.Report(c.Request.Context())

	resp := reportResponse{
		Tickets:      make([]ticketResponse, 0, len(report.Tickets)),
		TotalRevenue: report.TotalRevenue,
		Available:    report.Available,
		Sold:         report.Sold,
	}
	for i := range report.Tickets {
		resp.Tickets = append(resp.Tickets, toTicketResponse(&report.Tickets[i]))
	}
	c.JSON(http.StatusOK, resp)
}

func toTicketResponse(t *domain.Ticket) ticketResponse {
	return ticketResponse{
		ID:      t.ID,
		Seat:    t.Seat.Label(),
		Name:    t.Passenger.Name,
		Surname: t.Passenger.Surname,
		Email:   t.Passenger.Email,
		Price:   t.Price,
		SoldAt:  t.SoldAt.Format(time.RFC3339),
	}
}
