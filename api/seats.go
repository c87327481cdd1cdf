package api

import (
	"net/http"

	"github.com/Domenick1991/planeseats/internal/domain"
	"github.com/Domenick1991/planeseats/internal/seatmap"
	"github.com/Domenick1991/planeseats/internal/service/reservation"
	"github.com/gin-gonic/gin"
)

type SeatHandler struct {
	service reservation.ReservationUseCase
}

type seatResponse struct {
	Seat   string `json:"seat"`
	Status string `json:"status"`
	Zone   string `json:"zone"`
	Price  int    `json:"price"`
}

type rowResponse struct {
	Row   string         `json:"row"`
	Seats []seatResponse `json:"seats"`
}

func NewSeatHandler(service reservation.ReservationUseCase) *SeatHandler {
	return &SeatHandler{service: service}
}

func (h *SeatHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.plan)
	router.GET("/first-available", h.firstAvailable)
}

func (h *SeatHandler) plan(c *gin.Context) {
	grid := h.service.SeatingPlan(c.Request.Context())

	rows := make([]rowResponse, 0, len(grid))
	for i, statuses := range grid {
		row := domain.Rows[i]
		resp := rowResponse{Row: row.String(), Seats: make([]seatResponse, 0, len(statuses))}
		for j, status := range statuses {
			seat := domain.Seat(row, j+1)
			resp.Seats = append(resp.Seats, seatResponse{
				Seat:   seat.Label(),
				Status: statusName(status),
				Zone:   string(seatmap.ZoneOf(seat)),
				Price:  seatmap.PriceOf(seat),
			})
		}
		rows = append(rows, resp)
	}
	c.JSON(http.StatusOK, gin.H{"rows": rows})
}

func (h *SeatHandler) firstAvailable(c *gin.Context) {
	seat, ok := h.service.FindFirstAvailable(c.Request.Context())
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no available seats"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"seat": seat.Label()})
}

func statusName(s domain.SeatStatus) string {
	if s == domain.SeatSold {
		return "SOLD"
	}
	return "AVAILABLE"
}
