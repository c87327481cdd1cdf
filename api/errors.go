package api

import (
	"errors"
	"net/http"

	"github.com/Domenick1991/planeseats/internal/domain"
	"github.com/Domenick1991/planeseats/internal/receipt"
	"github.com/gin-gonic/gin"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidSeat), errors.Is(err, domain.ErrInvalidPassenger):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrAlreadySold):
		return http.StatusConflict
	case errors.Is(err, domain.ErrSeatNotSold), errors.Is(err, domain.ErrTicketNotFound), errors.Is(err, receipt.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeError(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{"error": err.Error()})
}

func parseSeatParam(c *gin.Context) (domain.SeatCoordinate, bool) {
	seat, err := domain.ParseSeat(c.Param("seat"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return domain.SeatCoordinate{}, false
	}
	return seat, true
}
