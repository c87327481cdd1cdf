package bootstrap

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Domenick1991/planeseats/config"
	"github.com/Domenick1991/planeseats/internal/domain"
	"github.com/Domenick1991/planeseats/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReservationService_FileReceipts(t *testing.T) {
	ctx := context.Background()
	cfg := config.Default()
	cfg.Receipt.Dir = t.TempDir()

	svc, cleanup, err := NewReservationService(ctx, cfg, logger.Discard())
	require.NoError(t, err)
	defer cleanup()

	_, err = svc.Buy(ctx, domain.Seat(domain.RowB, 1), domain.NewPassenger("Jo", "Lee", "jo@x.com"))
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(cfg.Receipt.Dir, "B1.txt"))
	require.NoError(t, err)
	assert.Equal(t, "Seat: B1\nPassenger's Full Name: Jo Lee\nEmail: jo@x.com\nPrice: £200\n", string(data))
}

func TestNewReservationService_UnpricedSeats(t *testing.T) {
	ctx := context.Background()
	cfg := config.Default()
	cfg.Receipt.Backend = "none"
	cfg.Booking.AllowUnpricedSeats = true

	svc, cleanup, err := NewReservationService(ctx, cfg, logger.Discard())
	require.NoError(t, err)
	defer cleanup()

	ticket, err := svc.Buy(ctx, domain.Seat(domain.RowD, 14), domain.NewPassenger("Jo", "Lee", "jo@x.com"))
	require.NoError(t, err)
	assert.Equal(t, 0, ticket.Price)
}

func TestNewReservationService_UnknownBackend(t *testing.T) {
	cfg := config.Default()
	cfg.Receipt.Backend = "ftp"

	_, _, err := NewReservationService(context.Background(), cfg, logger.Discard())
	assert.Error(t, err)
}
