package statistics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BIM-AvailabilityService/internal/domain"
	"github.com/m04kA/BIM-AvailabilityService/internal/service/statistics/models"
	"github.com/m04kA/BIM-AvailabilityService/pkg/ptr"
	"github.com/m04kA/BIM-AvailabilityService/pkg/types"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type stubBlockRepo struct {
	slots []*domain.BlockedSlot
	err   error
}

func (s *stubBlockRepo) List(ctx context.Context, filter domain.BlockedSlotsFilter) ([]*domain.BlockedSlot, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.slots, nil
}

type stubReservationRepo struct {
	reservations []*domain.Reservation
}

func (s *stubReservationRepo) ListByDateRange(ctx context.Context, fromDate, toDate time.Time) ([]*domain.Reservation, error) {
	return s.reservations, nil
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// testGrid сетка 09:00-12:00 шаг 60: 4 слота в день
func testGrid(t *testing.T) *domain.SlotGrid {
	grid, err := domain.NewSlotGrid("09:00", "12:00", 60)
	require.NoError(t, err)
	return grid
}

func TestOccupancy_EmptyPeriod(t *testing.T) {
	svc := NewService(&stubBlockRepo{}, &stubReservationRepo{}, testGrid(t), noopLogger{})

	report, err := svc.Occupancy(context.Background(), &models.OccupancyRequest{
		FromDate: date(2026, 9, 15),
		ToDate:   date(2026, 9, 16),
	})

	require.NoError(t, err)
	assert.Equal(t, 2, report.Days)
	assert.Equal(t, 8, report.TotalSlots)
	assert.Equal(t, 0, report.BlockedSlots)
	assert.Equal(t, 8, report.BookableSlots)
	assert.Equal(t, 0, report.ReservedSlots)
	assert.Equal(t, 0.0, report.OccupancyRate)
}

func TestOccupancy_CountsBlockedAndReserved(t *testing.T) {
	blockRepo := &stubBlockRepo{
		slots: []*domain.BlockedSlot{
			{Date: date(2026, 9, 15), Reason: "Congés"}, // all-day: 4 слота
			{Date: date(2026, 9, 16), Time: ptr.Ptr(types.TimeString("09:00")), Reason: "Indisponible"},
			{Date: date(2026, 9, 16), Time: ptr.Ptr(types.TimeString("10:00")), Reason: "Indisponible"},
		},
	}
	resRepo := &stubReservationRepo{
		reservations: []*domain.Reservation{
			{Date: date(2026, 9, 16), Time: "11:00", Status: domain.ReservationConfirmed},
			{Date: date(2026, 9, 16), Time: "12:00", Status: domain.ReservationCancelled}, // не считается
		},
	}
	svc := NewService(blockRepo, resRepo, testGrid(t), noopLogger{})

	report, err := svc.Occupancy(context.Background(), &models.OccupancyRequest{
		FromDate: date(2026, 9, 15),
		ToDate:   date(2026, 9, 16),
	})

	require.NoError(t, err)
	assert.Equal(t, 2, report.Days)
	assert.Equal(t, 8, report.TotalSlots)
	assert.Equal(t, 6, report.BlockedSlots)
	assert.Equal(t, 2, report.BookableSlots)
	assert.Equal(t, 1, report.ReservedSlots)
	assert.Equal(t, 50.0, report.OccupancyRate)
}

func TestOccupancy_FullyBlockedPeriodHasZeroRate(t *testing.T) {
	blockRepo := &stubBlockRepo{
		slots: []*domain.BlockedSlot{
			{Date: date(2026, 9, 15), Reason: "Congés"},
		},
	}
	svc := NewService(blockRepo, &stubReservationRepo{}, testGrid(t), noopLogger{})

	report, err := svc.Occupancy(context.Background(), &models.OccupancyRequest{
		FromDate: date(2026, 9, 15),
		ToDate:   date(2026, 9, 15),
	})

	require.NoError(t, err)
	assert.Equal(t, 0, report.BookableSlots)
	// Делить не на что: занятость нулевая, а не бесконечная
	assert.Equal(t, 0.0, report.OccupancyRate)
}

func TestOccupancy_InvalidWindow(t *testing.T) {
	svc := NewService(&stubBlockRepo{}, &stubReservationRepo{}, testGrid(t), noopLogger{})

	_, err := svc.Occupancy(context.Background(), &models.OccupancyRequest{
		FromDate: date(2026, 9, 16),
		ToDate:   date(2026, 9, 15),
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestOccupancy_MissingDates(t *testing.T) {
	svc := NewService(&stubBlockRepo{}, &stubReservationRepo{}, testGrid(t), noopLogger{})

	_, err := svc.Occupancy(context.Background(), &models.OccupancyRequest{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestOccupancy_RepositoryError(t *testing.T) {
	svc := NewService(&stubBlockRepo{err: errors.New("db down")}, &stubReservationRepo{}, testGrid(t), noopLogger{})

	_, err := svc.Occupancy(context.Background(), &models.OccupancyRequest{
		FromDate: date(2026, 9, 15),
		ToDate:   date(2026, 9, 16),
	})
	assert.ErrorIs(t, err, ErrInternal)
}
