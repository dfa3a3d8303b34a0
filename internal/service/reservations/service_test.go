package reservations

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BIM-AvailabilityService/internal/domain"
	reservationRepo "github.com/m04kA/BIM-AvailabilityService/internal/infra/storage/reservation"
	"github.com/m04kA/BIM-AvailabilityService/pkg/types"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type stubRepository struct {
	reservation *domain.Reservation
	err         error

	requestedIDs []int64
}

func (s *stubRepository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	s.requestedIDs = append(s.requestedIDs, id)
	if s.err != nil {
		return nil, s.err
	}
	return s.reservation, nil
}

func TestService_GetByID(t *testing.T) {
	date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	stored := &domain.Reservation{
		ID:          42,
		ClientName:  "Anna",
		ClientEmail: "anna@example.com",
		Date:        date,
		Time:        types.TimeString("14:00"),
		ServiceName: "manicure",
		Status:      domain.ReservationConfirmed,
	}

	t.Run("returns reservation", func(t *testing.T) {
		repo := &stubRepository{reservation: stored}
		svc := NewService(repo, noopLogger{})

		got, err := svc.GetByID(context.Background(), 42)
		require.NoError(t, err)
		assert.Equal(t, stored, got)
		assert.Equal(t, []int64{42}, repo.requestedIDs)
	})

	t.Run("maps repository not found", func(t *testing.T) {
		repo := &stubRepository{err: reservationRepo.ErrReservationNotFound}
		svc := NewService(repo, noopLogger{})

		_, err := svc.GetByID(context.Background(), 99)
		require.ErrorIs(t, err, ErrReservationNotFound)
	})

	t.Run("rejects non-positive id without repository call", func(t *testing.T) {
		repo := &stubRepository{reservation: stored}
		svc := NewService(repo, noopLogger{})

		_, err := svc.GetByID(context.Background(), 0)
		require.ErrorIs(t, err, ErrInvalidInput)
		assert.Empty(t, repo.requestedIDs)
	})

	t.Run("wraps repository failure as internal", func(t *testing.T) {
		repo := &stubRepository{err: errors.New("connection reset")}
		svc := NewService(repo, noopLogger{})

		_, err := svc.GetByID(context.Background(), 7)
		require.ErrorIs(t, err, ErrInternal)
	})
}
