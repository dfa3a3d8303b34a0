package get_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BIM-AvailabilityService/internal/domain"
	"github.com/m04kA/BIM-AvailabilityService/pkg/ptr"
	"github.com/m04kA/BIM-AvailabilityService/pkg/types"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type stubRepository struct {
	slots []*domain.BlockedSlot
	err   error
}

func (s *stubRepository) List(ctx context.Context, filter domain.BlockedSlotsFilter) ([]*domain.BlockedSlot, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.slots, nil
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestExecute_OpenDay(t *testing.T) {
	uc := NewUseCase(&stubRepository{}, domain.DefaultSlotGrid(), noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: date(2026, 9, 15)})

	require.NoError(t, err)
	assert.Equal(t, domain.DayStateOpen, resp.State)
	assert.Empty(t, resp.BlockedTimes)
	// Для открытого дня доступна вся сетка
	assert.Len(t, resp.AvailableTimes, 29)
}

func TestExecute_PartiallyBlockedDay(t *testing.T) {
	target := date(2026, 9, 15)
	repo := &stubRepository{
		slots: []*domain.BlockedSlot{
			{Date: target, Time: ptr.Ptr(types.TimeString("10:00")), Reason: "Indisponible"},
			{Date: target, Time: ptr.Ptr(types.TimeString("14:30")), Reason: "Indisponible"},
		},
	}
	uc := NewUseCase(repo, domain.DefaultSlotGrid(), noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: target})

	require.NoError(t, err)
	assert.Equal(t, domain.DayStatePartiallyBlocked, resp.State)
	assert.Equal(t, []types.TimeString{"10:00", "14:30"}, resp.BlockedTimes)
	assert.Len(t, resp.AvailableTimes, 27)
	assert.NotContains(t, resp.AvailableTimes, types.TimeString("10:00"))
	assert.NotContains(t, resp.AvailableTimes, types.TimeString("14:30"))
}

func TestExecute_FullyBlockedDay(t *testing.T) {
	target := date(2026, 9, 15)
	repo := &stubRepository{
		slots: []*domain.BlockedSlot{
			{Date: target, Reason: "Congés"},
			{Date: target, Time: ptr.Ptr(types.TimeString("10:00")), Reason: "Indisponible"},
		},
	}
	uc := NewUseCase(repo, domain.DefaultSlotGrid(), noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: target})

	require.NoError(t, err)
	assert.Equal(t, domain.DayStateFullyBlocked, resp.State)
	assert.Empty(t, resp.BlockedTimes)
	assert.Empty(t, resp.AvailableTimes)
}

func TestExecute_MissingDate(t *testing.T) {
	uc := NewUseCase(&stubRepository{}, domain.DefaultSlotGrid(), noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_RepositoryError(t *testing.T) {
	uc := NewUseCase(&stubRepository{err: errors.New("db down")}, domain.DefaultSlotGrid(), noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Date: date(2026, 9, 15)})

	assert.ErrorIs(t, err, ErrInternal)
}
