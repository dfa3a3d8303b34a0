package block_slots

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

// spyRepository фиксирует все обращения к хранилищу
type spyRepository struct {
	existing  []*domain.BlockedSlot
	inserted  []*domain.BlockedSlot
	purged    []time.Time
	listCalls int

	failInsertOn func(slot *domain.BlockedSlot) bool
	listErr      error
}

func (s *spyRepository) Insert(ctx context.Context, slot *domain.BlockedSlot) (*domain.BlockedSlot, error) {
	if s.failInsertOn != nil && s.failInsertOn(slot) {
		return nil, errors.New("insert failed")
	}
	s.inserted = append(s.inserted, slot)
	return slot, nil
}

func (s *spyRepository) List(ctx context.Context, filter domain.BlockedSlotsFilter) ([]*domain.BlockedSlot, error) {
	s.listCalls++
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.existing, nil
}

func (s *spyRepository) DeleteTimesByDate(ctx context.Context, date time.Time) (int64, error) {
	s.purged = append(s.purged, date)
	return 0, nil
}

func (s *spyRepository) storeCalls() int {
	return s.listCalls + len(s.inserted) + len(s.purged)
}

func newTestUseCase(repo *spyRepository) *UseCase {
	return NewUseCase(repo, domain.DefaultSlotGrid(), 5*time.Second, noopLogger{})
}

func TestExecute_SingleAllDay(t *testing.T) {
	repo := &spyRepository{}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{
		BlockType: BlockTypeSingle,
		Date:      date(2026, 9, 15),
		AllDay:    true,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, resp.Requested)
	assert.Equal(t, 1, resp.Succeeded)
	assert.Equal(t, 0, resp.Failed)
	assert.Equal(t, 0, resp.Skipped)

	require.Len(t, repo.inserted, 1)
	assert.True(t, repo.inserted[0].IsAllDay())
	// All-day вставка вычищает ставшие избыточными per-time записи
	require.Len(t, repo.purged, 1)
	assert.Equal(t, "2026-09-15", repo.purged[0].Format(domain.DateFormat))
}

func TestExecute_TimeRangeExpandsAcrossDates(t *testing.T) {
	repo := &spyRepository{}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{
		BlockType: BlockTypeTimeRange,
		Date:      date(2026, 9, 15),
		EndDate:   ptr.Ptr(date(2026, 9, 17)),
		StartTime: "09:00",
		EndTime:   "11:00",
	})

	require.NoError(t, err)
	assert.Equal(t, 15, resp.Requested)
	assert.Equal(t, 15, resp.Succeeded)
	assert.Len(t, repo.inserted, 15)
}

func TestExecute_SkipsTimesOnFullyBlockedDay(t *testing.T) {
	blockedDay := date(2026, 9, 16)
	repo := &spyRepository{
		existing: []*domain.BlockedSlot{
			{Date: blockedDay, Reason: "Congés"}, // all-day
		},
	}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{
		BlockType: BlockTypeSpecificSlots,
		Date:      date(2026, 9, 15),
		EndDate:   ptr.Ptr(date(2026, 9, 16)),
		Times:     []types.TimeString{"10:00"},
	})

	require.NoError(t, err)
	assert.Equal(t, 2, resp.Requested)
	assert.Equal(t, 1, resp.Succeeded)
	assert.Equal(t, 1, resp.Skipped)

	require.Len(t, repo.inserted, 1)
	assert.Equal(t, "2026-09-15", repo.inserted[0].DateKey())
}

func TestExecute_PersistenceErrorDoesNotStopBatch(t *testing.T) {
	repo := &spyRepository{
		failInsertOn: func(slot *domain.BlockedSlot) bool {
			return slot.Time != nil && *slot.Time == "10:00"
		},
	}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{
		BlockType: BlockTypeTimeRange,
		Date:      date(2026, 9, 15),
		StartTime: "09:00",
		EndTime:   "11:00",
	})

	require.NoError(t, err)
	assert.Equal(t, 5, resp.Requested)
	assert.Equal(t, 4, resp.Succeeded)
	assert.Equal(t, 1, resp.Failed)
	require.Len(t, resp.Errors, 1)
	assert.Contains(t, resp.Errors[0], "10:00")
}

func TestExecute_InvalidRangeNeverTouchesStore(t *testing.T) {
	repo := &spyRepository{}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), &Request{
		BlockType: BlockTypeRange,
		Date:      date(2026, 9, 18),
		EndDate:   ptr.Ptr(date(2026, 9, 15)),
		AllDay:    true,
	})

	assert.ErrorIs(t, err, ErrEndDateBeforeStart)
	assert.Zero(t, repo.storeCalls())
}

func TestExecute_EmptySelectionNeverTouchesStore(t *testing.T) {
	repo := &spyRepository{}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), &Request{
		BlockType: BlockTypeSingle,
		Date:      date(2026, 9, 15),
	})

	assert.ErrorIs(t, err, ErrEmptySelection)
	assert.Zero(t, repo.storeCalls())
}

func TestExecute_TimeRangeEndBeforeStart(t *testing.T) {
	repo := &spyRepository{}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), &Request{
		BlockType: BlockTypeTimeRange,
		Date:      date(2026, 9, 15),
		StartTime: "11:00",
		EndTime:   "09:00",
	})

	assert.ErrorIs(t, err, ErrEndTimeBeforeStart)
	assert.Zero(t, repo.storeCalls())
}

func TestExecute_ListErrorIsInternal(t *testing.T) {
	repo := &spyRepository{listErr: errors.New("db down")}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), &Request{
		BlockType: BlockTypeSingle,
		Date:      date(2026, 9, 15),
		AllDay:    true,
	})

	assert.ErrorIs(t, err, ErrInternal)
	assert.Empty(t, repo.inserted)
}
