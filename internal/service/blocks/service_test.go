package blocks

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BIM-AvailabilityService/internal/domain"
	blockedslotRepo "github.com/m04kA/BIM-AvailabilityService/internal/infra/storage/blockedslot"
	"github.com/m04kA/BIM-AvailabilityService/internal/service/blocks/models"
	"github.com/m04kA/BIM-AvailabilityService/pkg/ptr"
	"github.com/m04kA/BIM-AvailabilityService/pkg/types"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type stubRepository struct {
	slots []*domain.BlockedSlot

	deletedIDs   []int64
	deletedDates []time.Time
	deleteErr    error
	deletedRows  int64
}

func (s *stubRepository) List(ctx context.Context, filter domain.BlockedSlotsFilter) ([]*domain.BlockedSlot, error) {
	return s.slots, nil
}

func (s *stubRepository) DeleteByID(ctx context.Context, id int64) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deletedIDs = append(s.deletedIDs, id)
	return nil
}

func (s *stubRepository) DeleteByDate(ctx context.Context, date time.Time) (int64, error) {
	if s.deleteErr != nil {
		return 0, s.deleteErr
	}
	s.deletedDates = append(s.deletedDates, date)
	return s.deletedRows, nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newTestService(repo *stubRepository, now time.Time) *Service {
	svc := NewService(repo, noopLogger{})
	svc.timeProvider = &fixedTimeProvider{now: now}
	return svc
}

func TestListBlockedDays_GroupsByDate(t *testing.T) {
	repo := &stubRepository{
		slots: []*domain.BlockedSlot{
			{ID: 1, Date: date(2026, 9, 15), Reason: "Congés"}, // all-day
			{ID: 2, Date: date(2026, 9, 16), Time: ptr.Ptr(types.TimeString("10:00")), Reason: "Indisponible"},
			{ID: 3, Date: date(2026, 9, 16), Time: ptr.Ptr(types.TimeString("14:00")), Reason: "Indisponible"},
		},
	}
	svc := newTestService(repo, date(2026, 9, 1))

	resp, err := svc.ListBlockedDays(context.Background(), &models.ListBlockedDaysRequest{})

	require.NoError(t, err)
	require.Len(t, resp.Days, 2)

	assert.Equal(t, "2026-09-15", resp.Days[0].Date)
	assert.Equal(t, string(domain.DayStateFullyBlocked), resp.Days[0].State)
	require.Len(t, resp.Days[0].Slots, 1)
	assert.True(t, resp.Days[0].Slots[0].AllDay)
	assert.Nil(t, resp.Days[0].Slots[0].Time)

	assert.Equal(t, "2026-09-16", resp.Days[1].Date)
	assert.Equal(t, string(domain.DayStatePartiallyBlocked), resp.Days[1].State)
	assert.Len(t, resp.Days[1].Slots, 2)
	require.NotNil(t, resp.Days[1].Slots[0].Time)
	assert.Equal(t, "10:00", *resp.Days[1].Slots[0].Time)
}

func TestListBlockedDays_HidesPastDays(t *testing.T) {
	repo := &stubRepository{
		slots: []*domain.BlockedSlot{
			{ID: 1, Date: date(2026, 9, 10), Reason: "Congés"},
			{ID: 2, Date: date(2026, 9, 20), Reason: "Congés"},
		},
	}
	svc := newTestService(repo, date(2026, 9, 15))

	resp, err := svc.ListBlockedDays(context.Background(), &models.ListBlockedDaysRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Days, 1)
	assert.Equal(t, "2026-09-20", resp.Days[0].Date)

	// С includePast прошедшие дни возвращаются
	resp, err = svc.ListBlockedDays(context.Background(), &models.ListBlockedDaysRequest{IncludePast: true})
	require.NoError(t, err)
	assert.Len(t, resp.Days, 2)
}

func TestListBlockedDays_InvalidWindow(t *testing.T) {
	svc := newTestService(&stubRepository{}, date(2026, 9, 1))

	_, err := svc.ListBlockedDays(context.Background(), &models.ListBlockedDaysRequest{
		FromDate: ptr.Ptr(date(2026, 9, 20)),
		ToDate:   ptr.Ptr(date(2026, 9, 10)),
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDeleteBlockedSlot(t *testing.T) {
	repo := &stubRepository{}
	svc := newTestService(repo, date(2026, 9, 1))

	require.NoError(t, svc.DeleteBlockedSlot(context.Background(), 42))
	assert.Equal(t, []int64{42}, repo.deletedIDs)
}

func TestDeleteBlockedSlot_NotFound(t *testing.T) {
	repo := &stubRepository{deleteErr: blockedslotRepo.ErrBlockedSlotNotFound}
	svc := newTestService(repo, date(2026, 9, 1))

	err := svc.DeleteBlockedSlot(context.Background(), 42)
	assert.ErrorIs(t, err, ErrBlockedSlotNotFound)
}

func TestDeleteBlockedSlot_InvalidID(t *testing.T) {
	svc := newTestService(&stubRepository{}, date(2026, 9, 1))

	err := svc.DeleteBlockedSlot(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDeleteBlockedDay(t *testing.T) {
	repo := &stubRepository{deletedRows: 3}
	svc := newTestService(repo, date(2026, 9, 1))

	deleted, err := svc.DeleteBlockedDay(context.Background(), date(2026, 9, 15))
	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)
	require.Len(t, repo.deletedDates, 1)
}

func TestDeleteBlockedDay_NothingToDelete(t *testing.T) {
	repo := &stubRepository{deletedRows: 0}
	svc := newTestService(repo, date(2026, 9, 1))

	_, err := svc.DeleteBlockedDay(context.Background(), date(2026, 9, 15))
	assert.ErrorIs(t, err, ErrDayNotFound)
}

func TestDeleteBlockedDay_RepositoryError(t *testing.T) {
	repo := &stubRepository{deleteErr: errors.New("db down")}
	svc := newTestService(repo, date(2026, 9, 1))

	_, err := svc.DeleteBlockedDay(context.Background(), date(2026, 9, 15))
	assert.ErrorIs(t, err, ErrInternal)
}
