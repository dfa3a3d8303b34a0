package block_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BIM-AvailabilityService/internal/domain"
	"github.com/m04kA/BIM-AvailabilityService/pkg/ptr"
	"github.com/m04kA/BIM-AvailabilityService/pkg/types"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestExpandIntent_SingleAllDay(t *testing.T) {
	grid := domain.DefaultSlotGrid()

	slots, err := expandIntent(&Request{
		BlockType: BlockTypeSingle,
		Date:      date(2026, 9, 15),
		AllDay:    true,
	}, grid)

	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.True(t, slots[0].IsAllDay())
	assert.Equal(t, "2026-09-15", slots[0].DateKey())
	assert.Equal(t, domain.DefaultBlockReason, slots[0].Reason)
}

func TestExpandIntent_SingleWithTimes(t *testing.T) {
	grid := domain.DefaultSlotGrid()

	slots, err := expandIntent(&Request{
		BlockType: BlockTypeSingle,
		Date:      date(2026, 9, 15),
		Times:     []types.TimeString{"14:00", "10:00", "14:00"},
		Reason:    "Réunion",
	}, grid)

	require.NoError(t, err)
	require.Len(t, slots, 2)
	// Дубликаты схлопнуты, порядок по сетке
	assert.Equal(t, types.TimeString("10:00"), *slots[0].Time)
	assert.Equal(t, types.TimeString("14:00"), *slots[1].Time)
	assert.Equal(t, "Réunion", slots[0].Reason)
}

func TestExpandIntent_RangeAllDay(t *testing.T) {
	grid := domain.DefaultSlotGrid()

	slots, err := expandIntent(&Request{
		BlockType: BlockTypeRange,
		Date:      date(2026, 9, 15),
		EndDate:   ptr.Ptr(date(2026, 9, 18)),
		AllDay:    true,
	}, grid)

	require.NoError(t, err)
	// Диапазон включителен: 15, 16, 17, 18 сентября
	require.Len(t, slots, 4)
	for i, want := range []string{"2026-09-15", "2026-09-16", "2026-09-17", "2026-09-18"} {
		assert.Equal(t, want, slots[i].DateKey())
		assert.True(t, slots[i].IsAllDay())
	}
}

func TestExpandIntent_TimeRange(t *testing.T) {
	grid := domain.DefaultSlotGrid()

	slots, err := expandIntent(&Request{
		BlockType: BlockTypeTimeRange,
		Date:      date(2026, 9, 15),
		StartTime: "09:00",
		EndTime:   "11:00",
	}, grid)

	require.NoError(t, err)
	// Окно 09:00-11:00 на 30-минутной сетке, границы включительно
	require.Len(t, slots, 5)
	want := []types.TimeString{"09:00", "09:30", "10:00", "10:30", "11:00"}
	for i, tm := range want {
		assert.Equal(t, tm, *slots[i].Time)
		assert.Equal(t, domain.DefaultTimeRangeReason, slots[i].Reason)
	}
}

func TestExpandIntent_TimeRangeOverDates(t *testing.T) {
	grid := domain.DefaultSlotGrid()

	slots, err := expandIntent(&Request{
		BlockType: BlockTypeTimeRange,
		Date:      date(2026, 9, 15),
		EndDate:   ptr.Ptr(date(2026, 9, 17)),
		StartTime: "09:00",
		EndTime:   "11:00",
	}, grid)

	require.NoError(t, err)
	// 3 дня x 5 слотов, дата растет медленнее времени
	require.Len(t, slots, 15)
	assert.Equal(t, "2026-09-15", slots[0].DateKey())
	assert.Equal(t, "2026-09-15", slots[4].DateKey())
	assert.Equal(t, "2026-09-16", slots[5].DateKey())
	assert.Equal(t, "2026-09-17", slots[14].DateKey())
	assert.Equal(t, types.TimeString("09:00"), *slots[5].Time)
	assert.Equal(t, types.TimeString("11:00"), *slots[14].Time)
}

func TestExpandIntent_SpecificSlots(t *testing.T) {
	grid := domain.DefaultSlotGrid()

	slots, err := expandIntent(&Request{
		BlockType: BlockTypeSpecificSlots,
		Date:      date(2026, 9, 15),
		EndDate:   ptr.Ptr(date(2026, 9, 16)),
		Times:     []types.TimeString{"18:00", "09:30"},
	}, grid)

	require.NoError(t, err)
	require.Len(t, slots, 4)
	assert.Equal(t, types.TimeString("09:30"), *slots[0].Time)
	assert.Equal(t, types.TimeString("18:00"), *slots[1].Time)
	assert.Equal(t, "2026-09-16", slots[2].DateKey())
}

func TestExpandIntent_EmptyTimesYieldsEmptyList(t *testing.T) {
	grid := domain.DefaultSlotGrid()

	slots, err := expandIntent(&Request{
		BlockType: BlockTypeSpecificSlots,
		Date:      date(2026, 9, 15),
	}, grid)

	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestExpandIntent_TimeNotOnGrid(t *testing.T) {
	grid := domain.DefaultSlotGrid()

	_, err := expandIntent(&Request{
		BlockType: BlockTypeSingle,
		Date:      date(2026, 9, 15),
		Times:     []types.TimeString{"09:10"},
	}, grid)

	assert.ErrorIs(t, err, ErrTimeNotOnGrid)
}

func TestExpandIntent_UnknownType(t *testing.T) {
	grid := domain.DefaultSlotGrid()

	_, err := expandIntent(&Request{
		BlockType: "weekly",
		Date:      date(2026, 9, 15),
	}, grid)

	assert.ErrorIs(t, err, ErrUnknownBlockType)
}
