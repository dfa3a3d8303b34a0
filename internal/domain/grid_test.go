package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BIM-AvailabilityService/pkg/types"
)

func TestNewSlotGrid(t *testing.T) {
	tests := []struct {
		name      string
		openTime  types.TimeString
		closeTime types.TimeString
		step      int
		wantLen   int
		wantErr   bool
	}{
		{name: "default institute hours", openTime: "09:00", closeTime: "23:00", step: 30, wantLen: 29},
		{name: "single slot", openTime: "09:00", closeTime: "09:00", step: 30, wantLen: 1},
		{name: "hourly grid", openTime: "09:00", closeTime: "12:00", step: 60, wantLen: 4},
		{name: "close not on step", openTime: "09:00", closeTime: "10:15", step: 30, wantLen: 3},
		{name: "close before open", openTime: "12:00", closeTime: "09:00", step: 30, wantErr: true},
		{name: "step too small", openTime: "09:00", closeTime: "23:00", step: 1, wantErr: true},
		{name: "step too large", openTime: "09:00", closeTime: "23:00", step: 300, wantErr: true},
		{name: "invalid open time", openTime: "9am", closeTime: "23:00", step: 30, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid, err := NewSlotGrid(tt.openTime, tt.closeTime, tt.step)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidGridConfig)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLen, grid.Len())
		})
	}
}

func TestSlotGrid_TimesOrderedAndUnique(t *testing.T) {
	grid := DefaultSlotGrid()
	times := grid.Times()

	require.Equal(t, 29, len(times))
	assert.Equal(t, types.TimeString("09:00"), times[0])
	assert.Equal(t, types.TimeString("23:00"), times[len(times)-1])

	seen := make(map[types.TimeString]struct{})
	for i := 1; i < len(times); i++ {
		assert.True(t, times[i-1].IsBefore(times[i]), "grid must be strictly increasing at %d", i)
	}
	for _, tm := range times {
		_, dup := seen[tm]
		assert.False(t, dup, "duplicate grid time %s", tm)
		seen[tm] = struct{}{}
	}
}

func TestSlotGrid_Contains(t *testing.T) {
	grid := DefaultSlotGrid()

	assert.True(t, grid.Contains("09:00"))
	assert.True(t, grid.Contains("14:30"))
	assert.True(t, grid.Contains("23:00"))
	assert.False(t, grid.Contains("08:30"))
	assert.False(t, grid.Contains("09:15"))
	assert.False(t, grid.Contains("23:30"))
}

func TestSlotGrid_Between(t *testing.T) {
	grid := DefaultSlotGrid()

	t.Run("inclusive window", func(t *testing.T) {
		window, err := grid.Between("09:00", "11:00")
		require.NoError(t, err)
		assert.Equal(t, []types.TimeString{"09:00", "09:30", "10:00", "10:30", "11:00"}, window)
	})

	t.Run("single slot window", func(t *testing.T) {
		window, err := grid.Between("14:00", "14:00")
		require.NoError(t, err)
		assert.Equal(t, []types.TimeString{"14:00"}, window)
	})

	t.Run("start not on grid", func(t *testing.T) {
		_, err := grid.Between("09:10", "11:00")
		assert.ErrorIs(t, err, ErrTimeNotOnGrid)
	})

	t.Run("end not on grid", func(t *testing.T) {
		_, err := grid.Between("09:00", "11:10")
		assert.ErrorIs(t, err, ErrTimeNotOnGrid)
	})

	t.Run("end before start", func(t *testing.T) {
		_, err := grid.Between("11:00", "09:00")
		assert.Error(t, err)
	})
}

func TestSlotGrid_SelectRange(t *testing.T) {
	grid := DefaultSlotGrid()

	t.Run("forward drag", func(t *testing.T) {
		got := grid.SelectRange(0, 2)
		assert.Equal(t, []types.TimeString{"09:00", "09:30", "10:00"}, got)
	})

	t.Run("backward drag yields same set", func(t *testing.T) {
		assert.Equal(t, grid.SelectRange(0, 2), grid.SelectRange(2, 0))
	})

	t.Run("hover outside grid is clamped", func(t *testing.T) {
		got := grid.SelectRange(27, 100)
		assert.Equal(t, []types.TimeString{"22:30", "23:00"}, got)
	})

	t.Run("fully outside grid", func(t *testing.T) {
		assert.Empty(t, grid.SelectRange(50, 100))
	})
}
