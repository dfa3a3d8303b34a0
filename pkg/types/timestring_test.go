package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "valid morning time", input: "09:00", want: "09:00"},
		{name: "valid evening time", input: "23:00", want: "23:00"},
		{name: "midnight", input: "00:00", want: "00:00"},
		{name: "missing leading zero", input: "9:00", wantErr: true},
		{name: "out of range hour", input: "25:00", wantErr: true},
		{name: "out of range minute", input: "09:61", wantErr: true},
		{name: "garbage", input: "morning", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewTimeString(t *testing.T) {
	moment := time.Date(2026, 9, 15, 14, 30, 45, 0, time.UTC)
	assert.Equal(t, TimeString("14:30"), NewTimeString(moment))
}

func TestTimeString_Comparisons(t *testing.T) {
	early := TimeString("09:00")
	late := TimeString("10:30")

	assert.True(t, early.IsBefore(late))
	assert.False(t, late.IsBefore(early))
	assert.True(t, late.IsAfter(early))
	assert.False(t, early.IsAfter(early))
}

func TestTimeString_AddMinutes(t *testing.T) {
	tests := []struct {
		name    string
		start   TimeString
		minutes int
		want    TimeString
		wantErr bool
	}{
		{name: "add half hour", start: "09:00", minutes: 30, want: "09:30"},
		{name: "cross hour boundary", start: "09:45", minutes: 30, want: "10:15"},
		{name: "up to end of day", start: "23:00", minutes: 59, want: "23:59"},
		{name: "crosses midnight", start: "23:30", minutes: 31, wantErr: true},
		{name: "invalid source", start: "not-a-time", minutes: 30, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.start.AddMinutes(tt.minutes)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_IsZero(t *testing.T) {
	assert.True(t, TimeString("").IsZero())
	assert.False(t, TimeString("09:00").IsZero())
}
