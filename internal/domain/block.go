package domain

import (
	"time"

	"github.com/m04kA/BIM-AvailabilityService/pkg/types"
)

// BlockedSlot represents a persisted unavailability marker.
// Time == nil means the whole day is blocked.
type BlockedSlot struct {
	ID     int64
	Date   time.Time // calendar day, no time component
	Time   *types.TimeString
	Reason string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAllDay returns true if the record blocks the whole day
func (s *BlockedSlot) IsAllDay() bool {
	return s.Time == nil
}

// DateKey returns the record's date as "YYYY-MM-DD"
func (s *BlockedSlot) DateKey() string {
	return s.Date.Format(DateFormat)
}

// BlockedSlotsFilter фильтр для выборки блокировок
type BlockedSlotsFilter struct {
	FromDate *time.Time // Начало окна (опционально, если nil - без ограничения)
	ToDate   *time.Time // Конец окна (опционально, если nil - без ограничения)
}

// DateOnly обнуляет компонент времени, оставляя календарный день
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// IsDateInPast returns true if date is strictly before today's date
func IsDateInPast(date, now time.Time) bool {
	return DateOnly(date).Before(DateOnly(now))
}
