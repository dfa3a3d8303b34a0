package domain

import (
	"sort"
	"time"

	"github.com/m04kA/BIM-AvailabilityService/pkg/types"
)

// DayState classifies a calendar day's availability
type DayState string

const (
	DayStateOpen             DayState = "open"
	DayStateFullyBlocked     DayState = "fullyBlocked"
	DayStatePartiallyBlocked DayState = "partiallyBlocked"
)

// DayAvailability is the derived availability of one calendar day.
// BlockedTimes is empty when the day is open or fully blocked.
type DayAvailability struct {
	State        DayState
	BlockedTimes []types.TimeString
}

// AvailabilityIndex is the queryable date -> DayAvailability view built from
// stored blocked slots. Rebuilt from the store per request context; days with
// no records are not materialized and answer as open.
type AvailabilityIndex struct {
	days map[string]DayAvailability
}

// BuildAvailabilityIndex groups records by date and classifies each day.
// An all-day record dominates the date: any co-existing per-time rows are
// ignored, per the invariant that all-day is authoritative at query time.
func BuildAvailabilityIndex(records []*BlockedSlot) *AvailabilityIndex {
	grouped := make(map[string][]*BlockedSlot)
	for _, rec := range records {
		key := rec.DateKey()
		grouped[key] = append(grouped[key], rec)
	}

	days := make(map[string]DayAvailability, len(grouped))
	for key, group := range grouped {
		days[key] = classifyDay(group)
	}

	return &AvailabilityIndex{days: days}
}

func classifyDay(group []*BlockedSlot) DayAvailability {
	for _, rec := range group {
		if rec.IsAllDay() {
			return DayAvailability{State: DayStateFullyBlocked, BlockedTimes: []types.TimeString{}}
		}
	}

	seen := make(map[types.TimeString]struct{}, len(group))
	blocked := make([]types.TimeString, 0, len(group))
	for _, rec := range group {
		if _, ok := seen[*rec.Time]; ok {
			continue
		}
		seen[*rec.Time] = struct{}{}
		blocked = append(blocked, *rec.Time)
	}

	sort.Slice(blocked, func(i, j int) bool {
		return blocked[i].IsBefore(blocked[j])
	})

	return DayAvailability{State: DayStatePartiallyBlocked, BlockedTimes: blocked}
}

// Day returns the availability of the given date; open when absent
func (idx *AvailabilityIndex) Day(date time.Time) DayAvailability {
	if day, ok := idx.days[date.Format(DateFormat)]; ok {
		return day
	}
	return DayAvailability{State: DayStateOpen, BlockedTimes: []types.TimeString{}}
}

// IsBlocked returns true iff the date is fully blocked, or partially blocked
// with t among the blocked times. A date with no records is open.
func (idx *AvailabilityIndex) IsBlocked(date time.Time, t types.TimeString) bool {
	day, ok := idx.days[date.Format(DateFormat)]
	if !ok {
		return false
	}

	switch day.State {
	case DayStateFullyBlocked:
		return true
	case DayStatePartiallyBlocked:
		for _, blocked := range day.BlockedTimes {
			if blocked == t {
				return true
			}
		}
	}
	return false
}

// IsDayFullyBlocked returns true iff the date carries an all-day block
func (idx *AvailabilityIndex) IsDayFullyBlocked(date time.Time) bool {
	day, ok := idx.days[date.Format(DateFormat)]
	return ok && day.State == DayStateFullyBlocked
}

// Dates returns the materialized date keys in ascending order
func (idx *AvailabilityIndex) Dates() []string {
	keys := make([]string, 0, len(idx.days))
	for key := range idx.days {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
