package block_slots

import (
	"sort"
	"time"

	"github.com/m04kA/BIM-AvailabilityService/internal/domain"
	"github.com/m04kA/BIM-AvailabilityService/pkg/types"
)

// expandIntent разворачивает валидированный запрос в канонический список
// блокировок. Порядок детерминирован: дата по возрастанию, внутри даты -
// времена в порядке сетки; all-day запись представлена nil временем.
// Пустой выбор времён дает пустой список, решение об ошибке за вызывающим.
func expandIntent(req *Request, grid *domain.SlotGrid) ([]*domain.BlockedSlot, error) {
	dates := expandDates(req.Date, req.EndDate)
	reason := resolveReason(req)

	switch req.BlockType {
	case BlockTypeSingle, BlockTypeRange:
		if req.AllDay {
			return expandAllDay(dates, reason), nil
		}
		return expandTimes(dates, req.Times, grid, reason)

	case BlockTypeTimeRange:
		window, err := grid.Between(req.StartTime, req.EndTime)
		if err != nil {
			return nil, ErrTimeNotOnGrid
		}
		return expandWindow(dates, window, reason), nil

	case BlockTypeSpecificSlots:
		return expandTimes(dates, req.Times, grid, reason)

	default:
		return nil, ErrUnknownBlockType
	}
}

// expandDates возвращает дни диапазона [start, end] включительно
// При nil end диапазон вырождается в один день
func expandDates(start time.Time, end *time.Time) []time.Time {
	first := domain.DateOnly(start)
	last := first
	if end != nil {
		last = domain.DateOnly(*end)
	}

	dates := make([]time.Time, 0, 1)
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

// expandAllDay дает по одной all-day записи на каждый день
func expandAllDay(dates []time.Time, reason string) []*domain.BlockedSlot {
	slots := make([]*domain.BlockedSlot, 0, len(dates))
	for _, date := range dates {
		slots = append(slots, &domain.BlockedSlot{
			Date:   date,
			Reason: reason,
		})
	}
	return slots
}

// expandTimes дает декартово произведение дней и выбранных времён
// Времена дедуплицируются и сортируются в порядке сетки
func expandTimes(dates []time.Time, times []types.TimeString, grid *domain.SlotGrid, reason string) ([]*domain.BlockedSlot, error) {
	ordered, err := normalizeTimes(times, grid)
	if err != nil {
		return nil, err
	}
	return expandWindow(dates, ordered, reason), nil
}

// expandWindow дает декартово произведение дней и упорядоченного набора времён
func expandWindow(dates []time.Time, times []types.TimeString, reason string) []*domain.BlockedSlot {
	slots := make([]*domain.BlockedSlot, 0, len(dates)*len(times))
	for _, date := range dates {
		for _, t := range times {
			blockTime := t
			slots = append(slots, &domain.BlockedSlot{
				Date:   date,
				Time:   &blockTime,
				Reason: reason,
			})
		}
	}
	return slots
}

// normalizeTimes дедуплицирует времена и сортирует их по индексу сетки
func normalizeTimes(times []types.TimeString, grid *domain.SlotGrid) ([]types.TimeString, error) {
	seen := make(map[types.TimeString]struct{}, len(times))
	ordered := make([]types.TimeString, 0, len(times))

	for _, t := range times {
		if _, ok := seen[t]; ok {
			continue
		}
		if !grid.Contains(t) {
			return nil, ErrTimeNotOnGrid
		}
		seen[t] = struct{}{}
		ordered = append(ordered, t)
	}

	sort.Slice(ordered, func(i, j int) bool {
		iIdx, _ := grid.IndexOf(ordered[i])
		jIdx, _ := grid.IndexOf(ordered[j])
		return iIdx < jIdx
	})

	return ordered, nil
}

// resolveReason подставляет причину по умолчанию, если оператор её не указал
func resolveReason(req *Request) string {
	if req.Reason != "" {
		return req.Reason
	}
	if req.BlockType == BlockTypeTimeRange {
		return domain.DefaultTimeRangeReason
	}
	return domain.DefaultBlockReason
}
