package domain

import (
	"errors"
	"fmt"

	"github.com/m04kA/BIM-AvailabilityService/pkg/types"
)

var (
	// ErrInvalidGridConfig возвращается при некорректной конфигурации сетки слотов
	ErrInvalidGridConfig = errors.New("domain: invalid slot grid config")

	// ErrTimeNotOnGrid возвращается, когда время отсутствует в сетке слотов
	ErrTimeNotOnGrid = errors.New("domain: time is not on the slot grid")
)

// SlotGrid is the fixed ordered catalog of bookable times of day.
// Built once from deployment configuration; strictly increasing, no duplicates.
type SlotGrid struct {
	times []types.TimeString
	index map[types.TimeString]int
}

// NewSlotGrid builds the grid by walking from openTime up to and including
// closeTime with a fixed step. The walk mirrors how the institute's business
// hours are laid out: the closing time itself is a bookable slot.
func NewSlotGrid(openTime, closeTime types.TimeString, stepMinutes int) (*SlotGrid, error) {
	if err := openTime.Validate(); err != nil {
		return nil, fmt.Errorf("%w: open time: %v", ErrInvalidGridConfig, err)
	}
	if err := closeTime.Validate(); err != nil {
		return nil, fmt.Errorf("%w: close time: %v", ErrInvalidGridConfig, err)
	}
	if stepMinutes < MinGridStepMinutes || stepMinutes > MaxGridStepMinutes {
		return nil, fmt.Errorf("%w: step must be between %d and %d minutes",
			ErrInvalidGridConfig, MinGridStepMinutes, MaxGridStepMinutes)
	}
	if closeTime.IsBefore(openTime) {
		return nil, fmt.Errorf("%w: close time %s is before open time %s",
			ErrInvalidGridConfig, closeTime, openTime)
	}

	times := make([]types.TimeString, 0)
	index := make(map[types.TimeString]int)

	current := openTime
	for {
		times = append(times, current)
		index[current] = len(times) - 1

		if !current.IsBefore(closeTime) {
			break
		}

		next, err := current.AddMinutes(stepMinutes)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidGridConfig, err)
		}
		if next.IsAfter(closeTime) {
			break
		}
		current = next
	}

	return &SlotGrid{times: times, index: index}, nil
}

// DefaultSlotGrid возвращает сетку с дефолтными рабочими часами института
func DefaultSlotGrid() *SlotGrid {
	grid, err := NewSlotGrid(
		types.TimeString(DefaultGridOpenTime),
		types.TimeString(DefaultGridCloseTime),
		DefaultGridStepMinutes,
	)
	if err != nil {
		// Дефолтные константы валидны, сюда попасть невозможно
		panic(err)
	}
	return grid
}

// Times returns the grid's times in ascending order
func (g *SlotGrid) Times() []types.TimeString {
	out := make([]types.TimeString, len(g.times))
	copy(out, g.times)
	return out
}

// Len returns the number of slots on the grid
func (g *SlotGrid) Len() int {
	return len(g.times)
}

// Contains returns true if t is a grid time
func (g *SlotGrid) Contains(t types.TimeString) bool {
	_, ok := g.index[t]
	return ok
}

// IndexOf returns the grid position of t
func (g *SlotGrid) IndexOf(t types.TimeString) (int, bool) {
	i, ok := g.index[t]
	return i, ok
}

// Between returns every grid time from startTime to endTime inclusive.
// Ordering is by grid index, not by string comparison: grid order is
// authoritative for range expansion.
func (g *SlotGrid) Between(startTime, endTime types.TimeString) ([]types.TimeString, error) {
	startIdx, ok := g.index[startTime]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTimeNotOnGrid, startTime)
	}
	endIdx, ok := g.index[endTime]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTimeNotOnGrid, endTime)
	}
	if endIdx < startIdx {
		return nil, fmt.Errorf("%w: end %s precedes start %s in grid order", ErrTimeNotOnGrid, endTime, startTime)
	}

	out := make([]types.TimeString, 0, endIdx-startIdx+1)
	out = append(out, g.times[startIdx:endIdx+1]...)
	return out, nil
}

// SelectRange resolves a drag selection into the set of grid times between
// anchor and hover (inclusive, order-insensitive). Indices are clamped to the
// grid bounds so a drag that leaves the widget still yields a valid set.
func (g *SlotGrid) SelectRange(anchorIdx, hoverIdx int) []types.TimeString {
	if len(g.times) == 0 {
		return nil
	}

	lo, hi := anchorIdx, hoverIdx
	if hi < lo {
		lo, hi = hi, lo
	}
	if lo < 0 {
		lo = 0
	}
	if hi > len(g.times)-1 {
		hi = len(g.times) - 1
	}
	if hi < 0 || lo > len(g.times)-1 {
		return nil
	}

	out := make([]types.TimeString, 0, hi-lo+1)
	out = append(out, g.times[lo:hi+1]...)
	return out
}
