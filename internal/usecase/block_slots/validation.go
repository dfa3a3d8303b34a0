package block_slots

import (
	"fmt"

	"github.com/m04kA/BIM-AvailabilityService/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Любая ошибка здесь означает, что до хранилища запрос не дойдет
func validateRequest(req *Request, grid *domain.SlotGrid) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.EndDate != nil && domain.DateOnly(*req.EndDate).Before(domain.DateOnly(req.Date)) {
		return ErrEndDateBeforeStart
	}

	if len(req.Reason) > domain.MaxReasonLength {
		return fmt.Errorf("%w: reason exceeds %d characters", ErrInvalidInput, domain.MaxReasonLength)
	}

	switch req.BlockType {
	case BlockTypeSingle, BlockTypeRange:
		if !req.AllDay && len(req.Times) == 0 {
			return ErrEmptySelection
		}

	case BlockTypeSpecificSlots:
		if len(req.Times) == 0 {
			return ErrEmptySelection
		}

	case BlockTypeTimeRange:
		if req.StartTime.IsZero() || req.EndTime.IsZero() {
			return fmt.Errorf("%w: startTime and endTime are required", ErrInvalidInput)
		}
		if err := req.StartTime.Validate(); err != nil {
			return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
		}
		if err := req.EndTime.Validate(); err != nil {
			return fmt.Errorf("%w: invalid endTime format: %v", ErrInvalidInput, err)
		}
		startIdx, startOK := grid.IndexOf(req.StartTime)
		endIdx, endOK := grid.IndexOf(req.EndTime)
		if !startOK || !endOK {
			return ErrTimeNotOnGrid
		}
		if endIdx < startIdx {
			return ErrEndTimeBeforeStart
		}

	default:
		return fmt.Errorf("%w: %q", ErrUnknownBlockType, req.BlockType)
	}

	// Формат и принадлежность сетке для явно выбранных времён
	for _, t := range req.Times {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("%w: invalid time %q: %v", ErrInvalidInput, t, err)
		}
		if !grid.Contains(t) {
			return fmt.Errorf("%w: %q", ErrTimeNotOnGrid, t)
		}
	}

	return nil
}
