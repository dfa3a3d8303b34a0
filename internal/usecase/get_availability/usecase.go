package get_availability

import (
	"context"
	"fmt"

	"github.com/m04kA/BIM-AvailabilityService/internal/domain"
	"github.com/m04kA/BIM-AvailabilityService/pkg/ptr"
	"github.com/m04kA/BIM-AvailabilityService/pkg/types"
)

// UseCase use case получения доступности дня
// Индекс доступности строится из хранилища на каждый запрос: источником
// истины остаются записи блокировок, индекс - производная проекция
type UseCase struct {
	repo   BlockedSlotRepository
	grid   *domain.SlotGrid
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(repo BlockedSlotRepository, grid *domain.SlotGrid, logger Logger) *UseCase {
	return &UseCase{
		repo:   repo,
		grid:   grid,
		logger: logger,
	}
}

// Execute выполняет use case получения доступности дня
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req.Date.IsZero() {
		uc.logger.Warn("GetAvailability: date is required")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	date := domain.DateOnly(req.Date)

	// 2. Загружаем блокировки дня
	records, err := uc.repo.List(ctx, domain.BlockedSlotsFilter{
		FromDate: ptr.Ptr(date),
		ToDate:   ptr.Ptr(date),
	})
	if err != nil {
		uc.logger.Error("GetAvailability: failed to list blocks for %s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to list blocks: %v", ErrInternal, err)
	}

	// 3. Классифицируем день; день без записей открыт
	day := domain.BuildAvailabilityIndex(records).Day(date)

	uc.logger.Info("GetAvailability: date=%s, state=%s, blocked=%d",
		date.Format(domain.DateFormat), day.State, len(day.BlockedTimes))

	return &Response{
		Date:           date,
		State:          day.State,
		BlockedTimes:   day.BlockedTimes,
		AvailableTimes: uc.availableTimes(day),
	}, nil
}

// availableTimes возвращает слоты сетки, не закрытые блокировками
func (uc *UseCase) availableTimes(day domain.DayAvailability) []types.TimeString {
	if day.State == domain.DayStateFullyBlocked {
		return []types.TimeString{}
	}

	blocked := make(map[types.TimeString]struct{}, len(day.BlockedTimes))
	for _, t := range day.BlockedTimes {
		blocked[t] = struct{}{}
	}

	available := make([]types.TimeString, 0, uc.grid.Len())
	for _, t := range uc.grid.Times() {
		if _, ok := blocked[t]; ok {
			continue
		}
		available = append(available, t)
	}
	return available
}
