package block_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/BIM-AvailabilityService/internal/domain"
	"github.com/m04kA/BIM-AvailabilityService/pkg/ptr"
)

// UseCase use case блокировки слотов
// Разворачивает намерение оператора в канонические блокировки и сохраняет
// их батчем: ошибка одной записи не останавливает остальные
type UseCase struct {
	repo         BlockedSlotRepository
	grid         *domain.SlotGrid
	queryTimeout time.Duration
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(repo BlockedSlotRepository, grid *domain.SlotGrid, queryTimeout time.Duration, logger Logger) *UseCase {
	return &UseCase{
		repo:         repo,
		grid:         grid,
		queryTimeout: queryTimeout,
		logger:       logger,
	}
}

// Execute выполняет use case блокировки слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BlockSlots: type=%s, date=%s, allDay=%t, times=%d",
		req.BlockType, req.Date.Format(domain.DateFormat), req.AllDay, len(req.Times))

	// 1. Валидация входных данных
	if err := validateRequest(req, uc.grid); err != nil {
		uc.logger.Warn("BlockSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Разворачиваем намерение в канонические блокировки
	slots, err := expandIntent(req, uc.grid)
	if err != nil {
		uc.logger.Warn("BlockSlots: expansion failed: %v", err)
		return nil, err
	}

	// 3. Пустой результат разворачивания - ошибка до любого похода в хранилище
	if len(slots) == 0 {
		uc.logger.Warn("BlockSlots: selection expands to zero slots")
		return nil, ErrEmptySelection
	}

	// 4. Загружаем существующие блокировки окна, чтобы знать дни,
	// уже закрытые целиком: их per-time блокировки избыточны
	allDayDates, err := uc.loadAllDayDates(ctx, slots)
	if err != nil {
		uc.logger.Error("BlockSlots: failed to load existing blocks: %v", err)
		return nil, fmt.Errorf("%w: failed to load existing blocks: %v", ErrInternal, err)
	}

	// 5. Сохраняем каждую блокировку независимо, агрегируя результат
	resp := &Response{Requested: len(slots)}

	for _, slot := range slots {
		dateKey := slot.DateKey()

		// Per-time блокировка на день, закрытый целиком, избыточна
		if !slot.IsAllDay() && allDayDates[dateKey] {
			resp.Skipped++
			continue
		}

		if err := uc.persistSlot(ctx, slot); err != nil {
			uc.logger.Error("BlockSlots: failed to persist %s: %v", describeSlot(slot), err)
			resp.Failed++
			resp.Errors = append(resp.Errors, fmt.Sprintf("%s: %v", describeSlot(slot), err))
			continue
		}

		if slot.IsAllDay() {
			allDayDates[dateKey] = true
		}
		resp.Succeeded++
	}

	uc.logger.Info("BlockSlots: requested=%d, succeeded=%d, failed=%d, skipped=%d",
		resp.Requested, resp.Succeeded, resp.Failed, resp.Skipped)

	return resp, nil
}

// persistSlot сохраняет одну блокировку с собственным таймаутом
// All-day блокировка попутно вычищает ставшие избыточными per-time записи
func (uc *UseCase) persistSlot(ctx context.Context, slot *domain.BlockedSlot) error {
	opCtx, cancel := context.WithTimeout(ctx, uc.queryTimeout)
	defer cancel()

	if slot.IsAllDay() {
		purged, err := uc.repo.DeleteTimesByDate(opCtx, slot.Date)
		if err != nil {
			return err
		}
		if purged > 0 {
			uc.logger.Info("BlockSlots: purged %d per-time blocks on %s", purged, slot.DateKey())
		}
	}

	_, err := uc.repo.Insert(opCtx, slot)
	return err
}

// loadAllDayDates возвращает множество дней окна, уже заблокированных целиком
func (uc *UseCase) loadAllDayDates(ctx context.Context, slots []*domain.BlockedSlot) (map[string]bool, error) {
	opCtx, cancel := context.WithTimeout(ctx, uc.queryTimeout)
	defer cancel()

	// Слоты упорядочены по дате, окно задают первый и последний
	filter := domain.BlockedSlotsFilter{
		FromDate: ptr.Ptr(slots[0].Date),
		ToDate:   ptr.Ptr(slots[len(slots)-1].Date),
	}

	existing, err := uc.repo.List(opCtx, filter)
	if err != nil {
		return nil, err
	}

	allDayDates := make(map[string]bool)
	for _, slot := range existing {
		if slot.IsAllDay() {
			allDayDates[slot.DateKey()] = true
		}
	}
	return allDayDates, nil
}

// describeSlot описывает блокировку для сообщений об ошибках
func describeSlot(slot *domain.BlockedSlot) string {
	if slot.IsAllDay() {
		return fmt.Sprintf("%s (all day)", slot.DateKey())
	}
	return fmt.Sprintf("%s %s", slot.DateKey(), slot.Time.String())
}
