package blocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/BIM-AvailabilityService/internal/domain"
	blockedslotRepo "github.com/m04kA/BIM-AvailabilityService/internal/infra/storage/blockedslot"
	"github.com/m04kA/BIM-AvailabilityService/internal/service/blocks/models"
)

// Service сервис администрирования блокировок
type Service struct {
	repo         BlockedSlotRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса блокировок
func NewService(repo BlockedSlotRepository, logger Logger) *Service {
	return &Service{
		repo:         repo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// ListBlockedDays получает блокировки, сгруппированные по дням
// Прошедшие дни по умолчанию скрываются: оператору в календаре они не нужны,
// но записи остаются в хранилище и возвращаются с includePast=true
func (s *Service) ListBlockedDays(ctx context.Context, req *models.ListBlockedDaysRequest) (*models.BlockedDaysResponse, error) {
	s.logger.Info("ListBlockedDays: includePast=%t", req.IncludePast)

	if req.FromDate != nil && req.ToDate != nil && req.ToDate.Before(*req.FromDate) {
		s.logger.Warn("ListBlockedDays: toDate is before fromDate")
		return nil, fmt.Errorf("%w: toDate is before fromDate", ErrInvalidInput)
	}

	slots, err := s.repo.List(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("ListBlockedDays: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListBlockedDays - repository error: %v", ErrInternal, err)
	}

	now := s.timeProvider.Now()
	resp := s.groupByDay(slots, req.IncludePast, now)

	s.logger.Info("ListBlockedDays: successfully fetched %d days", len(resp.Days))
	return resp, nil
}

// DeleteBlockedSlot удаляет одну блокировку по ID
// Отсутствующая запись не считается ошибкой: цель оператора уже достигнута
func (s *Service) DeleteBlockedSlot(ctx context.Context, id int64) error {
	s.logger.Info("DeleteBlockedSlot: deleting blocked slot id=%d", id)

	if id <= 0 {
		return fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, blockedslotRepo.ErrBlockedSlotNotFound) {
			s.logger.Warn("DeleteBlockedSlot: blocked slot id=%d not found", id)
			return ErrBlockedSlotNotFound
		}
		s.logger.Error("DeleteBlockedSlot: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteBlockedSlot - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteBlockedSlot: successfully deleted blocked slot id=%d", id)
	return nil
}

// DeleteBlockedDay удаляет все блокировки дня каскадом
func (s *Service) DeleteBlockedDay(ctx context.Context, date time.Time) (int64, error) {
	s.logger.Info("DeleteBlockedDay: deleting all blocks on %s", date.Format(domain.DateFormat))

	if date.IsZero() {
		return 0, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	deleted, err := s.repo.DeleteByDate(ctx, domain.DateOnly(date))
	if err != nil {
		s.logger.Error("DeleteBlockedDay: repository error for %s: %v", date.Format(domain.DateFormat), err)
		return 0, fmt.Errorf("%w: DeleteBlockedDay - repository error: %v", ErrInternal, err)
	}

	if deleted == 0 {
		s.logger.Warn("DeleteBlockedDay: no blocks found on %s", date.Format(domain.DateFormat))
		return 0, ErrDayNotFound
	}

	s.logger.Info("DeleteBlockedDay: successfully deleted %d blocks on %s",
		deleted, date.Format(domain.DateFormat))
	return deleted, nil
}

// groupByDay группирует блокировки по дням в порядке возрастания дат
// Репозиторий отдает записи отсортированными, порядок сохраняется
func (s *Service) groupByDay(slots []*domain.BlockedSlot, includePast bool, now time.Time) *models.BlockedDaysResponse {
	index := domain.BuildAvailabilityIndex(slots)

	grouped := make(map[string][]models.BlockedSlotInfo)
	order := make([]string, 0)

	for _, slot := range slots {
		if !includePast && domain.IsDateInPast(slot.Date, now) {
			continue
		}

		key := slot.DateKey()
		if _, ok := grouped[key]; !ok {
			order = append(order, key)
		}
		grouped[key] = append(grouped[key], models.FromDomainBlockedSlot(slot))
	}

	days := make([]models.BlockedDay, 0, len(order))
	for _, key := range order {
		date, _ := time.Parse(domain.DateFormat, key)
		days = append(days, models.BlockedDay{
			Date:  key,
			State: string(index.Day(date).State),
			Slots: grouped[key],
		})
	}

	return &models.BlockedDaysResponse{Days: days}
}
