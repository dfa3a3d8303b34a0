package statistics

import (
	"context"
	"fmt"
	"math"

	"github.com/m04kA/BIM-AvailabilityService/internal/domain"
	"github.com/m04kA/BIM-AvailabilityService/internal/service/statistics/models"
	"github.com/m04kA/BIM-AvailabilityService/pkg/ptr"
)

// Service сервис статистики занятости
type Service struct {
	blockRepo BlockedSlotRepository
	resRepo   ReservationRepository
	grid      *domain.SlotGrid
	logger    Logger
}

// NewService создает новый экземпляр сервиса статистики
func NewService(blockRepo BlockedSlotRepository, resRepo ReservationRepository, grid *domain.SlotGrid, logger Logger) *Service {
	return &Service{
		blockRepo: blockRepo,
		resRepo:   resRepo,
		grid:      grid,
		logger:    logger,
	}
}

// Occupancy строит отчет о занятости за период
// Знаменатель - реально доступные для записи слоты: полный объем сетки за
// период минус закрытые блокировками слоты
func (s *Service) Occupancy(ctx context.Context, req *models.OccupancyRequest) (*models.OccupancyReport, error) {
	s.logger.Info("Occupancy: period=%s to %s",
		req.FromDate.Format(domain.DateFormat), req.ToDate.Format(domain.DateFormat))

	if req.FromDate.IsZero() || req.ToDate.IsZero() {
		return nil, fmt.Errorf("%w: fromDate and toDate are required", ErrInvalidInput)
	}

	fromDate := domain.DateOnly(req.FromDate)
	toDate := domain.DateOnly(req.ToDate)

	if toDate.Before(fromDate) {
		s.logger.Warn("Occupancy: toDate is before fromDate")
		return nil, fmt.Errorf("%w: toDate is before fromDate", ErrInvalidInput)
	}

	blocks, err := s.blockRepo.List(ctx, domain.BlockedSlotsFilter{
		FromDate: ptr.Ptr(fromDate),
		ToDate:   ptr.Ptr(toDate),
	})
	if err != nil {
		s.logger.Error("Occupancy: failed to list blocks: %v", err)
		return nil, fmt.Errorf("%w: Occupancy - failed to list blocks: %v", ErrInternal, err)
	}

	reservations, err := s.resRepo.ListByDateRange(ctx, fromDate, toDate)
	if err != nil {
		s.logger.Error("Occupancy: failed to list reservations: %v", err)
		return nil, fmt.Errorf("%w: Occupancy - failed to list reservations: %v", ErrInternal, err)
	}

	index := domain.BuildAvailabilityIndex(blocks)

	days := int(toDate.Sub(fromDate).Hours()/24) + 1
	totalSlots := days * s.grid.Len()

	blockedSlots := 0
	for d := fromDate; !d.After(toDate); d = d.AddDate(0, 0, 1) {
		day := index.Day(d)
		switch day.State {
		case domain.DayStateFullyBlocked:
			blockedSlots += s.grid.Len()
		case domain.DayStatePartiallyBlocked:
			blockedSlots += len(day.BlockedTimes)
		}
	}

	bookableSlots := totalSlots - blockedSlots

	reservedSlots := 0
	for _, res := range reservations {
		if res.IsActive() {
			reservedSlots++
		}
	}

	rate := 0.0
	if bookableSlots > 0 {
		rate = math.Round(float64(reservedSlots)/float64(bookableSlots)*10000) / 100
	}

	s.logger.Info("Occupancy: days=%d, bookable=%d, reserved=%d, rate=%.2f%%",
		days, bookableSlots, reservedSlots, rate)

	return &models.OccupancyReport{
		FromDate:      fromDate.Format(domain.DateFormat),
		ToDate:        toDate.Format(domain.DateFormat),
		Days:          days,
		TotalSlots:    totalSlots,
		BlockedSlots:  blockedSlots,
		BookableSlots: bookableSlots,
		ReservedSlots: reservedSlots,
		OccupancyRate: rate,
	}, nil
}
