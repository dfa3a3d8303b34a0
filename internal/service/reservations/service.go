package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/BIM-AvailabilityService/internal/domain"
	reservationRepo "github.com/m04kA/BIM-AvailabilityService/internal/infra/storage/reservation"
)

// Service сервис чтения резерваций
type Service struct {
	repo   ReservationRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса резерваций
func NewService(repo ReservationRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// GetByID получает резервацию по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	s.logger.Info("GetByID: fetching reservation id=%d", id)

	if id <= 0 {
		return nil, fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}

	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByID: successfully fetched reservation id=%d", id)
	return res, nil
}
