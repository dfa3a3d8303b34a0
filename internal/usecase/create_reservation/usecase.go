package create_reservation

import (
	"context"
	"fmt"

	"github.com/m04kA/BIM-AvailabilityService/internal/domain"
)

// UseCase use case создания резервации
// Проверка доступности и вставка идут в одной сериализуемой транзакции:
// снятие или появление блокировки между проверкой и коммитом невозможно
type UseCase struct {
	blockRepo    BlockedSlotRepository
	resRepo      ReservationRepository
	txManager    TransactionManager
	grid         *domain.SlotGrid
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	blockRepo BlockedSlotRepository,
	resRepo ReservationRepository,
	txManager TransactionManager,
	grid *domain.SlotGrid,
	logger Logger,
) *UseCase {
	return &UseCase{
		blockRepo:    blockRepo,
		resRepo:      resRepo,
		txManager:    txManager,
		grid:         grid,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания резервации
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: client=%s, date=%s, time=%s",
		req.ClientName, req.Date.Format(domain.DateFormat), req.Time)

	// 1. Валидация входных данных
	if err := validateRequest(req, uc.grid); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата резервации не может быть в прошлом
	date := domain.DateOnly(req.Date)
	if domain.IsDateInPast(date, uc.timeProvider.Now()) {
		uc.logger.Warn("CreateReservation: date %s is in the past", date.Format(domain.DateFormat))
		return nil, ErrDateInPast
	}

	var result *domain.Reservation

	// 3. Проверяем доступность и создаем резервацию атомарно
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Блокировки дня с FOR SHARE: конкурирующее изменение блокировок
		// не проскочит между проверкой и коммитом
		blocks, err := uc.blockRepo.ListByDate(txCtx, date)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to list blocks: %v", err)
			return fmt.Errorf("%w: failed to list blocks: %v", ErrInternal, err)
		}

		// 3.2. Слот закрыт блокировкой - отказ, день без записей открыт
		if domain.BuildAvailabilityIndex(blocks).IsBlocked(date, req.Time) {
			uc.logger.Warn("CreateReservation: slot %s %s is blocked", date.Format(domain.DateFormat), req.Time)
			return ErrSlotBlocked
		}

		// 3.3. Активные резервации дня с FOR UPDATE
		reservations, err := uc.resRepo.ListByDate(txCtx, date)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to list reservations: %v", err)
			return fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
		}

		// 3.4. Один слот - одна активная резервация
		for _, res := range reservations {
			if res.Time == req.Time && res.IsActive() {
				uc.logger.Warn("CreateReservation: slot %s %s already reserved by id=%d",
					date.Format(domain.DateFormat), req.Time, res.ID)
				return ErrSlotTaken
			}
		}

		// 3.5. Создаем резервацию
		created, err := uc.resRepo.Create(txCtx, &domain.Reservation{
			ClientName:  req.ClientName,
			ClientEmail: req.ClientEmail,
			Date:        date,
			Time:        req.Time,
			ServiceName: req.ServiceName,
			Notes:       req.Notes,
			Status:      domain.ReservationConfirmed,
		})
		if err != nil {
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%d", result.ID)

	return &Response{
		ID:          result.ID,
		ClientName:  result.ClientName,
		ClientEmail: result.ClientEmail,
		Date:        result.Date,
		Time:        result.Time,
		ServiceName: result.ServiceName,
		Notes:       result.Notes,
		Status:      string(result.Status),
		CreatedAt:   result.CreatedAt,
		UpdatedAt:   result.UpdatedAt,
	}, nil
}
