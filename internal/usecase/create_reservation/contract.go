package create_reservation

import (
	"context"
	"time"

	"github.com/m04kA/BIM-AvailabilityService/internal/domain"
)

// BlockedSlotRepository интерфейс репозитория блокировок
type BlockedSlotRepository interface {
	ListByDate(ctx context.Context, date time.Time) ([]*domain.BlockedSlot, error)
}

// ReservationRepository интерфейс репозитория резерваций
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
	ListByDate(ctx context.Context, date time.Time) ([]*domain.Reservation, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
