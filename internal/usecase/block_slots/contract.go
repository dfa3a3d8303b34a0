package block_slots

import (
	"context"
	"time"

	"github.com/m04kA/BIM-AvailabilityService/internal/domain"
)

// BlockedSlotRepository интерфейс репозитория блокировок
type BlockedSlotRepository interface {
	Insert(ctx context.Context, slot *domain.BlockedSlot) (*domain.BlockedSlot, error)
	List(ctx context.Context, filter domain.BlockedSlotsFilter) ([]*domain.BlockedSlot, error)
	DeleteTimesByDate(ctx context.Context, date time.Time) (int64, error)
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
