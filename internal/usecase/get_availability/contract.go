package get_availability

import (
	"context"

	"github.com/m04kA/BIM-AvailabilityService/internal/domain"
)

// BlockedSlotRepository интерфейс репозитория блокировок
type BlockedSlotRepository interface {
	List(ctx context.Context, filter domain.BlockedSlotsFilter) ([]*domain.BlockedSlot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
