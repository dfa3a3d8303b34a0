package statistics

import (
	"context"
	"time"

	"github.com/m04kA/BIM-AvailabilityService/internal/domain"
)

// BlockedSlotRepository интерфейс репозитория блокировок
type BlockedSlotRepository interface {
	List(ctx context.Context, filter domain.BlockedSlotsFilter) ([]*domain.BlockedSlot, error)
}

// ReservationRepository интерфейс репозитория резерваций
type ReservationRepository interface {
	ListByDateRange(ctx context.Context, fromDate, toDate time.Time) ([]*domain.Reservation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
