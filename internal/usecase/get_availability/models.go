package get_availability

import (
	"time"

	"github.com/m04kA/BIM-AvailabilityService/internal/domain"
	"github.com/m04kA/BIM-AvailabilityService/pkg/types"
)

// Request модель запроса доступности дня
type Request struct {
	Date time.Time // Запрашиваемый день
}

// Response модель ответа с доступностью дня
// AvailableTimes - слоты сетки, не попавшие в блокировки
type Response struct {
	Date           time.Time          // Запрашиваемый день
	State          domain.DayState    // open / fullyBlocked / partiallyBlocked
	BlockedTimes   []types.TimeString // Заблокированные времена (пусто для open и fullyBlocked)
	AvailableTimes []types.TimeString // Свободные времена сетки
}
