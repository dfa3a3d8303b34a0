package block_slots

import (
	"time"

	"github.com/m04kA/BIM-AvailabilityService/pkg/types"
)

// BlockType тип намерения блокировки
type BlockType string

const (
	// BlockTypeSingle блокировка одного дня: весь день или набор времён
	BlockTypeSingle BlockType = "single"
	// BlockTypeRange блокировка диапазона дат, каждый день одинаково
	BlockTypeRange BlockType = "range"
	// BlockTypeTimeRange блокировка непрерывного окна времени на диапазоне дат
	BlockTypeTimeRange BlockType = "timeRange"
	// BlockTypeSpecificSlots точечная блокировка выбранных слотов на диапазоне дат
	BlockTypeSpecificSlots BlockType = "specificSlots"
)

// Request модель запроса на блокировку слотов
type Request struct {
	BlockType BlockType          // Тип блокировки
	Date      time.Time          // Начальная дата (для single - единственная)
	EndDate   *time.Time         // Конечная дата диапазона (включительно, опционально)
	AllDay    bool               // Блокировать день целиком (single/range)
	Times     []types.TimeString // Выбранные времена (single/range/specificSlots)
	StartTime types.TimeString   // Начало окна времени (timeRange)
	EndTime   types.TimeString   // Конец окна времени, включительно (timeRange)
	Reason    string             // Причина блокировки (опционально)
}

// Response модель ответа с агрегированным результатом батча
type Response struct {
	Requested int      // Сколько блокировок развернуто из запроса
	Succeeded int      // Сколько сохранено
	Failed    int      // Сколько упало на сохранении
	Skipped   int      // Сколько пропущено (день уже заблокирован целиком)
	Errors    []string // Сообщения по упавшим блокировкам
}
