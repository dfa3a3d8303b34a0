package block_slots

import (
	"time"

	"github.com/m04kA/BIM-AvailabilityService/internal/domain"
	blockSlots "github.com/m04kA/BIM-AvailabilityService/internal/usecase/block_slots"
	"github.com/m04kA/BIM-AvailabilityService/pkg/types"
)

// BlockSlotsRequest HTTP request model
type BlockSlotsRequest struct {
	BlockType string   `json:"blockType"`           // "single" | "range" | "timeRange" | "specificSlots"
	Date      string   `json:"date"`                // "2026-09-15"
	EndDate   *string  `json:"endDate,omitempty"`   // Конец диапазона, включительно
	AllDay    bool     `json:"allDay,omitempty"`    // Блокировать день целиком
	Times     []string `json:"times,omitempty"`     // Выбранные времена "HH:MM"
	StartTime *string  `json:"startTime,omitempty"` // Начало окна (timeRange)
	EndTime   *string  `json:"endTime,omitempty"`   // Конец окна, включительно (timeRange)
	Reason    *string  `json:"reason,omitempty"`    // Причина блокировки
}

// BlockSlotsResponse HTTP response model с агрегированным результатом батча
type BlockSlotsResponse struct {
	Requested int      `json:"requested"`
	Succeeded int      `json:"succeeded"`
	Failed    int      `json:"failed"`
	Skipped   int      `json:"skipped"`
	Errors    []string `json:"errors,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *BlockSlotsRequest) ToUseCaseRequest() (*blockSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	req := &blockSlots.Request{
		BlockType: blockSlots.BlockType(r.BlockType),
		Date:      date,
		AllDay:    r.AllDay,
	}

	if r.EndDate != nil {
		endDate, err := time.Parse(domain.DateFormat, *r.EndDate)
		if err != nil {
			return nil, err
		}
		req.EndDate = &endDate
	}

	for _, t := range r.Times {
		parsed, err := types.NewTimeStringFromString(t)
		if err != nil {
			return nil, err
		}
		req.Times = append(req.Times, parsed)
	}

	if r.StartTime != nil {
		parsed, err := types.NewTimeStringFromString(*r.StartTime)
		if err != nil {
			return nil, err
		}
		req.StartTime = parsed
	}

	if r.EndTime != nil {
		parsed, err := types.NewTimeStringFromString(*r.EndTime)
		if err != nil {
			return nil, err
		}
		req.EndTime = parsed
	}

	if r.Reason != nil {
		req.Reason = *r.Reason
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *blockSlots.Response) *BlockSlotsResponse {
	return &BlockSlotsResponse{
		Requested: resp.Requested,
		Succeeded: resp.Succeeded,
		Failed:    resp.Failed,
		Skipped:   resp.Skipped,
		Errors:    resp.Errors,
	}
}
