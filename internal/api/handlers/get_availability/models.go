package get_availability

import (
	"github.com/m04kA/BIM-AvailabilityService/internal/domain"
	getAvailability "github.com/m04kA/BIM-AvailabilityService/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Date           string   `json:"date"`  // "YYYY-MM-DD"
	State          string   `json:"state"` // "open" | "fullyBlocked" | "partiallyBlocked"
	BlockedTimes   []string `json:"blockedTimes"`
	AvailableTimes []string `json:"availableTimes"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	blocked := make([]string, 0, len(resp.BlockedTimes))
	for _, t := range resp.BlockedTimes {
		blocked = append(blocked, t.String())
	}

	available := make([]string, 0, len(resp.AvailableTimes))
	for _, t := range resp.AvailableTimes {
		available = append(available, t.String())
	}

	return &AvailabilityResponse{
		Date:           resp.Date.Format(domain.DateFormat),
		State:          string(resp.State),
		BlockedTimes:   blocked,
		AvailableTimes: available,
	}
}
