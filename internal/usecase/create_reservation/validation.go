package create_reservation

import (
	"fmt"
	"strings"

	"github.com/m04kA/BIM-AvailabilityService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, grid *domain.SlotGrid) error {
	if strings.TrimSpace(req.ClientName) == "" {
		return fmt.Errorf("%w: clientName is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.ClientEmail) == "" || !strings.Contains(req.ClientEmail, "@") {
		return fmt.Errorf("%w: valid clientEmail is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.ServiceName) == "" {
		return fmt.Errorf("%w: serviceName is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.Time.IsZero() {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}

	if err := req.Time.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
	}

	if !grid.Contains(req.Time) {
		return fmt.Errorf("%w: %q", ErrTimeNotOnGrid, req.Time)
	}

	return nil
}
