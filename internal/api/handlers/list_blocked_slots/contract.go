package list_blocked_slots

import (
	"context"

	"github.com/m04kA/BIM-AvailabilityService/internal/service/blocks/models"
)

type BlocksService interface {
	ListBlockedDays(ctx context.Context, req *models.ListBlockedDaysRequest) (*models.BlockedDaysResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
