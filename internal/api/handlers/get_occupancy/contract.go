package get_occupancy

import (
	"context"

	"github.com/m04kA/BIM-AvailabilityService/internal/service/statistics/models"
)

type StatisticsService interface {
	Occupancy(ctx context.Context, req *models.OccupancyRequest) (*models.OccupancyReport, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
