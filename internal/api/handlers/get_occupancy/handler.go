package get_occupancy

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/BIM-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/BIM-AvailabilityService/internal/domain"
	"github.com/m04kA/BIM-AvailabilityService/internal/service/statistics"
	"github.com/m04kA/BIM-AvailabilityService/internal/service/statistics/models"
)

const (
	msgMissingDates  = "параметры fromDate и toDate обязательны"
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidWindow = "некорректный период отчета"
)

type Handler struct {
	service StatisticsService
	logger  Logger
}

func NewHandler(service StatisticsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/statistics/occupancy?fromDate=&toDate=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rawFrom := r.URL.Query().Get("fromDate")
	rawTo := r.URL.Query().Get("toDate")
	if rawFrom == "" || rawTo == "" {
		h.logger.Warn("GET /admin/statistics/occupancy - Missing date parameters")
		handlers.RespondBadRequest(w, msgMissingDates)
		return
	}

	fromDate, err := time.Parse(domain.DateFormat, rawFrom)
	if err != nil {
		h.logger.Warn("GET /admin/statistics/occupancy - Invalid fromDate: %s", rawFrom)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	toDate, err := time.Parse(domain.DateFormat, rawTo)
	if err != nil {
		h.logger.Warn("GET /admin/statistics/occupancy - Invalid toDate: %s", rawTo)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.Occupancy(r.Context(), &models.OccupancyRequest{
		FromDate: fromDate,
		ToDate:   toDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, statistics.ErrInvalidInput):
			h.logger.Warn("GET /admin/statistics/occupancy - Invalid window: %v", err)
			handlers.RespondBadRequest(w, msgInvalidWindow)

		default:
			h.logger.Error("GET /admin/statistics/occupancy - Failed to build report: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/statistics/occupancy - period=%s to %s, rate=%.2f%%",
		rawFrom, rawTo, result.OccupancyRate)
	handlers.RespondJSON(w, http.StatusOK, result)
}
