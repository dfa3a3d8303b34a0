package list_blocked_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/BIM-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/BIM-AvailabilityService/internal/domain"
	"github.com/m04kA/BIM-AvailabilityService/internal/service/blocks"
	"github.com/m04kA/BIM-AvailabilityService/internal/service/blocks/models"
)

const (
	msgInvalidFromDate = "некорректный формат fromDate, ожидается YYYY-MM-DD"
	msgInvalidToDate   = "некорректный формат toDate, ожидается YYYY-MM-DD"
	msgInvalidWindow   = "toDate раньше fromDate"
)

type Handler struct {
	service BlocksService
	logger  Logger
}

func NewHandler(service BlocksService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/blocked-slots?fromDate=&toDate=&includePast=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListBlockedDaysRequest{
		IncludePast: r.URL.Query().Get("includePast") == "true",
	}

	if raw := r.URL.Query().Get("fromDate"); raw != "" {
		fromDate, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /admin/blocked-slots - Invalid fromDate: %s", raw)
			handlers.RespondBadRequest(w, msgInvalidFromDate)
			return
		}
		req.FromDate = &fromDate
	}

	if raw := r.URL.Query().Get("toDate"); raw != "" {
		toDate, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /admin/blocked-slots - Invalid toDate: %s", raw)
			handlers.RespondBadRequest(w, msgInvalidToDate)
			return
		}
		req.ToDate = &toDate
	}

	result, err := h.service.ListBlockedDays(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, blocks.ErrInvalidInput):
			h.logger.Warn("GET /admin/blocked-slots - Invalid window: %v", err)
			handlers.RespondBadRequest(w, msgInvalidWindow)

		default:
			h.logger.Error("GET /admin/blocked-slots - Failed to list blocked days: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/blocked-slots - Fetched %d blocked days", len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, result)
}
