package delete_blocked_day

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/BIM-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/BIM-AvailabilityService/internal/domain"
	"github.com/m04kA/BIM-AvailabilityService/internal/service/blocks"
)

const (
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgDayNotFound = "на указанную дату нет блокировок"
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

// Handle DELETE /api/v1/admin/blocked-days/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rawDate := mux.Vars(r)["date"]
	date, err := time.Parse(domain.DateFormat, rawDate)
	if err != nil {
		h.logger.Warn("DELETE /admin/blocked-days/{date} - Invalid date: %s", rawDate)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	deleted, err := h.service.DeleteBlockedDay(r.Context(), date)
	if err != nil {
		switch {
		case errors.Is(err, blocks.ErrDayNotFound):
			h.logger.Warn("DELETE /admin/blocked-days/{date} - No blocks on %s", rawDate)
			handlers.RespondNotFound(w, msgDayNotFound)

		case errors.Is(err, blocks.ErrInvalidInput):
			h.logger.Warn("DELETE /admin/blocked-days/{date} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("DELETE /admin/blocked-days/{date} - Failed to delete blocks on %s: %v", rawDate, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/blocked-days/{date} - Deleted %d blocks on %s", deleted, rawDate)
	handlers.RespondNoContent(w)
}
