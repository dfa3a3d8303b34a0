package delete_blocked_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/BIM-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/BIM-AvailabilityService/internal/service/blocks"
)

const msgInvalidSlotID = "некорректный ID блокировки"

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

// Handle DELETE /api/v1/admin/blocked-slots/{slotId}
// Удаление отсутствующей записи отвечает 204: результат для оператора
// одинаков, блокировки больше нет
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slotID, err := strconv.ParseInt(mux.Vars(r)["slotId"], 10, 64)
	if err != nil || slotID <= 0 {
		h.logger.Warn("DELETE /admin/blocked-slots/{slotId} - Invalid slot ID: %s", mux.Vars(r)["slotId"])
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	if err := h.service.DeleteBlockedSlot(r.Context(), slotID); err != nil {
		switch {
		case errors.Is(err, blocks.ErrBlockedSlotNotFound):
			h.logger.Warn("DELETE /admin/blocked-slots/{slotId} - Blocked slot id=%d already absent", slotID)
			handlers.RespondNoContent(w)

		case errors.Is(err, blocks.ErrInvalidInput):
			h.logger.Warn("DELETE /admin/blocked-slots/{slotId} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSlotID)

		default:
			h.logger.Error("DELETE /admin/blocked-slots/{slotId} - Failed to delete id=%d: %v", slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/blocked-slots/{slotId} - Deleted blocked slot id=%d", slotID)
	handlers.RespondNoContent(w)
}
