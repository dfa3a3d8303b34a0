package get_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/BIM-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/BIM-AvailabilityService/internal/service/reservations"
)

const (
	msgInvalidReservationID = "некорректный ID резервации"
	msgReservationNotFound  = "резервация не найдена"
)

type Handler struct {
	service ReservationsService
	logger  Logger
}

func NewHandler(service ReservationsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/reservations/{reservationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reservationID, err := strconv.ParseInt(mux.Vars(r)["reservationId"], 10, 64)
	if err != nil || reservationID <= 0 {
		h.logger.Warn("GET /reservations/{reservationId} - Invalid reservation ID: %s", mux.Vars(r)["reservationId"])
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	result, err := h.service.GetByID(r.Context(), reservationID)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("GET /reservations/{reservationId} - Reservation id=%d not found", reservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /reservations/{reservationId} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidReservationID)

		default:
			h.logger.Error("GET /reservations/{reservationId} - Failed to fetch reservation id=%d: %v", reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /reservations/{reservationId} - Fetched reservation id=%d", reservationID)
	handlers.RespondJSON(w, http.StatusOK, FromDomainReservation(result))
}
