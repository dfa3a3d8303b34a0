package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/BIM-AvailabilityService/internal/api/handlers"
	createReservation "github.com/m04kA/BIM-AvailabilityService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты или времени"
	msgSlotBlocked        = "выбранный слот заблокирован"
	msgSlotTaken          = "выбранный слот уже занят"
	msgTimeNotOnGrid      = "время не принадлежит сетке слотов"
	msgDateInPast         = "дата резервации в прошлом"
	msgInvalidReservation = "некорректный запрос на резервацию"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrSlotBlocked):
			h.logger.Warn("POST /reservations - Slot blocked: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondError(w, http.StatusConflict, msgSlotBlocked)

		case errors.Is(err, createReservation.ErrSlotTaken):
			h.logger.Warn("POST /reservations - Slot taken: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, createReservation.ErrTimeNotOnGrid):
			h.logger.Warn("POST /reservations - Time not on grid: time=%s", req.Time)
			handlers.RespondBadRequest(w, msgTimeNotOnGrid)

		case errors.Is(err, createReservation.ErrDateInPast):
			h.logger.Warn("POST /reservations - Date in past: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidReservation)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: date=%s, time=%s, error=%v",
				req.Date, req.Time, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created: id=%d, date=%s, time=%s",
		result.ID, req.Date, req.Time)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
