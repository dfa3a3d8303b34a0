package block_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/BIM-AvailabilityService/internal/api/handlers"
	blockSlots "github.com/m04kA/BIM-AvailabilityService/internal/usecase/block_slots"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgUnknownBlockType    = "неизвестный тип блокировки"
	msgEndDateBeforeStart  = "конец диапазона дат раньше начала"
	msgEndTimeBeforeStart  = "конец диапазона времени раньше начала"
	msgTimeNotOnGrid       = "время не принадлежит сетке слотов"
	msgEmptySelection      = "не выбрано ни одного слота для блокировки"
	msgInvalidBlockRequest = "некорректный запрос на блокировку"
)

type Handler struct {
	useCase BlockSlotsUseCase
	logger  Logger
}

func NewHandler(useCase BlockSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/blocked-slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BlockSlotsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/blocked-slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /admin/blocked-slots - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, blockSlots.ErrUnknownBlockType):
			h.logger.Warn("POST /admin/blocked-slots - Unknown block type: %s", req.BlockType)
			handlers.RespondBadRequest(w, msgUnknownBlockType)

		case errors.Is(err, blockSlots.ErrEndDateBeforeStart):
			h.logger.Warn("POST /admin/blocked-slots - End date before start: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgEndDateBeforeStart)

		case errors.Is(err, blockSlots.ErrEndTimeBeforeStart):
			h.logger.Warn("POST /admin/blocked-slots - End time before start: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgEndTimeBeforeStart)

		case errors.Is(err, blockSlots.ErrTimeNotOnGrid):
			h.logger.Warn("POST /admin/blocked-slots - Time not on grid: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgTimeNotOnGrid)

		case errors.Is(err, blockSlots.ErrEmptySelection):
			h.logger.Warn("POST /admin/blocked-slots - Empty selection: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgEmptySelection)

		case errors.Is(err, blockSlots.ErrInvalidInput):
			h.logger.Warn("POST /admin/blocked-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidBlockRequest)

		default:
			h.logger.Error("POST /admin/blocked-slots - Failed to block slots: date=%s, error=%v", req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/blocked-slots - Blocked slots: requested=%d, succeeded=%d, failed=%d, skipped=%d",
		result.Requested, result.Succeeded, result.Failed, result.Skipped)

	// Частичный успех остается 200 с заполненным errors[]; 502 только когда
	// не записалась ни одна блокировка
	status := http.StatusOK
	if result.Failed > 0 && result.Succeeded == 0 {
		status = http.StatusBadGateway
	}
	handlers.RespondJSON(w, status, FromUseCaseResponse(result))
}
