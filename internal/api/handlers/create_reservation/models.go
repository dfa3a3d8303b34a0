package create_reservation

import (
	"time"

	"github.com/m04kA/BIM-AvailabilityService/internal/domain"
	createReservation "github.com/m04kA/BIM-AvailabilityService/internal/usecase/create_reservation"
	"github.com/m04kA/BIM-AvailabilityService/pkg/types"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	ClientName  string  `json:"clientName"`
	ClientEmail string  `json:"clientEmail"`
	Date        string  `json:"date"` // "2026-09-15"
	Time        string  `json:"time"` // "10:00"
	ServiceName string  `json:"serviceName"`
	Notes       *string `json:"notes,omitempty"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID          int64   `json:"id"`
	ClientName  string  `json:"clientName"`
	ClientEmail string  `json:"clientEmail"`
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	ServiceName string  `json:"serviceName"`
	Notes       *string `json:"notes,omitempty"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest() (*createReservation.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	slotTime, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		ClientName:  r.ClientName,
		ClientEmail: r.ClientEmail,
		Date:        date,
		Time:        slotTime,
		ServiceName: r.ServiceName,
		Notes:       r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:          resp.ID,
		ClientName:  resp.ClientName,
		ClientEmail: resp.ClientEmail,
		Date:        resp.Date.Format(domain.DateFormat),
		Time:        resp.Time.String(),
		ServiceName: resp.ServiceName,
		Notes:       resp.Notes,
		Status:      resp.Status,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   resp.UpdatedAt.Format(time.RFC3339),
	}
}
