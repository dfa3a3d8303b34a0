package get_reservation

import (
	"time"

	"github.com/m04kA/BIM-AvailabilityService/internal/domain"
)

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

// FromDomainReservation конвертирует domain резервацию в HTTP response
func FromDomainReservation(res *domain.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:          res.ID,
		ClientName:  res.ClientName,
		ClientEmail: res.ClientEmail,
		Date:        res.Date.Format(domain.DateFormat),
		Time:        res.Time.String(),
		ServiceName: res.ServiceName,
		Notes:       res.Notes,
		Status:      string(res.Status),
		CreatedAt:   res.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   res.UpdatedAt.Format(time.RFC3339),
	}
}
