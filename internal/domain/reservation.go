package domain

import (
	"time"

	"github.com/m04kA/BIM-AvailabilityService/pkg/types"
)

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationCancelled ReservationStatus = "cancelled"
)

// Reservation represents a confirmed client booking for one grid slot.
// The booking UI is an external collaborator; this service only owns the
// commit step so the availability check happens at commit time.
type Reservation struct {
	ID          int64
	ClientName  string
	ClientEmail string
	Date        time.Time // calendar day, no time component
	Time        types.TimeString
	ServiceName string
	Notes       *string
	Status      ReservationStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the reservation still occupies its slot
func (r *Reservation) IsActive() bool {
	return r.Status != ReservationCancelled
}
