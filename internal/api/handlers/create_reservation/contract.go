package create_reservation

import (
	"context"

	createReservation "github.com/m04kA/BIM-AvailabilityService/internal/usecase/create_reservation"
)

type CreateReservationUseCase interface {
	Execute(ctx context.Context, req *createReservation.Request) (*createReservation.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
