package create_reservation

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrDateInPast возвращается при попытке резервации на прошедшую дату
	ErrDateInPast = errors.New("create_reservation: date is in the past")

	// ErrTimeNotOnGrid возвращается, когда время не принадлежит сетке слотов
	ErrTimeNotOnGrid = errors.New("create_reservation: time is not on the slot grid")

	// ErrSlotBlocked возвращается, когда слот закрыт блокировкой
	ErrSlotBlocked = errors.New("create_reservation: slot is blocked")

	// ErrSlotTaken возвращается, когда слот уже занят другой резервацией
	ErrSlotTaken = errors.New("create_reservation: slot is already reserved")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
