package blocks

import "errors"

var (
	// ErrBlockedSlotNotFound возвращается, когда блокировка не найдена
	ErrBlockedSlotNotFound = errors.New("blocked slot not found")

	// ErrDayNotFound возвращается, когда на дату нет ни одной блокировки
	ErrDayNotFound = errors.New("no blocks found for date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
