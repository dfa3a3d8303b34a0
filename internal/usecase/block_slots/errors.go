package block_slots

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("block_slots: invalid input data")

	// ErrUnknownBlockType возвращается при неизвестном типе блокировки
	ErrUnknownBlockType = errors.New("block_slots: unknown block type")

	// ErrEndDateBeforeStart возвращается, когда конец диапазона дат раньше начала
	ErrEndDateBeforeStart = errors.New("block_slots: end date is before start date")

	// ErrEndTimeBeforeStart возвращается, когда конец диапазона времени раньше начала
	ErrEndTimeBeforeStart = errors.New("block_slots: end time is before start time")

	// ErrTimeNotOnGrid возвращается, когда время не принадлежит сетке слотов
	ErrTimeNotOnGrid = errors.New("block_slots: time is not on the slot grid")

	// ErrEmptySelection возвращается, когда запрос не разворачивается ни в одну блокировку
	ErrEmptySelection = errors.New("block_slots: selection expands to zero slots")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("block_slots: internal error")
)
