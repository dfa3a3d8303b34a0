package types

import (
	"errors"
	"fmt"
	"time"
)

// timeFormat формат времени "HH:MM"
const timeFormat = "15:04"

// ErrInvalidTimeString возвращается при некорректном формате строки времени
var ErrInvalidTimeString = errors.New("invalid time string format")

// TimeString represents a time of day as "HH:MM".
// Stored and transferred as a plain string, compared through parsing.
type TimeString string

// NewTimeString создает TimeString из time.Time (отбрасывает дату и секунды)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeFormat))
}

// NewTimeStringFromString создает TimeString из строки с валидацией формата
func NewTimeStringFromString(s string) (TimeString, error) {
	if _, err := time.Parse(timeFormat, s); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	return TimeString(s), nil
}

// String возвращает строковое представление "HH:MM"
func (t TimeString) String() string {
	return string(t)
}

// IsZero возвращает true для пустого значения
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет, что значение соответствует формату "HH:MM"
func (t TimeString) Validate() error {
	if _, err := time.Parse(timeFormat, string(t)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return nil
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	tt, err1 := time.Parse(timeFormat, string(t))
	ot, err2 := time.Parse(timeFormat, string(other))
	if err1 != nil || err2 != nil {
		return false
	}
	return tt.Before(ot)
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	tt, err1 := time.Parse(timeFormat, string(t))
	ot, err2 := time.Parse(timeFormat, string(other))
	if err1 != nil || err2 != nil {
		return false
	}
	return tt.After(ot)
}

// AddMinutes возвращает новый TimeString, сдвинутый на minutes минут вперед
// Переход через полночь считается ошибкой: слоты живут внутри одного дня
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	tt, err := time.Parse(timeFormat, string(t))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}

	shifted := tt.Add(time.Duration(minutes) * time.Minute)
	if shifted.Day() != tt.Day() {
		return "", fmt.Errorf("%w: %q + %dmin crosses midnight", ErrInvalidTimeString, string(t), minutes)
	}

	return TimeString(shifted.Format(timeFormat)), nil
}
