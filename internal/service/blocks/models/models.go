package models

import (
	"time"

	"github.com/m04kA/BIM-AvailabilityService/internal/domain"
)

// Request модели

// ListBlockedDaysRequest запрос на получение блокировок, сгруппированных по дням
type ListBlockedDaysRequest struct {
	FromDate    *time.Time `json:"fromDate,omitempty"`    // Начало окна (опционально)
	ToDate      *time.Time `json:"toDate,omitempty"`      // Конец окна (опционально)
	IncludePast bool       `json:"includePast,omitempty"` // Включить прошедшие дни
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListBlockedDaysRequest) ToDomainFilter() domain.BlockedSlotsFilter {
	return domain.BlockedSlotsFilter{
		FromDate: r.FromDate,
		ToDate:   r.ToDate,
	}
}

// Response модели

// BlockedSlotInfo одна блокировка внутри дня
type BlockedSlotInfo struct {
	ID     int64   `json:"id"`
	Time   *string `json:"time"` // null для all-day блокировки
	AllDay bool    `json:"allDay"`
	Reason string  `json:"reason"`
}

// BlockedDay все блокировки одного дня
// State повторяет классификацию доступности: fullyBlocked / partiallyBlocked
type BlockedDay struct {
	Date  string            `json:"date"` // "YYYY-MM-DD"
	State string            `json:"state"`
	Slots []BlockedSlotInfo `json:"slots"`
}

// BlockedDaysResponse список дней с блокировками
type BlockedDaysResponse struct {
	Days []BlockedDay `json:"days"`
}

// FromDomainBlockedSlot конвертирует domain блокировку в response модель
func FromDomainBlockedSlot(slot *domain.BlockedSlot) BlockedSlotInfo {
	info := BlockedSlotInfo{
		ID:     slot.ID,
		AllDay: slot.IsAllDay(),
		Reason: slot.Reason,
	}
	if slot.Time != nil {
		t := slot.Time.String()
		info.Time = &t
	}
	return info
}
