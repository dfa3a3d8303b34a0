package models

import "time"

// OccupancyRequest запрос отчета о занятости за период
type OccupancyRequest struct {
	FromDate time.Time `json:"fromDate"`
	ToDate   time.Time `json:"toDate"`
}

// OccupancyReport отчет о занятости слотов за период
// BookableSlots = TotalSlots - BlockedSlots: занятость считается от слотов,
// реально доступных для записи, а не от всей сетки
type OccupancyReport struct {
	FromDate      string  `json:"fromDate"` // "YYYY-MM-DD"
	ToDate        string  `json:"toDate"`   // "YYYY-MM-DD"
	Days          int     `json:"days"`
	TotalSlots    int     `json:"totalSlots"`
	BlockedSlots  int     `json:"blockedSlots"`
	BookableSlots int     `json:"bookableSlots"`
	ReservedSlots int     `json:"reservedSlots"`
	OccupancyRate float64 `json:"occupancyRate"` // Проценты, 0-100
}
