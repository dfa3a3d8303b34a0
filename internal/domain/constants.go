package domain

// Default slot grid values (institute business hours)
const (
	DefaultGridOpenTime    = "09:00"
	DefaultGridCloseTime   = "23:00"
	DefaultGridStepMinutes = 30
)

// Business validation constants
const (
	MinGridStepMinutes = 5
	MaxGridStepMinutes = 240
	MaxReasonLength    = 500
)

// Default reasons substituted when the operator leaves the field empty
const (
	DefaultBlockReason     = "Indisponible"
	DefaultTimeRangeReason = "Plage horaire bloquée"
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
