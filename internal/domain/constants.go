package domain

// Default duration values (minutes)
const (
	DefaultServiceDurationMinutes = 60
	RepairDurationMinutes         = 90
	PartsBaseDurationMinutes      = 30
	PartsPerItemMinutes           = 15
)

// Business validation constants
const (
	// MinAdvanceBookingDays бронировать можно не раньше, чем на завтра
	MinAdvanceBookingDays = 1
	// BookingWindowDays глубина окна бронирования, считая от завтрашнего дня
	BookingWindowDays = 7

	MinProblemDescriptionChars = 10
	MaxNotesLength             = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
