package domain

// Working day boundaries: hourly slots from 08:00 up to and including 17:00.
const (
	FirstSlotHour = 8
	LastSlotHour  = 17
)

// Field validation constants
const (
	MinClientNameLength  = 2
	MinClientPhoneDigits = 10
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
