package domain

// Default booking window, hours in local time with an exclusive end:
// nine slots from "09:00" through "17:00".
const (
	DefaultDayStartHour = 9
	DefaultDayEndHour   = 18
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
