package get_available_hours

import "time"

// Request identifies the stylist and the day to inspect.
type Request struct {
	StylistID int64     `json:"stylistId"`
	Date      time.Time `json:"date"`
}

// Response lists the free hours of the working grid, ascending.
type Response struct {
	StylistID      int64    `json:"stylistId"`
	Date           string   `json:"date"`
	AvailableHours []string `json:"availableHours"`
}
