package weekly_report

// Request identifies the stylist to report on.
type Request struct {
	StylistID int64 `json:"stylistId"`
}

// Entry is one appointment cell in the weekly grid.
type Entry struct {
	Hour       string `json:"hour"`
	ClientName string `json:"clientName"`
	Status     string `json:"status"`
	Services   string `json:"services"`
}

// Response is the weekly report for the current Monday-start week.
// Days maps the day index (Monday = 0 .. Sunday = 6) to that day's
// appointments ordered by hour; days without appointments are absent.
type Response struct {
	StylistID int64           `json:"stylistId"`
	WeekStart string          `json:"weekStart"`
	WeekEnd   string          `json:"weekEnd"`
	Days      map[int][]Entry `json:"days"`
	Revenue   float64         `json:"revenue"`
}
