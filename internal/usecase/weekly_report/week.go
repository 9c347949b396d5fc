package weekly_report

import "time"

// weekBounds returns the half-open interval [Monday 00:00, next Monday 00:00)
// of the week containing now, in now's location.
func weekBounds(now time.Time) (time.Time, time.Time) {
	// time.Weekday starts the week on Sunday; shift so Monday is 0.
	offset := (int(now.Weekday()) + 6) % 7

	monday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, -offset)

	return monday, monday.AddDate(0, 0, 7)
}
