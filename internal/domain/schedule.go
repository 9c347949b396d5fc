package domain

import "github.com/salonworks/booking-service/pkg/types"

// WorkDay is the bookable window of a business day, expressed as whole
// hours with an exclusive upper bound: {9, 18} offers "09:00".."17:00".
type WorkDay struct {
	StartHour int
	EndHour   int
}

// DefaultWorkDay matches the salon's historical opening hours.
func DefaultWorkDay() WorkDay {
	return WorkDay{StartHour: DefaultDayStartHour, EndHour: DefaultDayEndHour}
}

// IsValid reports whether the window describes at least one slot within
// a single day.
func (w WorkDay) IsValid() bool {
	return w.StartHour >= 0 && w.EndHour <= 24 && w.StartHour < w.EndHour
}

// Slots returns every bookable hour label, ascending.
func (w WorkDay) Slots() []types.TimeString {
	slots := make([]types.TimeString, 0, w.EndHour-w.StartHour)
	for hour := w.StartHour; hour < w.EndHour; hour++ {
		slots = append(slots, types.NewTimeStringFromHour(hour))
	}
	return slots
}

// Contains reports whether the given label is an offered slot: an
// on-the-hour time inside the window.
func (w WorkDay) Contains(hour types.TimeString) bool {
	h, err := hour.Hour()
	if err != nil {
		return false
	}
	m, err := hour.Minute()
	if err != nil || m != 0 {
		return false
	}
	return h >= w.StartHour && h < w.EndHour
}
