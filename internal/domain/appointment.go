package domain

import (
	"time"

	"github.com/salonworks/booking-service/pkg/types"
)

// AppointmentStatus represents the lifecycle state of an appointment.
type AppointmentStatus string

const (
	// StatusValid is the only active state; appointments are created valid.
	StatusValid AppointmentStatus = "valid"
	// StatusCancelled is terminal, set by an explicit cancellation.
	StatusCancelled AppointmentStatus = "cancelled"
	// StatusCompleted is terminal, set by the past-appointment sweep.
	StatusCompleted AppointmentStatus = "completed"
)

// Appointment represents a booked hour slot of a stylist.
type Appointment struct {
	ID          int64
	ClientID    int64
	StylistID   int64
	ScheduledAt time.Time // calendar date + hour, minutes always :00
	Status      AppointmentStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsValid returns true while the appointment still claims its slot.
func (a *Appointment) IsValid() bool {
	return a.Status == StatusValid
}

// CanBeCancelled returns true if the appointment can still be cancelled.
// Cancelled and completed are terminal states.
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusValid
}

// IsTerminal returns true once no further transition is allowed.
func (a *Appointment) IsTerminal() bool {
	return a.Status == StatusCancelled || a.Status == StatusCompleted
}

// Hour returns the slot label of the scheduled instant.
func (a *Appointment) Hour() types.TimeString {
	return types.NewTimeString(a.ScheduledAt)
}

// WeekEntry is one appointment row of a stylist's weekly calendar grid.
type WeekEntry struct {
	DayIndex   int // Monday=0 .. Sunday=6
	Hour       types.TimeString
	ClientName string
	Status     AppointmentStatus
	Services   string // comma-joined service names, name-ordered
}

// ValidStatuses enumerates every status the store accepts.
var ValidStatuses = []AppointmentStatus{
	StatusValid,
	StatusCancelled,
	StatusCompleted,
}

// ParseStatus validates a raw status value.
func ParseStatus(s string) (AppointmentStatus, bool) {
	for _, status := range ValidStatuses {
		if AppointmentStatus(s) == status {
			return status, true
		}
	}
	return "", false
}
