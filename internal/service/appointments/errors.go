package appointments

import "errors"

var (
	// ErrAppointmentNotFound is returned when the appointment does not exist.
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrUserNotFound is returned when the requested user does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrAccessDenied is returned when the requester may not touch the appointment.
	ErrAccessDenied = errors.New("access denied")

	// ErrCannotCancel is returned when the appointment is already in a terminal state.
	ErrCannotCancel = errors.New("appointment cannot be cancelled")

	// ErrInternal is returned on infrastructure failures.
	ErrInternal = errors.New("service: internal error")
)
