package book_appointment

import "errors"

var (
	// ErrInvalidInput is returned on malformed request data.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidDate is returned when the requested moment is in the past.
	ErrInvalidDate = errors.New("appointment date is in the past")

	// ErrHourNotBookable is returned when the hour is outside the working grid.
	ErrHourNotBookable = errors.New("hour is outside working hours")

	// ErrClientNotFound is returned when the client does not exist or is inactive.
	ErrClientNotFound = errors.New("client not found")

	// ErrStylistNotFound is returned when the stylist does not exist or is inactive.
	ErrStylistNotFound = errors.New("stylist not found")

	// ErrServiceNotFound is returned when the stylist does not offer a requested service.
	ErrServiceNotFound = errors.New("service not found")

	// ErrAccessDenied is returned when a non-manager books on another client's behalf.
	ErrAccessDenied = errors.New("access denied")

	// ErrSlotTaken is returned when the stylist already has a valid appointment at that hour.
	ErrSlotTaken = errors.New("time slot is already taken")

	// ErrInternal is returned on infrastructure failures.
	ErrInternal = errors.New("internal error")
)
