package catalog

import "errors"

var (
	// ErrServiceNotFound is returned when the named service is not in the catalog.
	ErrServiceNotFound = errors.New("service not found")

	// ErrServiceExists is returned when a service with the same name already exists.
	ErrServiceExists = errors.New("service already exists")

	// ErrAlreadyOffered is returned when the stylist already offers the service.
	ErrAlreadyOffered = errors.New("service is already offered by the stylist")

	// ErrNotOffered is returned when the stylist does not offer the service.
	ErrNotOffered = errors.New("service is not offered by the stylist")

	// ErrInvalidInput is returned on malformed service data.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on infrastructure failures.
	ErrInternal = errors.New("service: internal error")
)
