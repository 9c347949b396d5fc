package weekly_report

import "errors"

var (
	// ErrInvalidInput is returned on malformed request data.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on infrastructure failures.
	ErrInternal = errors.New("internal error")
)
