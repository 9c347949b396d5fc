package appointment

import "errors"

var (
	ErrBuildQuery          = errors.New("failed to build SQL query")
	ErrExecQuery           = errors.New("failed to execute SQL query")
	ErrScanRow             = errors.New("failed to scan result row")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrSlotTaken           = errors.New("time slot is already taken")
)
