package user

import "errors"

var (
	ErrBuildQuery   = errors.New("failed to build SQL query")
	ErrExecQuery    = errors.New("failed to execute SQL query")
	ErrScanRow      = errors.New("failed to scan result row")
	ErrUserNotFound = errors.New("user not found")
)
