package catalog

import "errors"

var (
	ErrBuildQuery      = errors.New("failed to build SQL query")
	ErrExecQuery       = errors.New("failed to execute SQL query")
	ErrScanRow         = errors.New("failed to scan result row")
	ErrServiceNotFound = errors.New("service not found")
	ErrServiceExists   = errors.New("service already exists")
	ErrAlreadyOffered  = errors.New("service is already offered by the stylist")
	ErrNotOffered      = errors.New("service is not offered by the stylist")
)
