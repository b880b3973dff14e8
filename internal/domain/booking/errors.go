package booking

import "errors"

var (
	ErrNotFound         = errors.New("booking not found")
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrConflict         = errors.New("an active booking already covers this period")
	ErrCancelled        = errors.New("booking is cancelled")
	ErrLinked           = errors.New("booking has been converted to a vacation request")
	ErrAlreadyLinked    = errors.New("booking is already linked to a vacation request")
	ErrInvalidDays      = errors.New("days reserved must be greater than zero")
	ErrPastStartDate    = errors.New("booking cannot start in the past")
)
