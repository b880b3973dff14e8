package vacation

import "errors"

var (
	ErrNotFound         = errors.New("vacation request not found")
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrNotPending       = errors.New("vacation request is not pending")
	ErrAlreadyCancelled = errors.New("vacation request is already cancelled")
)
