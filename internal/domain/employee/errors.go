package employee

import "errors"

var (
	ErrNotFound        = errors.New("employee not found")
	ErrManagerNotFound = errors.New("manager not found")
	ErrSelfManager     = errors.New("employee cannot be their own manager")
	ErrManagerCycle    = errors.New("assignment would create a reporting cycle")
	ErrHasSubordinates = errors.New("employee still has active subordinates")
	ErrAlreadyInactive = errors.New("employee is already deactivated")
	ErrDuplicateFiscal = errors.New("fiscal number already registered")
	ErrDuplicateSocial = errors.New("social number already registered")
	ErrInvalidFiscal   = errors.New("invalid fiscal number")
	ErrInvalidSocial   = errors.New("invalid social security number")
)
