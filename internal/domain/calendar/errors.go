package calendar

import "errors"

var (
	ErrInvalidRange = errors.New("start must not be after end")
	ErrInvalidInput = errors.New("invalid input")
)
