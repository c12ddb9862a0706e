package dashboard

import "errors"

var (
	// ErrInvalidInput is returned when a create request fails validation
	ErrInvalidInput = errors.New("invalid input")

	// ErrConfigNil is returned when New is called without a configuration
	ErrConfigNil = errors.New("config is nil")
)
