package config

import "errors"

var (
	// ErrInvalidOption indicates an option value of the wrong type or out of
	// range (for example, a non-positive request timeout).
	ErrInvalidOption = errors.New("invalid option")
	// ErrInvalidRuntimeConfig indicates invalid CLI runtime settings
	// (for example, an unknown log format).
	ErrInvalidRuntimeConfig = errors.New("invalid runtime configuration")
)
