package config

import "errors"

var (
	// ErrNilConfig indicates Load was handed a nil pointer.
	ErrNilConfig = errors.New("config: nil config pointer")

	// ErrParseFailed indicates the environment could not be parsed into the
	// config struct, typically a missing required variable or a bad value.
	ErrParseFailed = errors.New("config: failed to parse environment")
)
