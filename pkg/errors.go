package bumpversion

import "errors"

// Error classes returned by this package. Callers should match them with
// errors.Is; the wrapped message carries the detail.
var (
	// ErrInvalidArgument is returned for an unknown bump type, a missing
	// required input or a version component that is not a number.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrEnvironment is returned when the output file command is selected
	// but its environment variable or target file is missing.
	ErrEnvironment = errors.New("environment error")

	// ErrProtocolViolation is returned when an output name or value
	// contains the generated heredoc delimiter.
	ErrProtocolViolation = errors.New("protocol violation")
)
