package asuna

import "go.llib.dev/frameless/pkg/errorkit"

const (
	// ErrInvalidArgument is returned when a size or count argument is not positive,
	// or when a required argument is missing.
	ErrInvalidArgument errorkit.Error = "invalid argument"
	// ErrEmptyInput is returned when an operation needs at least one value.
	ErrEmptyInput errorkit.Error = "empty input"
	// ErrInsufficientData is returned when a sample statistic needs more data points than given.
	ErrInsufficientData errorkit.Error = "insufficient data"
	// ErrNoUniqueMode is returned when more than one value is equally the most common.
	ErrNoUniqueMode errorkit.Error = "no unique mode"
	// ErrKeyNotFound is returned on lookup of an absent key without a configured default.
	ErrKeyNotFound errorkit.Error = "key not found"
	// ErrIO is returned when a file can't be opened, written or closed.
	ErrIO errorkit.Error = "io error"
	// ErrInvalidFormat is returned when file contents can't be decoded into the target type.
	ErrInvalidFormat errorkit.Error = "invalid format"
)
