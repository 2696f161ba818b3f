package model

import "errors"

var (
	// ErrNotFound is returned when the shot log file does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidFormat is returned for malformed CSV values and matchup strings.
	ErrInvalidFormat = errors.New("invalid format")
)
