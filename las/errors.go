package las

import "errors"

var (
	// ErrInvalidVersion is returned when the version section is missing or its
	// VERS value is not a positive number.
	ErrInvalidVersion = errors.New("invalid version")

	// ErrFieldNotFound is returned when a curve name is not in the curve section.
	ErrFieldNotFound = errors.New("field not found")
)
