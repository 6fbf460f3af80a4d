package core

import "errors"

var (
	// ErrOutOfRange is reported by low-level buffer operations when a row or
	// column argument falls outside valid bounds. High-level cursor moves
	// clamp instead of erroring.
	ErrOutOfRange = errors.New("position out of range")

	// ErrInvalidPattern is reported by SetSearchPattern when the pattern does
	// not compile. The previous search state is left untouched.
	ErrInvalidPattern = errors.New("invalid search pattern")
)
