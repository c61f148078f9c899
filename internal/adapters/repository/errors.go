package repository

import "errors"

// Sentinel kinds for district board errors.
var (
	ErrNotFound       = errors.New("district not found")
	ErrInvalidLimit   = errors.New("invalid ranking limit")
	ErrUnknownChamber = errors.New("unknown chamber")
	ErrNilRecord      = errors.New("nil opportunity record")
)
