package api

import "errors"

// Sentinel kinds for API errors.
var (
	ErrBadRequest     = errors.New("bad request")
	ErrUnknownChamber = errors.New("unknown chamber; use house or senate")
	ErrInvalidLimit   = errors.New("limit must be a positive integer")
)
