package service

import "errors"

// Sentinel error kinds for this package.
var (
	ErrNotReady = errors.New("no scoring run completed yet")
)
