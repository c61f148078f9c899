package dataset

import "errors"

// Sentinel error kinds for this package.
var (
	ErrReadFile  = errors.New("read data file failed")
	ErrParseFile = errors.New("parse data file failed")
)
