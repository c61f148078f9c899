package scoring

import "errors"

// Sentinel error kinds for this package. These allow errors.Is from
// callers deciding how to report an excluded district.
var (
	ErrMissingDistrict = errors.New("district absent from both input sets")
	ErrMissingHistory  = errors.New("election history record missing")
	ErrMissingFiling   = errors.New("candidate filing record missing")
	ErrMalformedRecord = errors.New("record missing required fields")
)
