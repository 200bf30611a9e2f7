package domain

import "errors"

var (
	// ErrNotFound signals a missing catalog entry.
	ErrNotFound = errors.New("not found")
	// ErrInvalidCoordinate signals a malformed or out-of-range latitude/longitude.
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	// ErrMissingRequiredField signals an absent required request field.
	ErrMissingRequiredField = errors.New("missing required field")
	// ErrInvalidFilter signals a filter value outside its domain.
	ErrInvalidFilter = errors.New("invalid filter")
	// ErrRateLimited signals a rate limit hit.
	ErrRateLimited = errors.New("rate limited")
	// ErrInvalidCatalog signals catalog data that cannot be loaded.
	ErrInvalidCatalog = errors.New("invalid catalog")
)
