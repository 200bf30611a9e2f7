package dinefinder

import "github.com/kailas-cloud/dinefinder/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrNotFound             = domain.ErrNotFound
	ErrInvalidCoordinate    = domain.ErrInvalidCoordinate
	ErrMissingRequiredField = domain.ErrMissingRequiredField
	ErrInvalidFilter        = domain.ErrInvalidFilter
	ErrInvalidCatalog       = domain.ErrInvalidCatalog
)
