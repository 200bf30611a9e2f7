package search

import (
	"context"

	"github.com/kailas-cloud/dinefinder/internal/domain/catalog"
	"github.com/kailas-cloud/dinefinder/internal/domain/location"
)

// Resolver turns a location query into a coordinate.
type Resolver interface {
	Resolve(ctx context.Context, q location.Query) (location.Resolution, error)
}

// CatalogReader provides read-only access to catalog entries in catalog order.
type CatalogReader interface {
	Entries() []catalog.Entry
}
