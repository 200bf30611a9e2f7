package search

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kailas-cloud/dinefinder/internal/domain/geo"
	"github.com/kailas-cloud/dinefinder/internal/domain/location"
	"github.com/kailas-cloud/dinefinder/internal/domain/search/filter"
	"github.com/kailas-cloud/dinefinder/internal/domain/search/result"
	"github.com/kailas-cloud/dinefinder/internal/logger"
	"github.com/kailas-cloud/dinefinder/internal/metrics"
	"github.com/kailas-cloud/dinefinder/internal/usecase/ranker"
)

// ResultCap is the maximum number of entries returned per search.
const ResultCap = 5

// Service runs nearby searches against a shared read-only catalog.
// It keeps no per-request state.
type Service struct {
	resolver Resolver
	catalog  CatalogReader
}

// New creates a search service.
func New(resolver Resolver, catalog CatalogReader) *Service {
	return &Service{resolver: resolver, catalog: catalog}
}

// Search resolves the query location, ranks the catalog by distance with the
// optional filter applied, and returns at most ResultCap entries.
func (s *Service) Search(ctx context.Context, q location.Query, spec *filter.Spec) (result.Search, error) {
	// Explicit coordinates are checked before anything else runs.
	if q.Latitude != nil && q.Longitude != nil {
		if _, err := geo.NewCoordinate(*q.Latitude, *q.Longitude); err != nil {
			return result.Search{}, fmt.Errorf("validate coordinates: %w", err)
		}
	}

	resolved, err := s.resolver.Resolve(ctx, q)
	if err != nil {
		return result.Search{}, fmt.Errorf("resolve location: %w", err)
	}

	items := ranker.Rank(resolved.Coordinate, s.catalog.Entries(), spec, ResultCap)

	metrics.SearchRequestsTotal.WithLabelValues(string(resolved.Source)).Inc()
	metrics.SearchResults.Observe(float64(len(items)))

	logger.FromContext(ctx).Debug("search completed",
		zap.String("source", string(resolved.Source)),
		zap.Float64("latitude", resolved.Coordinate.Latitude),
		zap.Float64("longitude", resolved.Coordinate.Longitude),
		zap.Bool("filtered", spec != nil && !spec.IsEmpty()),
		zap.Int("results", len(items)),
	)

	return result.NewSearch(items, resolved), nil
}
