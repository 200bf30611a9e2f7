package catalog

import (
	"context"
	"fmt"

	"github.com/kailas-cloud/dinefinder/internal/domain"
	domcat "github.com/kailas-cloud/dinefinder/internal/domain/catalog"
)

// Stats summarizes the loaded catalog.
type Stats struct {
	Entries  int
	Cuisines []string
}

// Service exposes lookups over the loaded catalog.
type Service struct {
	reader Reader
}

// New creates a catalog service.
func New(reader Reader) *Service {
	return &Service{reader: reader}
}

// Get returns the entry with the given ID.
func (s *Service) Get(_ context.Context, id string) (domcat.Entry, error) {
	e, ok := s.reader.ByID(id)
	if !ok {
		return domcat.Entry{}, fmt.Errorf("restaurant %q: %w", id, domain.ErrNotFound)
	}
	return e, nil
}

// Stats returns the entry count and distinct cuisines.
func (s *Service) Stats(_ context.Context) Stats {
	return Stats{Entries: s.reader.Len(), Cuisines: s.reader.Cuisines()}
}
