package resolver

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/kailas-cloud/dinefinder/internal/domain"
	"github.com/kailas-cloud/dinefinder/internal/domain/geo"
	"github.com/kailas-cloud/dinefinder/internal/domain/location"
	"github.com/kailas-cloud/dinefinder/internal/domain/normalize"
	"github.com/kailas-cloud/dinefinder/internal/logger"
)

// CoordinatesLabel is returned when the caller supplied an explicit pair.
const CoordinatesLabel = "Current Location"

type place struct {
	key   string
	label string
	coord geo.Coordinate
}

// Resolver turns a location query into a single coordinate.
// It holds only read-only state and is safe for concurrent use.
type Resolver struct {
	places   []place
	fallback location.Resolution
}

// New validates cfg and creates a Resolver.
func New(cfg Config) (*Resolver, error) {
	if !geo.ValidateCoordinates(cfg.Default.Coordinate.Latitude, cfg.Default.Coordinate.Longitude) {
		return nil, fmt.Errorf("default location: %w", domain.ErrInvalidCoordinate)
	}

	label := cfg.Default.Label
	if label == "" {
		label = cfg.Default.Name
	}

	r := &Resolver{
		places: make([]place, 0, len(cfg.Places)),
		fallback: location.Resolution{
			Coordinate: cfg.Default.Coordinate,
			Label:      label + " (default location)",
			Source:     location.SourceDefault,
		},
	}

	for i, p := range cfg.Places {
		key := normalize.Fold(p.Name)
		if key == "" {
			return nil, fmt.Errorf("place %d: name is required", i)
		}
		if !geo.ValidateCoordinates(p.Coordinate.Latitude, p.Coordinate.Longitude) {
			return nil, fmt.Errorf("place %q: %w", p.Name, domain.ErrInvalidCoordinate)
		}
		lbl := p.Label
		if lbl == "" {
			lbl = p.Name
		}
		r.places = append(r.places, place{key: key, label: lbl, coord: p.Coordinate})
	}

	return r, nil
}

// Resolve applies, in order: explicit coordinates, place lookup, default.
// Only a malformed or partial explicit pair is an error; unmatched text
// silently falls back to the default and is distinguishable via Source.
func (r *Resolver) Resolve(ctx context.Context, q location.Query) (location.Resolution, error) {
	if q.HasCoordinates() {
		if q.Latitude == nil || q.Longitude == nil {
			return location.Resolution{}, fmt.Errorf("%w: both latitude and longitude are required",
				domain.ErrMissingRequiredField)
		}
		c, err := geo.NewCoordinate(*q.Latitude, *q.Longitude)
		if err != nil {
			return location.Resolution{}, fmt.Errorf("resolve coordinates: %w", err)
		}
		return location.Resolution{Coordinate: c, Label: CoordinatesLabel, Source: location.SourceCoordinates}, nil
	}

	text := normalize.Fold(q.Text)
	if text != "" {
		for _, p := range r.places {
			if strings.Contains(text, p.key) {
				return location.Resolution{Coordinate: p.coord, Label: p.label, Source: location.SourceLookup}, nil
			}
		}
		logger.FromContext(ctx).Debug("location not resolved, using default",
			zap.String("query", q.Text),
		)
	}

	return r.fallback, nil
}

// Default returns the fallback resolution.
func (r *Resolver) Default() location.Resolution { return r.fallback }
