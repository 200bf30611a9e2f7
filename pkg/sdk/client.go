package dinefinder

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kailas-cloud/dinefinder/internal/db"
	dbRedis "github.com/kailas-cloud/dinefinder/internal/db/redis"
	domcat "github.com/kailas-cloud/dinefinder/internal/domain/catalog"
	"github.com/kailas-cloud/dinefinder/internal/domain/geo"
	"github.com/kailas-cloud/dinefinder/internal/domain/location"
	"github.com/kailas-cloud/dinefinder/internal/domain/search/filter"
	"github.com/kailas-cloud/dinefinder/internal/domain/search/result"
	catalogrepo "github.com/kailas-cloud/dinefinder/internal/repository/catalog"
	cataloguc "github.com/kailas-cloud/dinefinder/internal/usecase/catalog"
	healthuc "github.com/kailas-cloud/dinefinder/internal/usecase/health"
	"github.com/kailas-cloud/dinefinder/internal/usecase/resolver"
	searchuc "github.com/kailas-cloud/dinefinder/internal/usecase/search"
)

const readyTimeout = 10 * time.Second

// Client answers nearby searches in-process.
// Safe for concurrent use.
type Client struct {
	store      db.Store // nil for file catalogs
	catalog    *domcat.Catalog
	searchSvc  *searchuc.Service
	catalogSvc *cataloguc.Service
	healthSvc  healthUseCase
	obs        *observer
}

// New loads the catalog and builds a Client.
// Exactly one of WithCatalogFile, WithValkey or WithRedis is required.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{keyPrefix: catalogrepo.DefaultKeyPrefix}
	for _, o := range opts {
		o.apply(cfg)
	}

	switch {
	case cfg.catalogFile == "" && len(cfg.addrs) == 0:
		return nil, errors.New("dinefinder: catalog source is required")
	case cfg.catalogFile != "" && len(cfg.addrs) > 0:
		return nil, errors.New("dinefinder: catalog file and database are mutually exclusive")
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	rc := resolver.DefaultConfig()
	if cfg.defaultPlace != nil {
		rc.Default = toResolverPlace(*cfg.defaultPlace)
	}
	if cfg.places != nil {
		rc.Places = make([]resolver.Place, len(cfg.places))
		for i, p := range cfg.places {
			rc.Places[i] = toResolverPlace(p)
		}
	}
	res, err := resolver.New(rc)
	if err != nil {
		return nil, fmt.Errorf("dinefinder: locations: %w", err)
	}

	c := &Client{obs: obs}
	start := time.Now()
	entries, err := c.load(ctx, cfg)
	obs.observe("load", start, err)
	if err != nil {
		c.Close()
		return nil, err
	}

	cat, err := domcat.NewCatalog(entries)
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("dinefinder: %w", err)
	}

	c.catalog = cat
	c.searchSvc = searchuc.New(res, cat)
	c.catalogSvc = cataloguc.New(cat)
	var pinger healthuc.DBPinger
	if c.store != nil {
		pinger = c.store
	}
	c.healthSvc = healthuc.New(cat, pinger)
	return c, nil
}

func (c *Client) load(ctx context.Context, cfg *clientConfig) ([]domcat.Entry, error) {
	if cfg.catalogFile != "" {
		entries, err := catalogrepo.NewFileSource(cfg.catalogFile).Load(ctx)
		if err != nil {
			return nil, fmt.Errorf("dinefinder: %w", err)
		}
		return entries, nil
	}

	store, err := dbRedis.NewStore(dbRedis.Config{Addrs: cfg.addrs, Password: cfg.password})
	if err != nil {
		return nil, fmt.Errorf("dinefinder: connect %s: %w", cfg.driver, err)
	}
	c.store = store
	if err := store.WaitForReady(ctx, readyTimeout); err != nil {
		return nil, fmt.Errorf("dinefinder: %s not ready: %w", cfg.driver, err)
	}
	entries, err := catalogrepo.NewStoreSource(store, cfg.keyPrefix).Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("dinefinder: %w", err)
	}
	return entries, nil
}

// Close releases the database connection, if any.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Ping checks the database connection. File catalogs always succeed.
func (c *Client) Ping(ctx context.Context) error {
	if c.store == nil {
		return nil
	}
	return c.store.Ping(ctx)
}

// Len returns the number of restaurants in the catalog.
func (c *Client) Len() int { return c.catalog.Len() }

// Cuisines returns the distinct cuisines in the catalog, sorted.
func (c *Client) Cuisines() []string { return c.catalog.Cuisines() }

// Nearby returns up to five restaurants closest to the query location.
func (c *Client) Nearby(ctx context.Context, q NearbyQuery) (res NearbyResult, err error) {
	start := time.Now()
	defer func() { c.obs.observe("nearby", start, err) }()

	spec, err := q.spec()
	if err != nil {
		return NearbyResult{}, err
	}
	found, err := c.searchSvc.Search(ctx, location.Query{
		Latitude:  q.Latitude,
		Longitude: q.Longitude,
		Text:      q.Address,
	}, spec)
	if err != nil {
		return NearbyResult{}, err
	}
	return fromSearch(&found), nil
}

// Get returns the restaurant with the given ID or ErrNotFound.
func (c *Client) Get(ctx context.Context, id string) (r Restaurant, err error) {
	start := time.Now()
	defer func() { c.obs.observe("get", start, err) }()

	e, err := c.catalogSvc.Get(ctx, id)
	if err != nil {
		return Restaurant{}, err
	}
	return fromEntry(&e), nil
}

func (q NearbyQuery) spec() (*filter.Spec, error) {
	s, err := filter.New(optional(q.Cuisine), q.MinRating, optional(q.PriceRange), optional(q.OpenAt))
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func toResolverPlace(p Place) resolver.Place {
	label := p.Label
	if label == "" {
		label = p.Name
	}
	return resolver.Place{
		Name:       p.Name,
		Label:      label,
		Coordinate: geo.Coordinate{Latitude: p.Latitude, Longitude: p.Longitude},
	}
}

func fromEntry(e *domcat.Entry) Restaurant {
	hours := e.Hours()
	loc := e.Location()
	return Restaurant{
		ID:          e.ID(),
		Name:        e.Name(),
		Cuisine:     e.Cuisine(),
		Description: e.Description(),
		Rating:      e.Rating(),
		PriceRange:  string(e.Price()),
		Open:        hours.Open.String(),
		Close:       hours.Close.String(),
		Latitude:    loc.Latitude,
		Longitude:   loc.Longitude,
		Phone:       e.Phone(),
		Address:     e.Address(),
	}
}

func fromSearch(s *result.Search) NearbyResult {
	items := s.Items()
	out := make([]Match, len(items))
	for i := range items {
		e := items[i].Entry()
		out[i] = Match{Restaurant: fromEntry(&e), DistanceKm: items[i].DistanceKm()}
	}
	resolved := s.Location()
	return NearbyResult{
		Restaurants: out,
		Location: SearchLocation{
			Latitude:  resolved.Coordinate.Latitude,
			Longitude: resolved.Coordinate.Longitude,
			Label:     resolved.Label,
			Source:    LocationSource(resolved.Source),
		},
	}
}
