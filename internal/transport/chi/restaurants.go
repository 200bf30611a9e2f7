package chi

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"

	gochi "github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"

	"github.com/kailas-cloud/dinefinder/internal/domain"
	domcat "github.com/kailas-cloud/dinefinder/internal/domain/catalog"
	"github.com/kailas-cloud/dinefinder/internal/domain/location"
	"github.com/kailas-cloud/dinefinder/internal/domain/search/filter"
	"github.com/kailas-cloud/dinefinder/internal/domain/search/result"
)

const maxBodyBytes = 1 << 20

// SearchRestaurants handles GET /restaurants.
// Location comes from lat/lng or address; filters are optional query parameters.
func (s *Server) SearchRestaurants(w http.ResponseWriter, r *http.Request) {
	q, spec, err := searchFromQuery(r.URL.Query())
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	res, err := s.search.Search(r.Context(), q, spec)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, searchToResponse(&res))
}

// SearchRestaurantsByCoordinates handles POST /restaurants.
// Both coordinates are required.
func (s *Server) SearchRestaurantsByCoordinates(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil || dec.More() {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Latitude == nil || req.Longitude == nil {
		s.handleDomainError(w, r, fmt.Errorf("latitude and longitude: %w", domain.ErrMissingRequiredField))
		return
	}

	spec, err := req.Filters.spec()
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	res, err := s.search.Search(r.Context(), location.FromCoordinates(*req.Latitude, *req.Longitude), spec)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, searchToResponse(&res))
}

// GetRestaurant handles GET /restaurants/{id}.
func (s *Server) GetRestaurant(w http.ResponseWriter, r *http.Request) {
	e, err := s.catalog.Get(r.Context(), gochi.URLParam(r, "id"))
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entryToResponse(&e, nil))
}

type searchRequest struct {
	Latitude  *float64        `json:"latitude"`
	Longitude *float64        `json:"longitude"`
	Filters   *filtersRequest `json:"filters"`
}

type filtersRequest struct {
	Cuisine    *string  `json:"cuisine"`
	MinRating  *float64 `json:"minRating"`
	PriceRange *string  `json:"priceRange"`
	OpenAt     *string  `json:"openAt"`
}

func (f *filtersRequest) spec() (*filter.Spec, error) {
	if f == nil {
		return nil, nil
	}
	spec, err := filter.New(f.Cuisine, f.MinRating, f.PriceRange, f.OpenAt)
	if err != nil {
		return nil, fmt.Errorf("build filter: %w", err)
	}
	return &spec, nil
}

// searchFromQuery binds the GET query string. Absent parameters stay nil.
func searchFromQuery(values url.Values) (location.Query, *filter.Spec, error) {
	var q location.Query
	if err := runtime.BindQueryParameter("form", true, false, "lat", values, &q.Latitude); err != nil {
		return location.Query{}, nil, fmt.Errorf("lat: %w", domain.ErrInvalidCoordinate)
	}
	if err := runtime.BindQueryParameter("form", true, false, "lng", values, &q.Longitude); err != nil {
		return location.Query{}, nil, fmt.Errorf("lng: %w", domain.ErrInvalidCoordinate)
	}
	q.Text = values.Get("address")

	var f filtersRequest
	if err := runtime.BindQueryParameter("form", true, false, "minRating", values, &f.MinRating); err != nil {
		return location.Query{}, nil, fmt.Errorf("minRating: %w", domain.ErrInvalidFilter)
	}
	f.Cuisine = optionalParam(values, "cuisine")
	f.PriceRange = optionalParam(values, "priceRange")
	f.OpenAt = optionalParam(values, "openAt")

	if f.Cuisine == nil && f.MinRating == nil && f.PriceRange == nil && f.OpenAt == nil {
		return q, nil, nil
	}
	spec, err := f.spec()
	if err != nil {
		return location.Query{}, nil, err
	}
	return q, spec, nil
}

func optionalParam(values url.Values, name string) *string {
	if !values.Has(name) {
		return nil
	}
	v := values.Get(name)
	return &v
}

type openingHours struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

type restaurantResponse struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Cuisine      string       `json:"cuisine"`
	Description  string       `json:"description,omitempty"`
	Rating       float64      `json:"rating"`
	PriceRange   string       `json:"priceRange"`
	OpeningHours openingHours `json:"openingHours"`
	Latitude     float64      `json:"latitude"`
	Longitude    float64      `json:"longitude"`
	Phone        string       `json:"phone,omitempty"`
	Address      string       `json:"address,omitempty"`
	Distance     *float64     `json:"distance,omitempty"` // km
}

type searchLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address"`
	Source    string  `json:"source"`
}

type searchResponse struct {
	Restaurants    []restaurantResponse `json:"restaurants"`
	SearchLocation searchLocation       `json:"searchLocation"`
}

func entryToResponse(e *domcat.Entry, distanceKm *float64) restaurantResponse {
	h := e.Hours()
	loc := e.Location()
	return restaurantResponse{
		ID:           e.ID(),
		Name:         e.Name(),
		Cuisine:      e.Cuisine(),
		Description:  e.Description(),
		Rating:       e.Rating(),
		PriceRange:   string(e.Price()),
		OpeningHours: openingHours{Open: h.Open.String(), Close: h.Close.String()},
		Latitude:     loc.Latitude,
		Longitude:    loc.Longitude,
		Phone:        e.Phone(),
		Address:      e.Address(),
		Distance:     distanceKm,
	}
}

func searchToResponse(s *result.Search) searchResponse {
	items := s.Items()
	out := make([]restaurantResponse, len(items))
	for i := range items {
		e := items[i].Entry()
		d := roundKm(items[i].DistanceKm())
		out[i] = entryToResponse(&e, &d)
	}

	loc := s.Location()
	return searchResponse{
		Restaurants: out,
		SearchLocation: searchLocation{
			Latitude:  loc.Coordinate.Latitude,
			Longitude: loc.Coordinate.Longitude,
			Address:   loc.Label,
			Source:    string(loc.Source),
		},
	}
}

// roundKm rounds to two decimals for display only.
func roundKm(km float64) float64 {
	return math.Round(km*100) / 100
}
