package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/kailas-cloud/dinefinder/internal/domain"
	domcat "github.com/kailas-cloud/dinefinder/internal/domain/catalog"
	"github.com/kailas-cloud/dinefinder/internal/domain/geo"
)

func newService(t *testing.T) *Service {
	t.Helper()
	c, err := domcat.NewCatalog([]domcat.Entry{
		domcat.Reconstruct("a", "Alpha", "Thai", 4, domcat.Tier2, geo.Coordinate{}),
		domcat.Reconstruct("b", "Beta", "Greek", 3, domcat.Tier1, geo.Coordinate{}),
	})
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	return New(c)
}

func TestGet_Found(t *testing.T) {
	svc := newService(t)
	e, err := svc.Get(context.Background(), "b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Name() != "Beta" {
		t.Errorf("Name() = %q", e.Name())
	}
}

func TestGet_NotFound(t *testing.T) {
	svc := newService(t)
	_, err := svc.Get(context.Background(), "zzz")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStats(t *testing.T) {
	st := newService(t).Stats(context.Background())
	if st.Entries != 2 {
		t.Errorf("Entries = %d", st.Entries)
	}
	if len(st.Cuisines) != 2 || st.Cuisines[0] != "greek" {
		t.Errorf("Cuisines = %v", st.Cuisines)
	}
}
