package catalog

import (
	"context"
	"testing"

	"github.com/kailas-cloud/dinefinder/internal/db"
	domcat "github.com/kailas-cloud/dinefinder/internal/domain/catalog"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	hsetMultiFn    func(ctx context.Context, items []db.HashSetItem) error
	hgetAllMultiFn func(ctx context.Context, keys []string) ([]map[string]string, error)
	scanFn         func(ctx context.Context, pattern string) ([]string, error)
}

func (m *mockStore) HSetMulti(ctx context.Context, items []db.HashSetItem) error {
	if m.hsetMultiFn != nil {
		return m.hsetMultiFn(ctx, items)
	}
	return nil
}

func (m *mockStore) HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error) {
	if m.hgetAllMultiFn != nil {
		return m.hgetAllMultiFn(ctx, keys)
	}
	return nil, nil
}

func (m *mockStore) Scan(ctx context.Context, pattern string) ([]string, error) {
	if m.scanFn != nil {
		return m.scanFn(ctx, pattern)
	}
	return nil, nil
}

func newTestSource(t *testing.T) (*StoreSource, *mockStore) {
	t.Helper()
	ms := &mockStore{}
	return NewStoreSource(ms, ""), ms
}

func testEntry(t *testing.T, id string) domcat.Entry {
	t.Helper()
	e, err := domcat.New(domcat.Attributes{
		ID:          id,
		Name:        "Trattoria " + id,
		Cuisine:     "Italian",
		Description: "Handmade pasta",
		Rating:      4.5,
		Price:       "$$",
		Open:        "11:30",
		Close:       "23:00",
		Latitude:    40.7359,
		Longitude:   -73.9911,
		Phone:       "(212) 555-0101",
		Address:     "1 Union Sq W, New York, NY",
	})
	if err != nil {
		t.Fatalf("domcat.New: %v", err)
	}
	return e
}
