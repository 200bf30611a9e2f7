package catalog

import (
	"context"
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/kailas-cloud/dinefinder/internal/db"
	"github.com/kailas-cloud/dinefinder/internal/domain"
	domcat "github.com/kailas-cloud/dinefinder/internal/domain/catalog"
)

// DefaultKeyPrefix namespaces restaurant hashes.
const DefaultKeyPrefix = "dinefinder:restaurant:"

const (
	loadBatchSize   = 500
	loadConcurrency = 4
)

// store is the consumer interface for catalog hashes (ISP).
type store interface {
	HSetMulti(ctx context.Context, items []db.HashSetItem) error
	HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error)
	Scan(ctx context.Context, pattern string) ([]string, error)
}

// StoreSource reads and writes restaurants as hashes in Valkey or Redis.
type StoreSource struct {
	store  store
	prefix string
}

// NewStoreSource creates a store-backed source. Empty prefix uses DefaultKeyPrefix.
func NewStoreSource(s store, prefix string) *StoreSource {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return &StoreSource{store: s, prefix: prefix}
}

func (s *StoreSource) key(id string) string {
	return s.prefix + id
}

// Load scans all restaurant hashes. Entries come back sorted by key so
// tie order in rankings does not depend on SCAN order. SCAN may report a key
// more than once; duplicates are dropped.
func (s *StoreSource) Load(ctx context.Context) ([]domcat.Entry, error) {
	keys, err := s.store.Scan(ctx, s.key("*"))
	if err != nil {
		return nil, fmt.Errorf("scan restaurants: %w", err)
	}
	if len(keys) == 0 {
		return []domcat.Entry{}, nil
	}
	slices.Sort(keys)
	keys = slices.Compact(keys)

	results, err := s.fetch(ctx, keys)
	if err != nil {
		return nil, err
	}

	entries := make([]domcat.Entry, 0, len(results))
	for i, m := range results {
		// Deleted between SCAN and HGETALL.
		if len(m) == 0 {
			continue
		}
		e, err := entryFromHash(m)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", domain.ErrInvalidCatalog, keys[i], err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// fetch runs HGETALL in pipelined batches, a few batches at a time.
// Result order matches keys.
func (s *StoreSource) fetch(ctx context.Context, keys []string) ([]map[string]string, error) {
	results := make([]map[string]string, len(keys))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(loadConcurrency)
	for start := 0; start < len(keys); start += loadBatchSize {
		end := min(start+loadBatchSize, len(keys))
		g.Go(func() error {
			batch, err := s.store.HGetAllMulti(gctx, keys[start:end])
			if err != nil {
				return fmt.Errorf("hgetall multi restaurants: %w", err)
			}
			copy(results[start:end], batch)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Save writes entries in one pipelined round-trip. Existing hashes with the
// same ID are overwritten field by field.
func (s *StoreSource) Save(ctx context.Context, entries []domcat.Entry) error {
	items := make([]db.HashSetItem, len(entries))
	for i := range entries {
		items[i] = db.HashSetItem{Key: s.key(entries[i].ID()), Fields: entryToHash(&entries[i])}
	}
	if err := s.store.HSetMulti(ctx, items); err != nil {
		return fmt.Errorf("hset restaurants: %w", err)
	}
	return nil
}
