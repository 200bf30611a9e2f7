// Package catalog loads the restaurant catalog from a file or from Valkey/Redis.
package catalog

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kailas-cloud/dinefinder/internal/domain"
	domcat "github.com/kailas-cloud/dinefinder/internal/domain/catalog"
)

// FileSource reads a catalog document from disk. JSON documents parse too.
type FileSource struct {
	path string
}

// NewFileSource creates a file-backed source.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Load reads and validates every entry in the file.
func (s *FileSource) Load(_ context.Context) ([]domcat.Entry, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", s.path, err)
	}
	return Parse(data)
}

// Parse decodes a catalog document.
func Parse(data []byte) ([]domcat.Entry, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidCatalog, err)
	}

	entries := make([]domcat.Entry, 0, len(doc.Restaurants))
	for i := range doc.Restaurants {
		e, err := domcat.New(doc.Restaurants[i].attributes())
		if err != nil {
			return nil, fmt.Errorf("%w: restaurant #%d: %w", domain.ErrInvalidCatalog, i+1, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
