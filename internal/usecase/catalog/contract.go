package catalog

import domcat "github.com/kailas-cloud/dinefinder/internal/domain/catalog"

// Reader is the read-only catalog view used by the service.
type Reader interface {
	ByID(id string) (domcat.Entry, bool)
	Len() int
	Cuisines() []string
}
