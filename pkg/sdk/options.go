package dinefinder

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	catalogFile string

	driver    string // "valkey" or "redis"
	addrs     []string
	password  string
	keyPrefix string

	defaultPlace *Place
	places       []Place

	logger     *slog.Logger
	metricsReg prometheus.Registerer
}

// WithCatalogFile loads restaurants from a YAML or JSON file.
func WithCatalogFile(path string) Option {
	return optionFunc(func(c *clientConfig) {
		c.catalogFile = path
	})
}

// WithValkey loads restaurants from a Valkey instance.
func WithValkey(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = "valkey"
		c.addrs = []string{addr}
		c.password = password
	})
}

// WithRedis loads restaurants from a Redis instance.
func WithRedis(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = "redis"
		c.addrs = []string{addr}
		c.password = password
	})
}

// WithKeyPrefix overrides the hash key prefix used with Valkey/Redis.
// Default: "dinefinder:restaurant:".
func WithKeyPrefix(prefix string) Option {
	return optionFunc(func(c *clientConfig) {
		c.keyPrefix = prefix
	})
}

// WithDefaultLocation sets the fallback search point.
// Defaults to New York, NY.
func WithDefaultLocation(p Place) Option {
	return optionFunc(func(c *clientConfig) {
		c.defaultPlace = &p
	})
}

// WithPlaces replaces the address lookup table. Earlier places win.
func WithPlaces(places ...Place) Option {
	return optionFunc(func(c *clientConfig) {
		c.places = places
	})
}

// WithLogger enables structured logging for SDK operations.
// Pass nil to disable (default). Uses standard library slog.
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithPrometheus registers SDK metrics (operation counts and durations)
// on the given registerer. Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) {
		c.metricsReg = reg
	})
}
