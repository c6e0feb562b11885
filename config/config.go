package config

import (
	"strings"
	"time"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

// envPrefix namespaces every environment variable this package reads.
const envPrefix = "ACTIVEMEDIAN_"

// Default values, copied from the original implementation's
// venmoGraphParams.h.
const (
	DefaultWindowSeconds           = 60
	DefaultInitialTableSize        = 4
	DefaultInitialHistogramCapacty = 10
)

// ErrInvalidWindow indicates a non-positive window was configured.
var ErrInvalidWindow = errors.New("config: window must be positive")

// ErrInvalidTableSize indicates a non-positive initial table size was
// configured.
var ErrInvalidTableSize = errors.New("config: initial table size must be positive")

// ErrInvalidHistogramCapacity indicates a non-positive initial histogram
// capacity was configured.
var ErrInvalidHistogramCapacity = errors.New("config: initial histogram capacity must be positive")

// Config holds every tunable parameter of a GraphEngine.
type Config struct {
	// Window is the rolling window's width: an edge observed more than
	// Window before the graph's current maximum timestamp is evicted.
	Window time.Duration

	// InitialTableSize is the vertex table's starting bucket count.
	InitialTableSize int

	// InitialHistogramCapacity is the degree histogram's starting
	// capacity, in degrees.
	InitialHistogramCapacity int
}

// Option mutates a Config during Default construction.
type Option func(*Config)

// WithWindow overrides the rolling window width.
func WithWindow(d time.Duration) Option {
	return func(c *Config) {
		if d > 0 {
			c.Window = d
		}
	}
}

// WithInitialTableSize overrides the vertex table's starting bucket count.
func WithInitialTableSize(n int) Option {
	return func(c *Config) {
		if n > 0 {
			c.InitialTableSize = n
		}
	}
}

// WithInitialHistogramCapacity overrides the degree histogram's starting
// capacity.
func WithInitialHistogramCapacity(n int) Option {
	return func(c *Config) {
		if n > 0 {
			c.InitialHistogramCapacity = n
		}
	}
}

// Default returns a Config matching venmoGraphParams.h, with opts applied
// on top in order.
func Default(opts ...Option) Config {
	c := Config{
		Window:                   DefaultWindowSeconds * time.Second,
		InitialTableSize:         DefaultInitialTableSize,
		InitialHistogramCapacity: DefaultInitialHistogramCapacty,
	}

	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// Load resolves a Config from Default() overridden by any
// ACTIVEMEDIAN_WINDOW_SECONDS, ACTIVEMEDIAN_INITIAL_TABLE_SIZE, and
// ACTIVEMEDIAN_INITIAL_HISTOGRAM_CAPACITY environment variables, then
// applies opts on top of the environment, and finally validates the
// result.
func Load(opts ...Option) (Config, error) {
	k := koanf.New(".")

	defaults := map[string]interface{}{
		"window_seconds":             DefaultWindowSeconds,
		"initial_table_size":         DefaultInitialTableSize,
		"initial_histogram_capacity": DefaultInitialHistogramCapacty,
	}
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return Config{}, errors.Wrap(err, "config: loading defaults")
	}

	envLoader := env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	})
	if err := k.Load(envLoader, nil); err != nil {
		return Config{}, errors.Wrap(err, "config: loading environment overrides")
	}

	c := Config{
		Window:                   time.Duration(k.Int64("window_seconds")) * time.Second,
		InitialTableSize:         k.Int("initial_table_size"),
		InitialHistogramCapacity: k.Int("initial_histogram_capacity"),
	}

	for _, opt := range opts {
		opt(&c)
	}

	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Validate reports whether every field holds a usable value.
func (c Config) Validate() error {
	if c.Window <= 0 {
		return ErrInvalidWindow
	}
	if c.InitialTableSize <= 0 {
		return ErrInvalidTableSize
	}
	if c.InitialHistogramCapacity <= 0 {
		return ErrInvalidHistogramCapacity
	}
	return nil
}
