package api

import (
	"fmt"
	"net/http"

	"github.com/nmoriya/gostay/pkg/gostay"
)

// Defaults applied by NewHandler. The year bounds mirror the range a
// travel tool realistically reports on; the engine itself accepts any year.
const (
	DefaultMinYear      = 2000
	DefaultMaxYear      = 2100
	DefaultMaxBodyBytes = 1 << 20
)

// Config holds configuration for the stay-report API handler
type Config struct {
	// Engine is the evaluation engine instance (required)
	Engine *gostay.Engine

	// MinYear and MaxYear bound the accepted target year
	// (defaults: DefaultMinYear, DefaultMaxYear)
	MinYear int
	MaxYear int

	// MaxBodyBytes caps the request body size in bytes
	// (default: DefaultMaxBodyBytes)
	MaxBodyBytes int64

	// Logger is used for request-level logging (default: NoopLogger)
	Logger gostay.Logger

	// OnError handles request errors
	// If nil, uses default JSON error responses
	OnError func(http.ResponseWriter, *http.Request, error)
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Engine == nil {
		return fmt.Errorf("engine is required")
	}
	if c.MinYear < 0 || c.MaxYear < 0 {
		return fmt.Errorf("year bounds cannot be negative")
	}
	minYear, maxYear := c.MinYear, c.MaxYear
	if minYear == 0 {
		minYear = DefaultMinYear
	}
	if maxYear == 0 {
		maxYear = DefaultMaxYear
	}
	if minYear > maxYear {
		return fmt.Errorf("minYear %d exceeds maxYear %d", minYear, maxYear)
	}
	if c.MaxBodyBytes < 0 {
		return fmt.Errorf("maxBodyBytes cannot be negative")
	}
	return nil
}

// NewHandler creates a new stay-report API handler with the given configuration
func NewHandler(config Config) (*Handler, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	// Set defaults
	if config.MinYear == 0 {
		config.MinYear = DefaultMinYear
	}
	if config.MaxYear == 0 {
		config.MaxYear = DefaultMaxYear
	}
	if config.MaxBodyBytes == 0 {
		config.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if config.Logger == nil {
		config.Logger = &gostay.NoopLogger{}
	}

	return &Handler{
		config: config,
	}, nil
}
