// Package gin provides a Gin endpoint for stay-day reports
package gin

import (
	"errors"
	"fmt"
	"net/http"

	gongin "github.com/gin-gonic/gin"

	"github.com/nmoriya/gostay/pkg/api"
	"github.com/nmoriya/gostay/pkg/gostay"
)

// Config holds handler configuration
type Config struct {
	// Engine is the evaluation engine instance (required)
	Engine *gostay.Engine

	// MinYear and MaxYear bound the accepted target year
	// (defaults: api.DefaultMinYear, api.DefaultMaxYear)
	MinYear int
	MaxYear int

	// OnError is called when a request cannot be served
	// If nil, returns a JSON error body with the mapped status code
	OnError func(c *gongin.Context, err error)
}

// Handler creates a Gin handler that evaluates posted itineraries.
// The request body binds to api.EvaluateRequest; the response is an
// api.EvaluateResponse.
func Handler(cfg Config) gongin.HandlerFunc {
	// Validate required configuration at startup (fail fast)
	if cfg.Engine == nil {
		panic("gostay/gin: Config.Engine is required")
	}

	// Set defaults
	if cfg.MinYear == 0 {
		cfg.MinYear = api.DefaultMinYear
	}
	if cfg.MaxYear == 0 {
		cfg.MaxYear = api.DefaultMaxYear
	}

	return func(c *gongin.Context) {
		var req api.EvaluateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			fail(cfg, c, fmt.Errorf("invalid request body"), http.StatusBadRequest)
			return
		}

		stays, year, err := prepare(cfg, &req)
		if err != nil {
			fail(cfg, c, err, http.StatusBadRequest)
			return
		}

		report, err := cfg.Engine.Evaluate(c.Request.Context(), stays, year, req.Options()...)
		if err != nil {
			fail(cfg, c, err, statusFor(err))
			return
		}

		c.JSON(http.StatusOK, api.NewEvaluateResponse(report))
	}
}

// prepare validates the bound request against the year bounds and converts
// it into engine inputs.
func prepare(cfg Config, req *api.EvaluateRequest) ([]gostay.Stay, int, error) {
	if err := req.Validate(); err != nil {
		return nil, 0, err
	}
	stays, err := req.Stays()
	if err != nil {
		return nil, 0, err
	}
	year := req.Year
	if year == 0 {
		year = cfg.Engine.CurrentYear()
	}
	if year < cfg.MinYear || year > cfg.MaxYear {
		return nil, 0, fmt.Errorf("year %d out of bounds [%d, %d]", year, cfg.MinYear, cfg.MaxYear)
	}
	return stays, year, nil
}

func statusFor(err error) int {
	if errors.Is(err, gostay.ErrTooManyRanges) || errors.Is(err, gostay.ErrStayTooLong) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func fail(cfg Config, c *gongin.Context, err error, statusCode int) {
	if cfg.OnError != nil {
		cfg.OnError(c, err)
		return
	}
	c.JSON(statusCode, gongin.H{"error": err.Error()})
}
