package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/nmoriya/gostay/pkg/gostay"
)

// Handler provides HTTP endpoints for stay-day reports
type Handler struct {
	config Config
}

// Evaluate computes a stay report for the posted ranges and target year.
// Malformed bodies, bad dates, out-of-bounds years and over-cap inputs are
// rejected with 400 before the engine runs; ranges whose exit precedes
// their entry are not errors here and come back flagged inside the report.
func (h *Handler) Evaluate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req EvaluateRequest
	body := http.MaxBytesReader(w, r.Body, h.config.MaxBodyBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		h.handleError(w, r, fmt.Errorf("invalid request body: %w", err), http.StatusBadRequest)
		return
	}
	if err := req.Validate(); err != nil {
		h.handleError(w, r, err, http.StatusBadRequest)
		return
	}

	stays, err := req.Stays()
	if err != nil {
		h.handleError(w, r, err, http.StatusBadRequest)
		return
	}

	year := req.Year
	if year == 0 {
		year = h.config.Engine.CurrentYear()
	}
	if year < h.config.MinYear || year > h.config.MaxYear {
		h.handleError(w, r,
			fmt.Errorf("year %d out of bounds [%d, %d]", year, h.config.MinYear, h.config.MaxYear),
			http.StatusBadRequest)
		return
	}

	report, err := h.config.Engine.Evaluate(ctx, stays, year, req.Options()...)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, gostay.ErrTooManyRanges) || errors.Is(err, gostay.ErrStayTooLong) {
			status = http.StatusBadRequest
		}
		h.handleError(w, r, err, status)
		return
	}

	h.config.Logger.Debug("served stay report",
		gostay.Field{Key: "year", Value: year},
		gostay.Field{Key: "ranges", Value: len(stays)})

	writeJSON(w, http.StatusOK, NewEvaluateResponse(report))
}

// Rules reports the engine's rule set and the handler's year bounds
func (h *Handler) Rules(w http.ResponseWriter, _ *http.Request) {
	rules := h.config.Engine.Rules()
	writeJSON(w, http.StatusOK, RulesResponse{
		VisitLimit:        rules.VisitLimit,
		RollingLimit:      rules.RollingLimit,
		WindowDays:        rules.WindowDays,
		WarningThresholds: rules.WarningThresholds,
		MinYear:           h.config.MinYear,
		MaxYear:           h.config.MaxYear,
	})
}

// handleError handles errors with appropriate HTTP status codes
func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error, statusCode int) {
	if h.config.OnError != nil {
		h.config.OnError(w, r, err)
		return
	}

	h.config.Logger.Warn("request rejected",
		gostay.Field{Key: "status", Value: statusCode},
		gostay.Field{Key: "error", Value: err.Error()})
	writeJSON(w, statusCode, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Response already started; nothing useful left to do.
		_ = err
	}
}
