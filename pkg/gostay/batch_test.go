package gostay_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/nmoriya/gostay/pkg/gostay"
)

func TestEvaluateBatch(t *testing.T) {
	engine := newTestEngine(t)

	itineraries := map[string][]gostay.Stay{
		"alice": {stay(date(2024, time.January, 1), date(2024, time.January, 10))},
		"bob":   {stay(date(2024, time.March, 1), date(2024, time.March, 31))},
		"carol": nil,
	}

	reports, err := engine.EvaluateBatch(context.Background(), itineraries, 2024)
	if err != nil {
		t.Fatalf("EvaluateBatch failed: %v", err)
	}

	if len(reports) != 3 {
		t.Fatalf("Expected 3 reports, got %d", len(reports))
	}
	if reports["alice"].DaysInYear != 10 {
		t.Errorf("alice: expected 10 days, got %d", reports["alice"].DaysInYear)
	}
	if reports["bob"].DaysInYear != 31 {
		t.Errorf("bob: expected 31 days, got %d", reports["bob"].DaysInYear)
	}
	if reports["carol"].DaysInYear != 0 {
		t.Errorf("carol: expected 0 days, got %d", reports["carol"].DaysInYear)
	}
}

func TestEvaluateBatch_Empty(t *testing.T) {
	engine := newTestEngine(t)

	reports, err := engine.EvaluateBatch(context.Background(), nil, 2024)
	if err != nil {
		t.Fatalf("EvaluateBatch failed: %v", err)
	}
	if len(reports) != 0 {
		t.Errorf("Expected no reports, got %d", len(reports))
	}
}

func TestEvaluateBatch_ErrorNamesItinerary(t *testing.T) {
	engine, err := gostay.New(gostay.Config{MaxRanges: 1})
	if err != nil {
		t.Fatalf("Failed to create engine: %v", err)
	}

	itineraries := map[string][]gostay.Stay{
		"ok": {stay(date(2024, time.January, 1), date(2024, time.January, 2))},
		"overflow": {
			stay(date(2024, time.January, 1), date(2024, time.January, 2)),
			stay(date(2024, time.February, 1), date(2024, time.February, 2)),
		},
	}

	_, err = engine.EvaluateBatch(context.Background(), itineraries, 2024)
	if !errors.Is(err, gostay.ErrTooManyRanges) {
		t.Fatalf("Expected ErrTooManyRanges, got %v", err)
	}
	if !strings.Contains(err.Error(), "overflow") {
		t.Errorf("Expected the failing itinerary key in the error, got %q", err)
	}
}

func TestEvaluateBatch_SharedOptions(t *testing.T) {
	engine := newTestEngine(t)

	itineraries := map[string][]gostay.Stay{
		"short": {stay(date(2024, time.January, 1), date(2024, time.January, 5))},
		"long":  {stay(date(2024, time.January, 1), date(2024, time.February, 19))},
	}

	reports, err := engine.EvaluateBatch(context.Background(), itineraries, 2024,
		gostay.WithAnnualLimit(30))
	if err != nil {
		t.Fatalf("EvaluateBatch failed: %v", err)
	}

	for key, report := range reports {
		if report.AnnualLimit == nil {
			t.Fatalf("%s: expected the annual limit check on every report", key)
		}
	}
	if reports["short"].AnnualLimit.Exceeded {
		t.Error("short: 5 days must not exceed an annual limit of 30")
	}
	if !reports["long"].AnnualLimit.Exceeded {
		t.Error("long: 50 days must exceed an annual limit of 30")
	}
}
