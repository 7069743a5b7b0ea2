package gostay_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/nmoriya/gostay/pkg/gostay"
)

type mockWarningHandler struct {
	mu       sync.Mutex
	warnings []*gostay.Warning
}

func (h *mockWarningHandler) OnWarning(_ context.Context, w *gostay.Warning) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.warnings = append(h.warnings, w)
}

func (h *mockWarningHandler) byRule(rule string) []*gostay.Warning {
	h.mu.Lock()
	defer h.mu.Unlock()
	var out []*gostay.Warning
	for _, w := range h.warnings {
		if w.Rule == rule {
			out = append(out, w)
		}
	}
	return out
}

func newWarningEngine(t *testing.T, handler gostay.WarningHandler) *gostay.Engine {
	t.Helper()

	engine, err := gostay.New(gostay.Config{
		Rules: gostay.RuleSet{
			WarningThresholds: []float64{0.5, 0.8},
		},
		WarningHandler: handler,
	})
	if err != nil {
		t.Fatalf("Failed to create engine: %v", err)
	}
	return engine
}

func TestWarnings_ThresholdCrossed(t *testing.T) {
	handler := &mockWarningHandler{}
	engine := newWarningEngine(t, handler)

	// 50 days is 55% of the 90-day visit limit but only 27% of the
	// 180-day rolling limit.
	_, err := engine.Evaluate(context.Background(), []gostay.Stay{
		stay(date(2024, time.January, 1), date(2024, time.February, 19)),
	}, 2024)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}

	visit := handler.byRule(gostay.RuleVisit)
	if len(visit) != 1 {
		t.Fatalf("Expected 1 visit warning, got %d", len(visit))
	}
	if visit[0].Threshold != 0.5 {
		t.Errorf("Expected 0.5 threshold, got %v", visit[0].Threshold)
	}
	if visit[0].Days != 50 || visit[0].Limit != gostay.DefaultVisitLimit {
		t.Errorf("Unexpected warning payload: %+v", visit[0])
	}
	if rolling := handler.byRule(gostay.RuleRolling); len(rolling) != 0 {
		t.Errorf("Expected no rolling warnings, got %d", len(rolling))
	}
}

func TestWarnings_HighestThresholdWins(t *testing.T) {
	handler := &mockWarningHandler{}
	engine := newWarningEngine(t, handler)

	// 80 days crosses both 0.5 and 0.8 of the visit limit; only the
	// highest threshold fires, once.
	_, err := engine.Evaluate(context.Background(), []gostay.Stay{
		stay(date(2024, time.January, 1), date(2024, time.March, 20)),
	}, 2024)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}

	visit := handler.byRule(gostay.RuleVisit)
	if len(visit) != 1 {
		t.Fatalf("Expected exactly 1 visit warning, got %d", len(visit))
	}
	if visit[0].Threshold != 0.8 {
		t.Errorf("Expected the 0.8 threshold, got %v", visit[0].Threshold)
	}
}

func TestWarnings_ExceededRuleDoesNotWarn(t *testing.T) {
	handler := &mockWarningHandler{}
	engine := newWarningEngine(t, handler)

	// A 100-day stay exceeds the visit limit outright; the breach replaces
	// the warning. The rolling rule sits at 100/180 and warns at 0.5.
	report, err := engine.Evaluate(context.Background(), []gostay.Stay{
		stay(date(2024, time.January, 1), date(2024, time.April, 9)),
	}, 2024)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}

	if !report.VisitRule.Exceeded {
		t.Fatal("Expected the visit rule to be exceeded")
	}
	if visit := handler.byRule(gostay.RuleVisit); len(visit) != 0 {
		t.Errorf("Expected no visit warning for an exceeded rule, got %d", len(visit))
	}

	rolling := handler.byRule(gostay.RuleRolling)
	if len(rolling) != 1 || rolling[0].Threshold != 0.5 {
		t.Errorf("Expected one rolling warning at 0.5, got %+v", rolling)
	}
}

func TestWarnings_OptionalLimits(t *testing.T) {
	handler := &mockWarningHandler{}
	engine := newWarningEngine(t, handler)

	// 60 days against a caller-supplied annual limit of 100 crosses 0.5.
	_, err := engine.Evaluate(context.Background(), []gostay.Stay{
		stay(date(2024, time.March, 1), date(2024, time.April, 29)),
	}, 2024, gostay.WithAnnualLimit(100))
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}

	annual := handler.byRule(gostay.RuleAnnualLimit)
	if len(annual) != 1 {
		t.Fatalf("Expected 1 annual-limit warning, got %d", len(annual))
	}
	if annual[0].Threshold != 0.5 || annual[0].Days != 60 || annual[0].Limit != 100 {
		t.Errorf("Unexpected warning payload: %+v", annual[0])
	}
}

func TestWarnings_NoThresholdsConfigured(t *testing.T) {
	handler := &mockWarningHandler{}
	engine, err := gostay.New(gostay.Config{WarningHandler: handler})
	if err != nil {
		t.Fatalf("Failed to create engine: %v", err)
	}

	_, err = engine.Evaluate(context.Background(), []gostay.Stay{
		stay(date(2024, time.January, 1), date(2024, time.March, 20)),
	}, 2024)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}

	if len(handler.warnings) != 0 {
		t.Errorf("Expected no warnings without thresholds, got %d", len(handler.warnings))
	}
}
