// Package profiles provides named rule presets for common stay regimes,
// plus YAML loading for custom ones. Presets are heuristics for planning,
// not legal advice; the numbers are the commonly cited defaults and can be
// overridden per deployment with a profiles file.
package profiles

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/nmoriya/gostay/pkg/gostay"
)

// Profile is a named rule set.
type Profile struct {
	Name        string `mapstructure:"name"`
	Description string `mapstructure:"description"`

	// VisitLimit is the maximum length of a single stay, in days.
	VisitLimit int `mapstructure:"visit_limit"`

	// RollingLimit is the maximum number of days inside any rolling window.
	RollingLimit int `mapstructure:"rolling_limit"`

	// WindowDays is the rolling window length in days.
	WindowDays int `mapstructure:"window_days"`

	// WarningThresholds are optional fractions forwarded to the engine.
	WarningThresholds []float64 `mapstructure:"warning_thresholds"`
}

// Rules converts the profile into an engine rule set.
func (p Profile) Rules() gostay.RuleSet {
	return gostay.RuleSet{
		VisitLimit:        p.VisitLimit,
		RollingLimit:      p.RollingLimit,
		WindowDays:        p.WindowDays,
		WarningThresholds: p.WarningThresholds,
	}
}

// Builtin returns the built-in presets.
func Builtin() []Profile {
	return []Profile{
		{
			Name:         "japan-short-stay",
			Description:  "90 days per visit, 180 days in any 365-day window",
			VisitLimit:   90,
			RollingLimit: 180,
			WindowDays:   365,
		},
		{
			Name:         "schengen-90-180",
			Description:  "90 days in any 180-day window",
			VisitLimit:   90,
			RollingLimit: 90,
			WindowDays:   180,
		},
		{
			Name:         "uk-standard-visitor",
			Description:  "180 days per visit, 180 days in any 365-day window",
			VisitLimit:   180,
			RollingLimit: 180,
			WindowDays:   365,
		},
	}
}

// Find returns the built-in preset with the given name (case-insensitive).
func Find(name string) (Profile, bool) {
	for _, p := range Builtin() {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Profile{}, false
}

// Load reads profiles from a YAML file with a top-level "profiles" list:
//
//	profiles:
//	  - name: contractor-60-180
//	    visit_limit: 60
//	    rolling_limit: 120
//	    window_days: 180
//
// Every loaded profile is checked the way the engine checks its own
// configuration, so a file that loads cleanly always builds an engine.
func Load(path string) ([]Profile, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read profiles file: %w", err)
	}

	var loaded []Profile
	if err := v.UnmarshalKey("profiles", &loaded); err != nil {
		return nil, fmt.Errorf("decode profiles: %w", err)
	}

	for i, p := range loaded {
		if p.Name == "" {
			return nil, fmt.Errorf("profile %d: name is required", i)
		}
		cfg := gostay.Config{Rules: p.Rules()}
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("profile %q: %w", p.Name, err)
		}
	}
	return loaded, nil
}
