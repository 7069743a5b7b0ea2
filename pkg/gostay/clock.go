package gostay

import "time"

// Clock supplies the current time. The engine only consults it when a
// caller asks for the current year (e.g. an API request with no target
// year); evaluations themselves never read the clock.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

// FixedClock is a Clock pinned to a single instant, for tests and replays.
type FixedClock struct {
	Time time.Time
}

func (c FixedClock) Now() time.Time { return c.Time }
