package gostay

import "errors"

var (
	// ErrExitBeforeEntry marks a range whose exit day precedes its entry day
	ErrExitBeforeEntry = errors.New("exit before entry")

	// ErrInvalidDate is returned for dates that do not parse as DateLayout
	ErrInvalidDate = errors.New("invalid date")

	// ErrTooManyRanges is returned when the input exceeds Config.MaxRanges
	ErrTooManyRanges = errors.New("too many ranges")

	// ErrStayTooLong is returned when a single range exceeds Config.MaxSpanDays
	ErrStayTooLong = errors.New("stay too long")
)
