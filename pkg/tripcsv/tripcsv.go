// Package tripcsv reads travel records from CSV files. Each row holds one
// stay as an entry date and an exit date; the resulting ranges feed
// gostay.Engine.Evaluate unchanged, so reversed ranges survive the read and
// are flagged by the engine instead.
package tripcsv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/nmoriya/gostay/pkg/gostay"
)

// Options control the CSV dialect.
type Options struct {
	// Layout is the date layout of both columns (default: gostay.DateLayout).
	Layout string

	// Comma is the field delimiter (default: ',').
	Comma rune

	// NoHeader treats the first row as data even when its first cell does
	// not parse as a date. By default such a row is skipped as a header.
	NoHeader bool
}

// Read parses travel records with default options: comma-separated,
// dates in gostay.DateLayout, an optional header row.
func Read(r io.Reader) ([]gostay.Stay, error) {
	return ReadWith(r, Options{})
}

// ReadFile reads travel records from the file at path.
func ReadFile(path string) ([]gostay.Stay, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open travel records: %w", err)
	}
	defer f.Close()
	return Read(f)
}

// ReadWith parses travel records with explicit options. The first two
// columns of every row are the entry and exit dates; extra columns are
// ignored. The read is strict: the first malformed row fails the whole
// read with its 1-based line number, and date failures wrap
// gostay.ErrInvalidDate.
func ReadWith(r io.Reader, opts Options) ([]gostay.Stay, error) {
	if opts.Layout == "" {
		opts.Layout = gostay.DateLayout
	}

	cr := csv.NewReader(r)
	if opts.Comma != 0 {
		cr.Comma = opts.Comma
	}
	cr.TrimLeadingSpace = true
	// Rows may carry extra columns (notes, flight numbers); only the first
	// two are read.
	cr.FieldsPerRecord = -1

	var stays []gostay.Stay
	line := 0
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if len(record) < 2 {
			return nil, fmt.Errorf("line %d: need entry and exit columns, got %d", line, len(record))
		}

		entry, err := parseDate(record[0], opts.Layout)
		if err != nil {
			if line == 1 && !opts.NoHeader {
				// Header row.
				continue
			}
			return nil, fmt.Errorf("line %d: entry: %w", line, err)
		}
		exit, err := parseDate(record[1], opts.Layout)
		if err != nil {
			return nil, fmt.Errorf("line %d: exit: %w", line, err)
		}
		stays = append(stays, gostay.Stay{Entry: entry, Exit: exit})
	}
	return stays, nil
}

func parseDate(cell, layout string) (time.Time, error) {
	cell = strings.TrimSpace(cell)
	if layout == gostay.DateLayout {
		return gostay.ParseDate(cell)
	}
	t, err := time.Parse(layout, cell)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", gostay.ErrInvalidDate, cell)
	}
	return gostay.Day(t), nil
}
