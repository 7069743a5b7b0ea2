// Package output renders stay reports for terminals and spreadsheets.
package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nmoriya/gostay/pkg/gostay"
)

// Pretty renders a human-readable report.
func Pretty(report *gostay.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "--- Stay report for %d ---\n", report.Year)
	if len(report.Ranges) > 0 {
		fmt.Fprintf(&b, "Range | Entry      | Exit       | Days | In year | Status\n")
		for _, rr := range report.Ranges {
			status := "ok"
			if rr.Err != nil {
				status = rr.Err.Error()
			}
			fmt.Fprintf(&b, "%5d | %s | %s | %4d | %7d | %s\n",
				rr.Index,
				gostay.FormatDate(rr.Stay.Entry),
				gostay.FormatDate(rr.Stay.Exit),
				rr.StayDays,
				rr.DaysInYear,
				status)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "Days in %d:         %d\n", report.Year, report.DaysInYear)
	fmt.Fprintf(&b, "Longest single stay: %d days\n", report.LongestStay)
	if report.Window.Days > 0 {
		fmt.Fprintf(&b, "Busiest window:      %d days (%s .. %s)\n",
			report.Window.Days,
			gostay.FormatDate(report.Window.Start),
			gostay.FormatDate(report.Window.End))
	} else {
		fmt.Fprintf(&b, "Busiest window:      none\n")
	}

	writeCheck(&b, "Visit rule", report.VisitRule)
	writeCheck(&b, "Rolling rule", report.RollingRule)
	if report.AnnualLimit != nil {
		writeCheck(&b, "Annual limit", *report.AnnualLimit)
	}
	if report.RollingLimit != nil {
		writeCheck(&b, "Rolling limit", *report.RollingLimit)
	}

	return b.String()
}

func writeCheck(b *strings.Builder, label string, check gostay.RuleCheck) {
	verdict := "ok"
	if check.Exceeded {
		verdict = "EXCEEDED"
	}
	fmt.Fprintf(b, "%-20s %d/%d days (%s)\n", label+":", check.Days, check.Limit, verdict)
}

// WriteCSV writes one row per input range.
func WriteCSV(w io.Writer, report *gostay.Report) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"index", "entry", "exit", "status", "stay_days", "days_in_year"}); err != nil {
		return err
	}
	for _, rr := range report.Ranges {
		status := "ok"
		if rr.Err != nil {
			status = rr.Err.Error()
		}
		row := []string{
			strconv.Itoa(rr.Index),
			gostay.FormatDate(rr.Stay.Entry),
			gostay.FormatDate(rr.Stay.Exit),
			status,
			strconv.Itoa(rr.StayDays),
			strconv.Itoa(rr.DaysInYear),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
