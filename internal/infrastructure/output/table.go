// Package output formats compliance reports for the terminal and for
// machine consumption.
package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/complyops/complyops/internal/application/dto"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
	colorBold   = "\033[1m"
)

// TableFormatter formats compliance reports as a human-readable table.
type TableFormatter struct {
	writer      io.Writer
	EnableColor bool
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{
		writer:      w,
		EnableColor: true, // Default to true, caller can disable
	}
}

// colorize returns the string wrapped in ANSI color codes if enabled.
func (f *TableFormatter) colorize(text, code string) string {
	if !f.EnableColor {
		return text
	}
	return code + text + colorReset
}

// rateColor picks a color band for an implementation rate.
func (f *TableFormatter) rateColor(rate float64) string {
	switch {
	case rate >= 80:
		return colorGreen
	case rate >= 50:
		return colorYellow
	default:
		return colorRed
	}
}

// Format writes the compliance report as a table.
//
//nolint:errcheck // Table formatting errors are non-critical (best-effort terminal output)
func (f *TableFormatter) Format(report *dto.ComplianceReport) error {
	fmt.Fprintln(f.writer, f.colorize(strings.Repeat("─", 80), colorGray))
	fmt.Fprintf(f.writer, "Compliance Report  %s\n", report.GeneratedAt.Format(time.RFC3339))
	fmt.Fprintln(f.writer)

	if len(report.Frameworks) == 0 {
		fmt.Fprintln(f.writer, "No active frameworks.")
		return nil
	}

	fmt.Fprintf(f.writer, "%-30s %6s %6s %6s %6s %6s %8s\n",
		"FRAMEWORK", "TOTAL", "IMPL", "PART", "MISS", "N/A", "RATE")
	fmt.Fprintln(f.writer, f.colorize(strings.Repeat("─", 80), colorGray))

	for _, fr := range report.Frameworks {
		name := fr.Name
		if fr.Version != "" {
			name = fmt.Sprintf("%s (%s)", fr.Name, fr.Version)
		}
		if len(name) > 30 {
			name = name[:27] + "..."
		}

		rate := fmt.Sprintf("%.1f%%", fr.Rate)
		fmt.Fprintf(f.writer, "%-30s %6d %6d %6d %6d %6d %8s\n",
			f.colorize(name, colorBold),
			fr.Snapshot.Total,
			fr.Snapshot.Implemented,
			fr.Snapshot.PartiallyImplemented,
			fr.Snapshot.NotImplemented,
			fr.Snapshot.NotApplicable,
			f.colorize(rate, f.rateColor(fr.Rate)))

		for _, row := range fr.Controls {
			fmt.Fprintf(f.writer, "  %-12s %-45s %s\n",
				row.Code,
				truncate(row.Title, 45),
				f.colorize(row.Status, f.statusColor(row.Status)))
		}
	}

	fmt.Fprintln(f.writer, f.colorize(strings.Repeat("─", 80), colorGray))
	return nil
}

func (f *TableFormatter) statusColor(status string) string {
	switch status {
	case "implemented":
		return colorGreen
	case "partially_implemented":
		return colorYellow
	case "not_applicable":
		return colorGray
	default:
		return colorRed
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
