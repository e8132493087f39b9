package diag

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Reporter is the minimal contract for receiving diagnostics.
type Reporter interface {
	Report(d Diagnostic)
}

// SliceReporter collects diagnostics into an in-memory slice, useful for
// tests and for callers that want to inspect findings before printing them.
type SliceReporter struct {
	Items []Diagnostic
}

func (r *SliceReporter) Report(d Diagnostic) {
	r.Items = append(r.Items, d)
}

// HasErrors reports whether any collected diagnostic is SevError or worse.
func (r *SliceReporter) HasErrors() bool {
	for _, d := range r.Items {
		if d.Severity >= SevError {
			return true
		}
	}
	return false
}

// ColorReporter renders diagnostics to an io.Writer, colorized by severity.
// Grounded on the teacher CLI's use of github.com/fatih/color for terminal
// output (see internal/version.Version).
type ColorReporter struct {
	Out io.Writer
}

func (r ColorReporter) Report(d Diagnostic) {
	c := severityColor(d.Severity)
	fmt.Fprintf(r.Out, "%s[%s] %s: %s\n", c.Sprint(d.Severity.String()), d.Code, d.Primary, d.Message)
	for _, n := range d.Notes {
		fmt.Fprintf(r.Out, "  note: %s: %s\n", n.Span, n.Msg)
	}
}

func severityColor(s Severity) *color.Color {
	switch s {
	case SevError:
		return color.New(color.FgRed, color.Bold)
	case SevWarning:
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgCyan)
	}
}
