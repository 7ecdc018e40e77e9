package diag

import (
	"fmt"
	"io"
	"strings"

	"github.com/logrusorgru/aurora/v4"
)

// Formatter renders diagnostics for terminal output.
type Formatter struct {
	out      io.Writer
	colorize bool
}

// NewFormatter creates a formatter writing to out. When colorize is set the
// output uses ANSI colors.
func NewFormatter(out io.Writer, colorize bool) *Formatter {
	return &Formatter{
		out:      out,
		colorize: colorize,
	}
}

// Format renders a single diagnostic as one line (plus optional help lines):
//
//	script.meow:3:7: error: MEOW? undefined variable 'whiskers' [EVAL_UNDEFINED_NAME]
func (f *Formatter) Format(d Diagnostic) {
	fmt.Fprintln(f.out, f.Render(d))

	if d.Help != "" {
		for _, line := range strings.Split(d.Help, "\n") {
			fmt.Fprintf(f.out, "  help: %s\n", line)
		}
	}
}

// Render returns the one-line rendering of the diagnostic.
func (f *Formatter) Render(d Diagnostic) string {
	severity := string(d.Severity)
	message := d.Message
	if f.colorize {
		severity = colorizeSeverity(d.Severity)
		message = aurora.Colorize(message, aurora.BrightFg|aurora.BoldFm).String()
	}

	var sb strings.Builder
	if d.Span.IsValid() {
		sb.WriteString(d.Span.String())
		sb.WriteString(": ")
	}
	sb.WriteString(severity)
	sb.WriteString(": ")
	sb.WriteString(message)
	if d.Code != "" {
		sb.WriteString(" [")
		sb.WriteString(string(d.Code))
		sb.WriteString("]")
	}
	return sb.String()
}

func colorizeSeverity(s Severity) string {
	switch s {
	case SeverityError:
		return aurora.Colorize(string(s), aurora.RedFg|aurora.BrightFg|aurora.BoldFm).String()
	case SeverityWarning:
		return aurora.Colorize(string(s), aurora.YellowFg|aurora.BrightFg).String()
	default:
		return aurora.Colorize(string(s), aurora.CyanFg).String()
	}
}
