package diag

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func errorDiagnostic() Diagnostic {
	return Diagnostic{
		Stage:    StageEval,
		Severity: SeverityError,
		Code:     CodeEvalUndefinedName,
		Message:  "MEOW? undefined variable 'whiskers'",
		Span: Span{
			Filename: "script.meow",
			Line:     3,
			Column:   7,
		},
	}
}

func TestRenderPlain(t *testing.T) {
	f := NewFormatter(io.Discard, false)

	rendered := f.Render(errorDiagnostic())
	assert.Equal(t,
		"script.meow:3:7: error: MEOW? undefined variable 'whiskers' [EVAL_UNDEFINED_NAME]",
		rendered)
}

func TestRenderWithoutFilename(t *testing.T) {
	f := NewFormatter(io.Discard, false)

	d := errorDiagnostic()
	d.Span.Filename = ""

	rendered := f.Render(d)
	assert.Equal(t,
		"3:7: error: MEOW? undefined variable 'whiskers' [EVAL_UNDEFINED_NAME]",
		rendered)
}

func TestRenderInvalidSpan(t *testing.T) {
	f := NewFormatter(io.Discard, false)

	d := errorDiagnostic()
	d.Span = Span{}

	rendered := f.Render(d)
	assert.Equal(t,
		"error: MEOW? undefined variable 'whiskers' [EVAL_UNDEFINED_NAME]",
		rendered)
}

func TestRenderColorized(t *testing.T) {
	f := NewFormatter(io.Discard, true)

	rendered := f.Render(errorDiagnostic())
	assert.Contains(t, rendered, "\x1b[", "colorized output carries ANSI escapes")
	assert.Contains(t, rendered, "undefined variable 'whiskers'")
	assert.Contains(t, rendered, "[EVAL_UNDEFINED_NAME]")
}

func TestFormatWritesLine(t *testing.T) {
	var out bytes.Buffer
	f := NewFormatter(&out, false)

	f.Format(errorDiagnostic())
	assert.True(t, strings.HasSuffix(out.String(), "\n"))
	assert.Equal(t, 1, strings.Count(out.String(), "\n"))
}

func TestFormatWithHelp(t *testing.T) {
	var out bytes.Buffer
	f := NewFormatter(&out, false)

	f.Format(errorDiagnostic().WithHelp("declare it first with 'meow whiskers = ...'"))

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	assert.Len(t, lines, 2)
	assert.Equal(t, "  help: declare it first with 'meow whiskers = ...'", lines[1])
}
