package meow

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meow-lang/meow-lang/internal/diag"
	"github.com/meow-lang/meow-lang/internal/interp"
)

func TestRunHello(t *testing.T) {
	result := Run("meow x = 5\npurr x")

	require.False(t, result.Failed())
	assert.Equal(t, []string{"5"}, result.Output)
}

func TestRunArithmetic(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`purr 3 @ 4`, "7"},
		{`purr 5 % 2`, "3"},
		{`purr 3 ~ 4`, "12"},
		{`purr 10 ^ 2`, "5"},
	}

	for _, tt := range tests {
		result := Run(tt.input)
		require.False(t, result.Failed(), "input %q: %v", tt.input, result.Diagnostic)
		assert.Equal(t, []string{tt.expected}, result.Output, "input %q", tt.input)
	}
}

func TestRunConditional(t *testing.T) {
	result := Run(`
grr 5 TAIL_UP 3 {
    purr "bigger"
} grrr {
    purr "smaller"
}
`)

	require.False(t, result.Failed())
	assert.Equal(t, []string{"bigger"}, result.Output)
}

func TestRunLoop(t *testing.T) {
	result := Run(`
meow i = 3
mrrr i TAIL_UP 0 { purr i; meow i = i % 1 }
`)

	require.False(t, result.Failed())
	assert.Equal(t, []string{"3", "2", "1"}, result.Output)
}

func TestRunFunction(t *testing.T) {
	result := Run(`
prrr add(a, b) {
    mew a @ b
}
purr add(2, 3)
`)

	require.False(t, result.Failed())
	assert.Equal(t, []string{"5"}, result.Output)
}

func TestRunLexError(t *testing.T) {
	result := Run(`purr "no closing quote`)

	require.True(t, result.Failed())
	assert.Equal(t, diag.StageLexer, result.Diagnostic.Stage)
	assert.Equal(t, diag.CodeLexUnterminatedString, result.Diagnostic.Code)
	assert.Equal(t, "HISSS! unterminated string literal", result.Diagnostic.Message)
	assert.Empty(t, result.Output, "a lex error means nothing is evaluated")
}

func TestRunParseError(t *testing.T) {
	result := Run("purr 1\nmeow = 2")

	require.True(t, result.Failed())
	assert.Equal(t, diag.StageParser, result.Diagnostic.Stage)
	assert.Equal(t, "MRRROW? expected 'IDENT', found '='", result.Diagnostic.Message)
	assert.Empty(t, result.Output, "a parse error means nothing is evaluated")
}

func TestRunRuntimeError(t *testing.T) {
	result := Run(`
purr "before"
purr whiskers
`)

	require.True(t, result.Failed())
	assert.Equal(t, diag.StageEval, result.Diagnostic.Stage)
	assert.Equal(t, diag.CodeEvalUndefinedName, result.Diagnostic.Code)
	assert.Equal(t, "MEOW? undefined variable 'whiskers'", result.Diagnostic.Message)
	assert.Equal(t, []string{"before"}, result.Output, "output before the failure is kept")
}

func TestRunDivisionByZero(t *testing.T) {
	result := Run(`purr 10 ^ 0`)

	require.True(t, result.Failed())
	assert.Equal(t, diag.CodeEvalDivisionByZero, result.Diagnostic.Code)
	assert.Equal(t, "YOWL! division by zero", result.Diagnostic.Message)
}

func TestRunArityMismatch(t *testing.T) {
	result := Run("prrr add(a, b) { mew a @ b }\npurr add(1)")

	require.True(t, result.Failed())
	assert.Equal(t, diag.CodeEvalArityMismatch, result.Diagnostic.Code)
	assert.Equal(t, "MRRROW! 'add' expects 2 argument(s) but got 1", result.Diagnostic.Message)
}

func TestRunWithFilename(t *testing.T) {
	result := Run("purr whiskers", WithFilename("script.meow"))

	require.True(t, result.Failed())
	assert.Equal(t, "script.meow", result.Diagnostic.Span.Filename)
	assert.Equal(t, 1, result.Diagnostic.Span.Line)
	assert.Equal(t, 6, result.Diagnostic.Span.Column)
}

func TestRunWithOutput(t *testing.T) {
	var out bytes.Buffer
	result := Run("purr 1\npurr 2", WithOutput(&out))

	require.False(t, result.Failed())
	assert.Equal(t, "1\n2\n", out.String(), "lines stream to the writer")
	assert.Equal(t, []string{"1", "2"}, result.Output, "and are still collected")
}

func TestRunValue(t *testing.T) {
	result := Run(`1 @ 2`)

	require.False(t, result.Failed())
	assert.Equal(t, interp.Number(3), result.Value)
}

func TestRunIsolated(t *testing.T) {
	first := Run(`meow x = 1`)
	require.False(t, first.Failed())

	second := Run(`purr x`)
	require.True(t, second.Failed(), "standalone runs must not share state")
	assert.Equal(t, diag.CodeEvalUndefinedName, second.Diagnostic.Code)
}

func TestSessionPersistsBindings(t *testing.T) {
	session := NewSession()

	result := session.Run(`meow lives = 9`)
	require.False(t, result.Failed())

	result = session.Run(`purr lives`)
	require.False(t, result.Failed())
	assert.Equal(t, []string{"9"}, result.Output)
}

func TestSessionPersistsFunctions(t *testing.T) {
	session := NewSession()

	result := session.Run(`prrr double(n) { mew n ~ 2 }`)
	require.False(t, result.Failed())

	result = session.Run(`purr double(21)`)
	require.False(t, result.Failed())
	assert.Equal(t, []string{"42"}, result.Output)
}

func TestSessionSurvivesErrors(t *testing.T) {
	session := NewSession()

	result := session.Run(`meow x = 1`)
	require.False(t, result.Failed())

	result = session.Run(`purr ghost`)
	require.True(t, result.Failed())

	result = session.Run(`purr x`)
	require.False(t, result.Failed(), "an error on one line must not wipe the session")
	assert.Equal(t, []string{"1"}, result.Output)
}

func TestSessionValueEcho(t *testing.T) {
	session := NewSession()

	result := session.Run(`1 @ 2`)
	require.False(t, result.Failed())
	assert.Equal(t, interp.Number(3), result.Value)

	result = session.Run(`meow x = 5`)
	require.False(t, result.Failed())
	assert.Nil(t, result.Value, "a declaration is not an expression statement")
}

func TestRunFibonacci(t *testing.T) {
	result := Run(`
prrr fib(n) {
    grr n TAIL_DOWN 2 {
        mew n
    }
    mew fib(n % 1) @ fib(n % 2)
}
purr fib(10)
`)

	require.False(t, result.Failed())
	assert.Equal(t, []string{"55"}, result.Output)
}

func TestRunStringProgram(t *testing.T) {
	result := Run(`
prrr greet(name) {
    mew "meow, " @ name @ "!"
}
purr greet("world")
`)

	require.False(t, result.Failed())
	assert.Equal(t, []string{"meow, world!"}, result.Output)
}

func TestExampleScripts(t *testing.T) {
	expected := map[string][]string{
		"countdown.meow": {"3", "2", "1", "blastoff"},
		"fib.meow":       {"0", "1", "1", "2", "3", "5", "8", "13", "21", "34"},
		"greeting.meow":  {"meow, world!", "this cat has 9 lives"},
	}

	entries, err := os.ReadDir("examples")
	require.NoError(t, err)
	require.Len(t, entries, len(expected), "every example needs an expectation here")

	for _, entry := range entries {
		t.Run(entry.Name(), func(t *testing.T) {
			source, err := os.ReadFile(filepath.Join("examples", entry.Name()))
			require.NoError(t, err)

			result := Run(string(source), WithFilename(entry.Name()))
			require.False(t, result.Failed(), "diagnostic: %v", result.Diagnostic)
			assert.Equal(t, expected[entry.Name()], result.Output)
		})
	}
}

func TestRunComments(t *testing.T) {
	result := Run(`
# a whole-line comment
purr 1 # a trailing comment
`)

	require.False(t, result.Failed())
	assert.Equal(t, []string{"1"}, result.Output)
}
