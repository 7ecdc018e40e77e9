package interp_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meow-lang/meow-lang/internal/interp"
	"github.com/meow-lang/meow-lang/internal/parser"
)

// run parses and evaluates source, returning the printed lines and the
// runtime error, if any. Parse errors fail the test.
func run(t *testing.T, source string) ([]string, *interp.EvalError) {
	t.Helper()

	p := parser.New(source)
	program := p.Parse()
	require.Empty(t, p.LexErrors())
	require.Empty(t, p.Errors())

	var out bytes.Buffer
	in := interp.New(&out)
	err := in.Run(program)

	printed := out.String()
	if printed == "" {
		return nil, err
	}
	return strings.Split(strings.TrimSuffix(printed, "\n"), "\n"), err
}

// runOK is run for programs that must not fail.
func runOK(t *testing.T, source string) []string {
	t.Helper()

	lines, err := run(t, source)
	require.Nil(t, err, "unexpected runtime error")
	return lines
}

func TestArithmetic(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`purr 3 @ 4`, "7"},
		{`purr 5 % 2`, "3"},
		{`purr 3 ~ 4`, "12"},
		{`purr 10 ^ 2`, "5"},
		{`purr 10 ^ 4`, "2.5"},
		{`purr 1 @ 2 ~ 3`, "7"},
		{`purr (1 @ 2) ~ 3`, "9"},
		{`purr %5 @ 2`, "-3"},
		{`purr 2.5 @ 2.5`, "5"},
	}

	for _, tt := range tests {
		lines := runOK(t, tt.input)
		require.Len(t, lines, 1, "input %q", tt.input)
		assert.Equal(t, tt.expected, lines[0], "input %q", tt.input)
	}
}

func TestStringConcatenation(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`purr "cat" @ "nip"`, "catnip"},
		{`purr "lives: " @ 9`, "lives: 9"},
		{`purr 9 @ " lives"`, "9 lives"},
		{`purr "yes: " @ true`, "yes: true"},
	}

	for _, tt := range tests {
		lines := runOK(t, tt.input)
		require.Len(t, lines, 1, "input %q", tt.input)
		assert.Equal(t, tt.expected, lines[0], "input %q", tt.input)
	}
}

func TestComparisons(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`purr 2 PSPSPS 2`, "true"},
		{`purr 2 PSPSPS 3`, "false"},
		{`purr 2 HISSS 3`, "true"},
		{`purr "a" PSPSPS "a"`, "true"},
		{`purr 1 PSPSPS "1"`, "false"},
		{`purr nil PSPSPS nil`, "true"},
		{`purr 3 TAIL_UP 2`, "true"},
		{`purr 2 TAIL_UP 2`, "false"},
		{`purr 2 TAIL_UP_UP 2`, "true"},
		{`purr 2 TAIL_DOWN 3`, "true"},
		{`purr 3 TAIL_DOWN_DOWN 3`, "true"},
		{`purr "cat" TAIL_DOWN "dog"`, "true"},
		{`purr "dog" TAIL_UP "cat"`, "true"},
	}

	for _, tt := range tests {
		lines := runOK(t, tt.input)
		require.Len(t, lines, 1, "input %q", tt.input)
		assert.Equal(t, tt.expected, lines[0], "input %q", tt.input)
	}
}

func TestTruthiness(t *testing.T) {
	tests := []struct {
		value    interp.Value
		expected bool
	}{
		{interp.Nil{}, false},
		{interp.Bool(false), false},
		{interp.Bool(true), true},
		{interp.Number(0), false},
		{interp.Number(1), true},
		{interp.Number(-1), true},
		{interp.String(""), true},
		{interp.String("cat"), true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, interp.Truthy(tt.value), "value %v", tt.value)
	}
}

func TestLogicalShortCircuit(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// The result is the deciding operand, not a coerced boolean.
		{`purr 0 or "fallback"`, "fallback"},
		{`purr "cat" or boom()`, "cat"},
		{`purr 0 and boom()`, "0"},
		{`purr 1 and "both"`, "both"},
		{`purr nil or nil`, "nil"},
	}

	for _, tt := range tests {
		lines := runOK(t, tt.input)
		require.Len(t, lines, 1, "input %q", tt.input)
		assert.Equal(t, tt.expected, lines[0], "input %q", tt.input)
	}
}

func TestIfElse(t *testing.T) {
	lines := runOK(t, `
grr 5 TAIL_UP 3 {
    purr "bigger"
} grrr {
    purr "smaller"
}
grr 1 TAIL_UP 3 {
    purr "bigger"
} grrr {
    purr "smaller"
}
grr 0 {
    purr "never"
}
`)

	assert.Equal(t, []string{"bigger", "smaller"}, lines)
}

func TestWhileCountdown(t *testing.T) {
	lines := runOK(t, `
meow i = 3
mrrr i TAIL_UP 0 { purr i; meow i = i % 1 }
`)

	assert.Equal(t, []string{"3", "2", "1"}, lines)
}

func TestFunctionCall(t *testing.T) {
	lines := runOK(t, `
prrr add(a, b) {
    mew a @ b
}
purr add(2, 3)
`)

	assert.Equal(t, []string{"5"}, lines)
}

func TestFunctionFallsOffEnd(t *testing.T) {
	lines := runOK(t, `
prrr greet() {
    purr "meow"
}
purr greet()
`)

	assert.Equal(t, []string{"meow", "nil"}, lines)
}

func TestBareReturn(t *testing.T) {
	lines := runOK(t, `
prrr early(n) {
    grr n TAIL_DOWN 0 {
        mew
    }
    purr n
}
purr early(%1)
early(5)
`)

	assert.Equal(t, []string{"nil", "5"}, lines)
}

func TestReturnUnwindsLoop(t *testing.T) {
	lines := runOK(t, `
prrr firstOver(limit) {
    meow i = 0
    mrrr true {
        grr i TAIL_UP limit {
            mew i
        }
        meow i = i @ 1
    }
}
purr firstOver(3)
`)

	assert.Equal(t, []string{"4"}, lines)
}

func TestRecursion(t *testing.T) {
	lines := runOK(t, `
prrr fib(n) {
    grr n TAIL_DOWN 2 {
        mew n
    }
    mew fib(n % 1) @ fib(n % 2)
}
purr fib(10)
`)

	assert.Equal(t, []string{"55"}, lines)
}

func TestLexicalScoping(t *testing.T) {
	lines := runOK(t, `
meow greeting = "meow"
prrr speak() {
    mew greeting
}
prrr shadowed(greeting) {
    mew speak()
}
purr shadowed("hiss")
`)

	// speak resolves greeting in its defining scope, not its caller's.
	assert.Equal(t, []string{"meow"}, lines)
}

func TestMeowRebindsEnclosingScope(t *testing.T) {
	lines := runOK(t, `
meow x = "outer"
{
    meow x = "inner"
    purr x
}
purr x
`)

	// meow reaches the existing binding; the block does not shadow it.
	assert.Equal(t, []string{"inner", "inner"}, lines)
}

func TestBlockLocalBindingDiesWithBlock(t *testing.T) {
	_, err := run(t, `
{
    meow secret = 9
    purr secret
}
purr secret
`)

	require.NotNil(t, err, "a name first bound inside a block is gone after it")
	assert.Equal(t, interp.ErrUndefinedName, err.Kind)
}

func TestWhileMeowRebindTerminates(t *testing.T) {
	lines := runOK(t, `
meow i = 3
mrrr i TAIL_UP 0 {
    purr i
    meow i = i % 1
}
purr "blastoff"
`)

	// The rebind must reach the i the loop condition reads, or the loop
	// never terminates.
	assert.Equal(t, []string{"3", "2", "1", "blastoff"}, lines)
}

func TestAssignReachesOuterScope(t *testing.T) {
	lines := runOK(t, `
meow total = 0
meow i = 0
mrrr i TAIL_DOWN 3 {
    total = total @ i
    meow i = i @ 1
}
purr total
`)

	assert.Equal(t, []string{"3"}, lines)
}

func TestVarRebinding(t *testing.T) {
	lines := runOK(t, `
meow x = 1
meow x = "now a string"
purr x
`)

	assert.Equal(t, []string{"now a string"}, lines)
}

func TestRuntimeErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  interp.EvalErrorKind
	}{
		{"undefined name", `purr ghost`, interp.ErrUndefinedName},
		{"assign undefined", `ghost = 1`, interp.ErrUndefinedName},
		{"not callable", "meow x = 5\npurr x(1)", interp.ErrNotCallable},
		{"arity mismatch", "prrr add(a, b) { mew a @ b }\npurr add(1)", interp.ErrArityMismatch},
		{"type mismatch subtract", `purr "cat" % 1`, interp.ErrTypeMismatch},
		{"type mismatch compare", `purr "cat" TAIL_UP 1`, interp.ErrTypeMismatch},
		{"type mismatch negate", `purr %"cat"`, interp.ErrTypeMismatch},
		{"division by zero", `purr 10 ^ 0`, interp.ErrDivisionByZero},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.input)
			require.NotNil(t, err, "expected a runtime error")
			assert.Equal(t, tt.kind, err.Kind)
		})
	}
}

func TestErrorAbortsRun(t *testing.T) {
	lines, err := run(t, `
purr "before"
purr ghost
purr "after"
`)

	require.NotNil(t, err)
	assert.Equal(t, interp.ErrUndefinedName, err.Kind)
	assert.Equal(t, []string{"before"}, lines, "output before the failure is kept; nothing after runs")
}

func TestDivisionByZeroDiagnostic(t *testing.T) {
	_, err := run(t, `purr 10 ^ 0`)

	require.NotNil(t, err)
	d := err.ToDiagnostic()
	assert.Equal(t, "YOWL! division by zero", d.Message)
	assert.Equal(t, 1, d.Span.Line)
	assert.Equal(t, 9, d.Span.Column)
}

func TestNumberFormatting(t *testing.T) {
	tests := []struct {
		value    interp.Number
		expected string
	}{
		{interp.Number(5), "5"},
		{interp.Number(2.5), "2.5"},
		{interp.Number(-3), "-3"},
		{interp.Number(0), "0"},
		{interp.Number(0.1), "0.1"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.value.String())
	}
}

func TestFunctionValuePrinting(t *testing.T) {
	lines := runOK(t, `
prrr nap() { mew }
purr nap
`)

	assert.Equal(t, []string{"<prrr nap>"}, lines)
}

func TestLastValue(t *testing.T) {
	p := parser.New(`1 @ 2`)
	program := p.Parse()
	require.Empty(t, p.Errors())

	var out bytes.Buffer
	in := interp.New(&out)
	require.Nil(t, in.Run(program))

	assert.Equal(t, interp.Number(3), in.LastValue())
}

func TestGlobalsPersistAcrossRuns(t *testing.T) {
	var out bytes.Buffer
	in := interp.New(&out)

	parse := func(source string) *parser.Parser {
		return parser.New(source)
	}

	p := parse(`meow x = 41`)
	require.Nil(t, in.Run(p.Parse()))
	require.Empty(t, p.Errors())

	p = parse(`purr x @ 1`)
	require.Nil(t, in.Run(p.Parse()))
	require.Empty(t, p.Errors())

	assert.Equal(t, "42\n", out.String())
}
