package diag

import "fmt"

// Stage identifies which interpreter phase produced the diagnostic.
type Stage string

const (
	StageLexer  Stage = "lexer"
	StageParser Stage = "parser"
	StageEval   Stage = "eval"
)

// Severity captures how impactful the diagnostic is.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityNote    Severity = "note"
)

// Code is a stable identifier for a diagnostic.
type Code string

const (
	// Lexer errors
	CodeLexUnterminatedString Code = "LEX_UNTERMINATED_STRING"
	CodeLexIllegalRune        Code = "LEX_ILLEGAL_RUNE"

	// Parser errors
	CodeParseUnexpectedToken    Code = "PARSE_UNEXPECTED_TOKEN"
	CodeParseExpectedExpression Code = "PARSE_EXPECTED_EXPRESSION"
	CodeParseBadAssignTarget    Code = "PARSE_BAD_ASSIGN_TARGET"

	// Evaluator errors
	CodeEvalUndefinedName  Code = "EVAL_UNDEFINED_NAME"
	CodeEvalNotCallable    Code = "EVAL_NOT_CALLABLE"
	CodeEvalArityMismatch  Code = "EVAL_ARITY_MISMATCH"
	CodeEvalTypeMismatch   Code = "EVAL_TYPE_MISMATCH"
	CodeEvalDivisionByZero Code = "EVAL_DIVISION_BY_ZERO"
)

// Span represents a location in source code.
type Span struct {
	Filename string
	Line     int
	Column   int
	Start    int
	End      int
}

// String returns a human-readable representation of the span.
func (s Span) String() string {
	if s.Filename != "" {
		return fmt.Sprintf("%s:%d:%d", s.Filename, s.Line, s.Column)
	}
	return fmt.Sprintf("%d:%d", s.Line, s.Column)
}

// IsValid returns true if the span has valid location information.
func (s Span) IsValid() bool {
	return s.Line > 0 && s.Column > 0
}

// Diagnostic is an interpreter diagnostic surfaced to end-users. Messages are
// cat-themed; the leading cat sound is fixed per error code so the same
// failure always reads the same way.
type Diagnostic struct {
	Stage    Stage
	Severity Severity
	Code     Code
	Message  string
	Span     Span
	Help     string // optional help text
}

// WithHelp returns a new diagnostic with the given help text.
func (d Diagnostic) WithHelp(help string) Diagnostic {
	d.Help = help
	return d
}
