package interp

import (
	"github.com/meow-lang/meow-lang/internal/diag"
	"github.com/meow-lang/meow-lang/internal/lexer"
)

type EvalErrorKind int

const (
	ErrUndefinedName EvalErrorKind = iota
	ErrNotCallable
	ErrArityMismatch
	ErrTypeMismatch
	ErrDivisionByZero
)

// EvalError is a terminal runtime error. The language has no exception
// construct, so every EvalError aborts the whole run.
type EvalError struct {
	Kind    EvalErrorKind
	Message string
	Span    lexer.Span
}

func (e *EvalError) Error() string {
	return e.Message
}

func (k EvalErrorKind) diagnosticCode() diag.Code {
	switch k {
	case ErrUndefinedName:
		return diag.CodeEvalUndefinedName
	case ErrNotCallable:
		return diag.CodeEvalNotCallable
	case ErrArityMismatch:
		return diag.CodeEvalArityMismatch
	case ErrTypeMismatch:
		return diag.CodeEvalTypeMismatch
	case ErrDivisionByZero:
		return diag.CodeEvalDivisionByZero
	default:
		return diag.Code("EVAL_UNKNOWN_ERROR")
	}
}

// catSound returns the fixed cat sound for the error kind, keeping runtime
// failures deterministic and cat-themed at the same time.
func (k EvalErrorKind) catSound() string {
	switch k {
	case ErrUndefinedName:
		return "MEOW?"
	case ErrNotCallable:
		return "HISS!"
	case ErrArityMismatch:
		return "MRRROW!"
	case ErrTypeMismatch:
		return "GRRR!"
	case ErrDivisionByZero:
		return "YOWL!"
	default:
		return "MEOW!"
	}
}

// ToDiagnostic converts a runtime error into a shared diagnostic structure.
func (e *EvalError) ToDiagnostic() diag.Diagnostic {
	return diag.Diagnostic{
		Stage:    diag.StageEval,
		Severity: diag.SeverityError,
		Code:     e.Kind.diagnosticCode(),
		Message:  e.Kind.catSound() + " " + e.Message,
		Span: diag.Span{
			Filename: e.Span.Filename,
			Line:     e.Span.Line,
			Column:   e.Span.Column,
			Start:    e.Span.Start,
			End:      e.Span.End,
		},
	}
}

func newEvalError(kind EvalErrorKind, msg string, span lexer.Span) *EvalError {
	return &EvalError{
		Kind:    kind,
		Message: msg,
		Span:    span,
	}
}
