package interp

import (
	"strconv"

	"github.com/meow-lang/meow-lang/internal/ast"
)

// Kind identifies a runtime value kind.
type Kind string

const (
	NumberKind   Kind = "number"
	StringKind   Kind = "string"
	BoolKind     Kind = "bool"
	NilKind      Kind = "nil"
	FunctionKind Kind = "function"
)

// Value is a runtime value. The set of kinds is closed: numbers, strings,
// booleans, nil (the no-value sentinel) and functions.
type Value interface {
	Kind() Kind
	// String renders the value the way purr prints it.
	String() string
}

// Number is a numeric value. All arithmetic is float64; printing trims a
// zero fraction so whole results read as integers.
type Number float64

// Kind returns NumberKind.
func (Number) Kind() Kind { return NumberKind }

func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'f', -1, 64)
}

// String is a string value.
type String string

// Kind returns StringKind.
func (String) Kind() Kind { return StringKind }

func (s String) String() string { return string(s) }

// Bool is a boolean value, produced by the comparison mnemonics and the
// true/false literals.
type Bool bool

// Kind returns BoolKind.
func (Bool) Kind() Kind { return BoolKind }

func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}

// Nil is the no-value sentinel: the result of a bare mew, of a function body
// that falls off the end, and of the nil literal.
type Nil struct{}

// Kind returns NilKind.
func (Nil) Kind() Kind { return NilKind }

func (Nil) String() string { return "nil" }

// Function is a first-class function value. It closes over the environment
// in effect at its declaration site, giving lexical (not dynamic) scoping.
type Function struct {
	Name   string
	Params []*ast.Ident
	Body   *ast.BlockStmt
	Env    *Environment
}

// Kind returns FunctionKind.
func (*Function) Kind() Kind { return FunctionKind }

func (f *Function) String() string { return "<prrr " + f.Name + ">" }

// Arity returns the declared parameter count.
func (f *Function) Arity() int { return len(f.Params) }

// Truthy applies the language's truthiness rule: nil is false, booleans are
// themselves, numbers are true iff nonzero, everything else is true.
func Truthy(v Value) bool {
	switch v := v.(type) {
	case Nil:
		return false
	case Bool:
		return bool(v)
	case Number:
		return v != 0
	default:
		return true
	}
}
