package interp

import (
	"fmt"
	"io"

	"github.com/meow-lang/meow-lang/internal/ast"
	"github.com/meow-lang/meow-lang/internal/lexer"
)

// control is the result of executing a statement: either normal completion
// or a returning signal carrying the value of a mew. The signal unwinds
// nested blocks, conditionals and loops within a function call, but never
// crosses a call boundary; callExpr catches it.
type control struct {
	returning bool
	value     Value
}

var completed = control{}

func returning(v Value) control {
	return control{returning: true, value: v}
}

// Interpreter walks the AST depth-first and executes it. Execution is
// single-threaded and synchronous; the only non-local control transfer is
// the returning signal above.
type Interpreter struct {
	globals *Environment
	out     io.Writer

	lastValue Value
}

// New creates an interpreter with a fresh global environment. Printed output
// is written line by line to out.
func New(out io.Writer) *Interpreter {
	return &Interpreter{
		globals: NewEnvironment(),
		out:     out,
	}
}

// Globals returns the global environment. It lives for the whole run, which
// lets a REPL evaluate many programs against the same scope.
func (i *Interpreter) Globals() *Environment {
	return i.globals
}

// SetOutput redirects printed output. The REPL uses this to point one
// long-lived interpreter at each run's collector.
func (i *Interpreter) SetOutput(out io.Writer) {
	i.out = out
}

// LastValue returns the value of the most recently executed expression
// statement, or nil if none has executed yet.
func (i *Interpreter) LastValue() Value {
	return i.lastValue
}

// Run executes a program's top-level statements in order. The first runtime
// error aborts the run; output printed before the failure has already been
// written.
func (i *Interpreter) Run(program *ast.Program) *EvalError {
	i.lastValue = nil
	for _, stmt := range program.Stmts {
		ctrl, err := i.execStmt(stmt, i.globals)
		if err != nil {
			return err
		}
		// A top-level mew has no call to return to; treat it as a no-op
		// completion of the statement, like the original implementation.
		_ = ctrl
	}
	return nil
}

func (i *Interpreter) execStmt(stmt ast.Stmt, env *Environment) (control, *EvalError) {
	switch stmt := stmt.(type) {
	case *ast.VarStmt:
		value, err := i.evalExpr(stmt.Value, env)
		if err != nil {
			return completed, err
		}
		// meow rebinds an existing binding wherever it lives; only an unseen
		// name creates one here. A loop body like `meow i = i % 1` must reach
		// the i the condition reads, not a fresh one that dies with the
		// iteration scope.
		if !env.Assign(stmt.Name.Name, value) {
			env.Define(stmt.Name.Name, value)
		}
		return completed, nil

	case *ast.PrintStmt:
		value, err := i.evalExpr(stmt.Value, env)
		if err != nil {
			return completed, err
		}
		fmt.Fprintln(i.out, value.String())
		return completed, nil

	case *ast.ExprStmt:
		value, err := i.evalExpr(stmt.Expr, env)
		if err != nil {
			return completed, err
		}
		i.lastValue = value
		return completed, nil

	case *ast.BlockStmt:
		return i.execBlock(stmt, NewEnclosedEnvironment(env))

	case *ast.IfStmt:
		cond, err := i.evalExpr(stmt.Cond, env)
		if err != nil {
			return completed, err
		}
		if Truthy(cond) {
			return i.execBlock(stmt.Then, NewEnclosedEnvironment(env))
		}
		if stmt.Else != nil {
			return i.execBlock(stmt.Else, NewEnclosedEnvironment(env))
		}
		return completed, nil

	case *ast.WhileStmt:
		for {
			cond, err := i.evalExpr(stmt.Cond, env)
			if err != nil {
				return completed, err
			}
			if !Truthy(cond) {
				return completed, nil
			}
			// Fresh child scope per iteration.
			ctrl, err := i.execBlock(stmt.Body, NewEnclosedEnvironment(env))
			if err != nil {
				return completed, err
			}
			if ctrl.returning {
				return ctrl, nil
			}
		}

	case *ast.FuncStmt:
		fn := &Function{
			Name:   stmt.Name.Name,
			Params: stmt.Params,
			Body:   stmt.Body,
			Env:    env,
		}
		env.Define(stmt.Name.Name, fn)
		return completed, nil

	case *ast.ReturnStmt:
		if stmt.Value == nil {
			return returning(Nil{}), nil
		}
		value, err := i.evalExpr(stmt.Value, env)
		if err != nil {
			return completed, err
		}
		return returning(value), nil

	default:
		return completed, newEvalError(ErrTypeMismatch,
			fmt.Sprintf("cannot execute statement %T", stmt), stmt.Span())
	}
}

// execBlock runs the block's statements in the given environment. A
// returning signal stops execution of the remaining statements immediately.
func (i *Interpreter) execBlock(block *ast.BlockStmt, env *Environment) (control, *EvalError) {
	for _, stmt := range block.Stmts {
		ctrl, err := i.execStmt(stmt, env)
		if err != nil {
			return completed, err
		}
		if ctrl.returning {
			return ctrl, nil
		}
	}
	return completed, nil
}

func (i *Interpreter) evalExpr(expr ast.Expr, env *Environment) (Value, *EvalError) {
	switch expr := expr.(type) {
	case *ast.NumberLit:
		return Number(expr.Value), nil

	case *ast.StringLit:
		return String(expr.Value), nil

	case *ast.BoolLit:
		return Bool(expr.Value), nil

	case *ast.NilLit:
		return Nil{}, nil

	case *ast.Ident:
		value, ok := env.Get(expr.Name)
		if !ok {
			return nil, newEvalError(ErrUndefinedName,
				fmt.Sprintf("undefined variable '%s'", expr.Name), expr.Span())
		}
		return value, nil

	case *ast.AssignExpr:
		value, err := i.evalExpr(expr.Value, env)
		if err != nil {
			return nil, err
		}
		if !env.Assign(expr.Name.Name, value) {
			return nil, newEvalError(ErrUndefinedName,
				fmt.Sprintf("undefined variable '%s'", expr.Name.Name), expr.Name.Span())
		}
		return value, nil

	case *ast.PrefixExpr:
		return i.evalPrefixExpr(expr, env)

	case *ast.BinaryExpr:
		return i.evalBinaryExpr(expr, env)

	case *ast.LogicalExpr:
		return i.evalLogicalExpr(expr, env)

	case *ast.CallExpr:
		return i.evalCallExpr(expr, env)

	default:
		return nil, newEvalError(ErrTypeMismatch,
			fmt.Sprintf("cannot evaluate expression %T", expr), expr.Span())
	}
}

func (i *Interpreter) evalPrefixExpr(expr *ast.PrefixExpr, env *Environment) (Value, *EvalError) {
	right, err := i.evalExpr(expr.Right, env)
	if err != nil {
		return nil, err
	}

	switch expr.Op {
	case lexer.BANG:
		return Bool(!Truthy(right)), nil
	case lexer.SCRATCH:
		n, ok := right.(Number)
		if !ok {
			return nil, newEvalError(ErrTypeMismatch,
				fmt.Sprintf("operand of '%%' must be a number, got %s", right.Kind()), expr.Span())
		}
		return -n, nil
	default:
		return nil, newEvalError(ErrTypeMismatch,
			fmt.Sprintf("unknown prefix operator '%s'", expr.Op), expr.Span())
	}
}

func (i *Interpreter) evalLogicalExpr(expr *ast.LogicalExpr, env *Environment) (Value, *EvalError) {
	left, err := i.evalExpr(expr.Left, env)
	if err != nil {
		return nil, err
	}

	// Short-circuit: the result is the deciding operand itself, not a
	// coerced boolean.
	if expr.Op == lexer.OR {
		if Truthy(left) {
			return left, nil
		}
	} else {
		if !Truthy(left) {
			return left, nil
		}
	}

	return i.evalExpr(expr.Right, env)
}

func (i *Interpreter) evalBinaryExpr(expr *ast.BinaryExpr, env *Environment) (Value, *EvalError) {
	left, err := i.evalExpr(expr.Left, env)
	if err != nil {
		return nil, err
	}
	right, err := i.evalExpr(expr.Right, env)
	if err != nil {
		return nil, err
	}

	switch expr.Op {
	case lexer.PAW_PAW:
		return i.evalAdd(expr, left, right)

	case lexer.SCRATCH:
		l, r, err := numberOperands(expr, left, right)
		if err != nil {
			return nil, err
		}
		return l - r, nil

	case lexer.PURR_PURR:
		l, r, err := numberOperands(expr, left, right)
		if err != nil {
			return nil, err
		}
		return l * r, nil

	case lexer.FEED:
		l, r, err := numberOperands(expr, left, right)
		if err != nil {
			return nil, err
		}
		if r == 0 {
			return nil, newEvalError(ErrDivisionByZero, "division by zero", expr.OpSpan)
		}
		return l / r, nil

	case lexer.PSPSPS:
		return Bool(isEqual(left, right)), nil

	case lexer.HISSS:
		return Bool(!isEqual(left, right)), nil

	case lexer.TAIL_UP, lexer.TAIL_UP_UP, lexer.TAIL_DOWN, lexer.TAIL_DOWN_DOWN:
		return i.evalOrdered(expr, left, right)

	default:
		return nil, newEvalError(ErrTypeMismatch,
			fmt.Sprintf("unknown operator '%s'", expr.Op), expr.OpSpan)
	}
}

// evalAdd implements '@': numeric addition, or concatenation when either
// operand is a string (the other is stringified).
func (i *Interpreter) evalAdd(expr *ast.BinaryExpr, left, right Value) (Value, *EvalError) {
	if l, ok := left.(Number); ok {
		if r, ok := right.(Number); ok {
			return l + r, nil
		}
	}

	if left.Kind() == StringKind || right.Kind() == StringKind {
		return String(left.String() + right.String()), nil
	}

	return nil, newEvalError(ErrTypeMismatch,
		fmt.Sprintf("operands of '@' must be two numbers or include a string, got %s and %s",
			left.Kind(), right.Kind()), expr.OpSpan)
}

// evalOrdered implements the tail mnemonics. Numbers compare numerically;
// strings compare lexicographically.
func (i *Interpreter) evalOrdered(expr *ast.BinaryExpr, left, right Value) (Value, *EvalError) {
	if l, ok := left.(String); ok {
		if r, ok := right.(String); ok {
			return orderedResult(expr.Op, compareStrings(l, r)), nil
		}
	}

	l, r, err := numberOperands(expr, left, right)
	if err != nil {
		return nil, err
	}

	switch {
	case l < r:
		return orderedResult(expr.Op, -1), nil
	case l > r:
		return orderedResult(expr.Op, 1), nil
	default:
		return orderedResult(expr.Op, 0), nil
	}
}

func compareStrings(l, r String) int {
	switch {
	case l < r:
		return -1
	case l > r:
		return 1
	default:
		return 0
	}
}

func orderedResult(op lexer.TokenType, cmp int) Bool {
	switch op {
	case lexer.TAIL_UP:
		return cmp > 0
	case lexer.TAIL_UP_UP:
		return cmp >= 0
	case lexer.TAIL_DOWN:
		return cmp < 0
	default: // TAIL_DOWN_DOWN
		return cmp <= 0
	}
}

func numberOperands(expr *ast.BinaryExpr, left, right Value) (Number, Number, *EvalError) {
	l, lok := left.(Number)
	r, rok := right.(Number)
	if !lok || !rok {
		return 0, 0, newEvalError(ErrTypeMismatch,
			fmt.Sprintf("operands of '%s' must be numbers, got %s and %s",
				expr.Op, left.Kind(), right.Kind()), expr.OpSpan)
	}
	return l, r, nil
}

func isEqual(left, right Value) bool {
	switch l := left.(type) {
	case Nil:
		_, ok := right.(Nil)
		return ok
	case Number:
		r, ok := right.(Number)
		return ok && l == r
	case String:
		r, ok := right.(String)
		return ok && l == r
	case Bool:
		r, ok := right.(Bool)
		return ok && l == r
	case *Function:
		r, ok := right.(*Function)
		return ok && l == r
	default:
		return false
	}
}

func (i *Interpreter) evalCallExpr(expr *ast.CallExpr, env *Environment) (Value, *EvalError) {
	callee, err := i.evalExpr(expr.Callee, env)
	if err != nil {
		return nil, err
	}

	// Arguments are evaluated left-to-right in the caller's environment.
	args := make([]Value, 0, len(expr.Args))
	for _, argExpr := range expr.Args {
		arg, err := i.evalExpr(argExpr, env)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}

	fn, ok := callee.(*Function)
	if !ok {
		return nil, newEvalError(ErrNotCallable,
			fmt.Sprintf("can only call functions, got %s", callee.Kind()), expr.Span())
	}

	if len(args) != fn.Arity() {
		return nil, newEvalError(ErrArityMismatch,
			fmt.Sprintf("'%s' expects %d argument(s) but got %d", fn.Name, fn.Arity(), len(args)),
			expr.Span())
	}

	// The call environment's parent is the function's defining environment,
	// not the caller's: lexical scoping.
	callEnv := NewEnclosedEnvironment(fn.Env)
	for idx, param := range fn.Params {
		callEnv.Define(param.Name, args[idx])
	}

	ctrl, evalErr := i.execBlock(fn.Body, callEnv)
	if evalErr != nil {
		return nil, evalErr
	}
	if ctrl.returning {
		return ctrl.value, nil
	}
	return Nil{}, nil
}
