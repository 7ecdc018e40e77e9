package ast

import "github.com/meow-lang/meow-lang/internal/lexer"

// Node represents any AST node with an associated source span.
type Node interface {
	Span() lexer.Span
}

// Expr represents an expression node.
type Expr interface {
	Node
	exprNode()
}

// Stmt represents a statement node.
type Stmt interface {
	Node
	stmtNode()
}

// Program represents a parsed script: an ordered sequence of top-level
// statements. Nodes are produced once by the parser and never mutated during
// evaluation.
type Program struct {
	Stmts []Stmt
	span  lexer.Span
}

// Span returns the span covering the entire program.
func (p *Program) Span() lexer.Span { return p.span }

// NewProgram constructs a program node with the provided span.
func NewProgram(span lexer.Span) *Program {
	return &Program{span: span}
}

// SetSpan updates the program span.
func (p *Program) SetSpan(span lexer.Span) {
	p.span = span
}

// Ident represents an identifier reference.
type Ident struct {
	Name string
	span lexer.Span
}

// Span returns the identifier span.
func (i *Ident) Span() lexer.Span { return i.span }

// NewIdent constructs an identifier node.
func NewIdent(name string, span lexer.Span) *Ident {
	return &Ident{Name: name, span: span}
}

func (*Ident) exprNode() {}

// NumberLit represents a numeric literal.
type NumberLit struct {
	Value float64
	Raw   string
	span  lexer.Span
}

// Span returns the literal span.
func (n *NumberLit) Span() lexer.Span { return n.span }

// NewNumberLit constructs a number literal node.
func NewNumberLit(value float64, raw string, span lexer.Span) *NumberLit {
	return &NumberLit{Value: value, Raw: raw, span: span}
}

func (*NumberLit) exprNode() {}

// StringLit represents a string literal.
type StringLit struct {
	Value string
	span  lexer.Span
}

// Span returns the literal span.
func (s *StringLit) Span() lexer.Span { return s.span }

// NewStringLit constructs a string literal node.
func NewStringLit(value string, span lexer.Span) *StringLit {
	return &StringLit{Value: value, span: span}
}

func (*StringLit) exprNode() {}

// BoolLit represents a true/false literal.
type BoolLit struct {
	Value bool
	span  lexer.Span
}

// Span returns the literal span.
func (b *BoolLit) Span() lexer.Span { return b.span }

// NewBoolLit constructs a boolean literal node.
func NewBoolLit(value bool, span lexer.Span) *BoolLit {
	return &BoolLit{Value: value, span: span}
}

func (*BoolLit) exprNode() {}

// NilLit represents the nil literal.
type NilLit struct {
	span lexer.Span
}

// Span returns the literal span.
func (n *NilLit) Span() lexer.Span { return n.span }

// NewNilLit constructs a nil literal node.
func NewNilLit(span lexer.Span) *NilLit {
	return &NilLit{span: span}
}

func (*NilLit) exprNode() {}

// PrefixExpr represents a unary expression: !x or %x (negation).
type PrefixExpr struct {
	Op    lexer.TokenType
	Right Expr
	span  lexer.Span
}

// Span returns the expression span.
func (p *PrefixExpr) Span() lexer.Span { return p.span }

// NewPrefixExpr constructs a prefix expression node.
func NewPrefixExpr(op lexer.TokenType, right Expr, span lexer.Span) *PrefixExpr {
	return &PrefixExpr{Op: op, Right: right, span: span}
}

func (*PrefixExpr) exprNode() {}

// BinaryExpr represents an arithmetic or comparison expression.
type BinaryExpr struct {
	Op     lexer.TokenType
	OpSpan lexer.Span // span of the operator itself, for runtime diagnostics
	Left   Expr
	Right  Expr
	span   lexer.Span
}

// Span returns the expression span.
func (b *BinaryExpr) Span() lexer.Span { return b.span }

// SetSpan updates the expression span.
func (b *BinaryExpr) SetSpan(span lexer.Span) {
	b.span = span
}

// NewBinaryExpr constructs a binary expression node.
func NewBinaryExpr(op lexer.TokenType, opSpan lexer.Span, left, right Expr, span lexer.Span) *BinaryExpr {
	return &BinaryExpr{Op: op, OpSpan: opSpan, Left: left, Right: right, span: span}
}

func (*BinaryExpr) exprNode() {}

// LogicalExpr represents a short-circuiting and/or expression.
type LogicalExpr struct {
	Op    lexer.TokenType
	Left  Expr
	Right Expr
	span  lexer.Span
}

// Span returns the expression span.
func (l *LogicalExpr) Span() lexer.Span { return l.span }

// NewLogicalExpr constructs a logical expression node.
func NewLogicalExpr(op lexer.TokenType, left, right Expr, span lexer.Span) *LogicalExpr {
	return &LogicalExpr{Op: op, Left: left, Right: right, span: span}
}

func (*LogicalExpr) exprNode() {}

// AssignExpr represents an assignment to an existing binding: x = expr.
// The result of the expression is the assigned value.
type AssignExpr struct {
	Name  *Ident
	Value Expr
	span  lexer.Span
}

// Span returns the expression span.
func (a *AssignExpr) Span() lexer.Span { return a.span }

// NewAssignExpr constructs an assignment expression node.
func NewAssignExpr(name *Ident, value Expr, span lexer.Span) *AssignExpr {
	return &AssignExpr{Name: name, Value: value, span: span}
}

func (*AssignExpr) exprNode() {}

// CallExpr represents a function call.
type CallExpr struct {
	Callee Expr
	Args   []Expr
	span   lexer.Span
}

// Span returns the expression span.
func (c *CallExpr) Span() lexer.Span { return c.span }

// NewCallExpr constructs a call expression node.
func NewCallExpr(callee Expr, args []Expr, span lexer.Span) *CallExpr {
	return &CallExpr{Callee: callee, Args: args, span: span}
}

func (*CallExpr) exprNode() {}

// VarStmt represents a declaration or rebinding: meow name = expr.
// Repeating meow for a name bound in any enclosing scope rebinds that
// binding; only an unbound name creates a new one.
type VarStmt struct {
	Name  *Ident
	Value Expr
	span  lexer.Span
}

// Span returns the statement span.
func (v *VarStmt) Span() lexer.Span { return v.span }

// NewVarStmt constructs a variable declaration node.
func NewVarStmt(name *Ident, value Expr, span lexer.Span) *VarStmt {
	return &VarStmt{Name: name, Value: value, span: span}
}

func (*VarStmt) stmtNode() {}

// PrintStmt represents a print statement: purr expr.
type PrintStmt struct {
	Value Expr
	span  lexer.Span
}

// Span returns the statement span.
func (p *PrintStmt) Span() lexer.Span { return p.span }

// NewPrintStmt constructs a print statement node.
func NewPrintStmt(value Expr, span lexer.Span) *PrintStmt {
	return &PrintStmt{Value: value, span: span}
}

func (*PrintStmt) stmtNode() {}

// ExprStmt represents a bare expression statement (assignment or call).
type ExprStmt struct {
	Expr Expr
	span lexer.Span
}

// Span returns the statement span.
func (e *ExprStmt) Span() lexer.Span { return e.span }

// NewExprStmt constructs an expression statement node.
func NewExprStmt(expr Expr, span lexer.Span) *ExprStmt {
	return &ExprStmt{Expr: expr, span: span}
}

func (*ExprStmt) stmtNode() {}

// BlockStmt represents a braced statement sequence. Every block introduces a
// new lexical scope.
type BlockStmt struct {
	Stmts []Stmt
	span  lexer.Span
}

// Span returns the block span.
func (b *BlockStmt) Span() lexer.Span { return b.span }

// SetSpan updates the block span.
func (b *BlockStmt) SetSpan(span lexer.Span) {
	b.span = span
}

// NewBlockStmt constructs a block node.
func NewBlockStmt(span lexer.Span) *BlockStmt {
	return &BlockStmt{span: span}
}

func (*BlockStmt) stmtNode() {}

// IfStmt represents a conditional: grr cond { ... } grrr { ... }.
type IfStmt struct {
	Cond Expr
	Then *BlockStmt
	Else *BlockStmt // nil when no grrr branch
	span lexer.Span
}

// Span returns the statement span.
func (i *IfStmt) Span() lexer.Span { return i.span }

// NewIfStmt constructs an if statement node.
func NewIfStmt(cond Expr, then, els *BlockStmt, span lexer.Span) *IfStmt {
	return &IfStmt{Cond: cond, Then: then, Else: els, span: span}
}

func (*IfStmt) stmtNode() {}

// WhileStmt represents a loop: mrrr cond { ... }.
type WhileStmt struct {
	Cond Expr
	Body *BlockStmt
	span lexer.Span
}

// Span returns the statement span.
func (w *WhileStmt) Span() lexer.Span { return w.span }

// NewWhileStmt constructs a while statement node.
func NewWhileStmt(cond Expr, body *BlockStmt, span lexer.Span) *WhileStmt {
	return &WhileStmt{Cond: cond, Body: body, span: span}
}

func (*WhileStmt) stmtNode() {}

// FuncStmt represents a function declaration: prrr name(params) { ... }.
// The function value is bound under its name in the enclosing scope at
// declaration time; redeclaring the same name overwrites the binding.
type FuncStmt struct {
	Name   *Ident
	Params []*Ident
	Body   *BlockStmt
	span   lexer.Span
}

// Span returns the statement span.
func (f *FuncStmt) Span() lexer.Span { return f.span }

// NewFuncStmt constructs a function declaration node.
func NewFuncStmt(name *Ident, params []*Ident, body *BlockStmt, span lexer.Span) *FuncStmt {
	return &FuncStmt{Name: name, Params: params, Body: body, span: span}
}

func (*FuncStmt) stmtNode() {}

// ReturnStmt represents a return: mew [expr].
type ReturnStmt struct {
	Value Expr // nil for a bare mew
	span  lexer.Span
}

// Span returns the statement span.
func (r *ReturnStmt) Span() lexer.Span { return r.span }

// NewReturnStmt constructs a return statement node.
func NewReturnStmt(value Expr, span lexer.Span) *ReturnStmt {
	return &ReturnStmt{Value: value, span: span}
}

func (*ReturnStmt) stmtNode() {}
