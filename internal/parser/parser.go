package parser

import (
	"github.com/meow-lang/meow-lang/internal/ast"
	"github.com/meow-lang/meow-lang/internal/diag"
	"github.com/meow-lang/meow-lang/internal/lexer"
)

type (
	prefixParseFn func() ast.Expr
	infixParseFn  func(ast.Expr) ast.Expr
)

type Option func(*options)

type options struct {
	filename string
}

// WithFilename configures the parser to attribute all emitted spans to the provided filename.
func WithFilename(name string) Option {
	return func(o *options) {
		o.filename = name
	}
}

const (
	precedenceLowest = iota
	precedenceAssign
	precedenceOr
	precedenceAnd
	precedenceEquality
	precedenceComparison
	precedenceSum
	precedenceProduct
	precedencePrefix
	precedenceCall
)

var precedences = map[lexer.TokenType]int{
	lexer.ASSIGN:         precedenceAssign,
	lexer.OR:             precedenceOr,
	lexer.AND:            precedenceAnd,
	lexer.PSPSPS:         precedenceEquality,
	lexer.HISSS:          precedenceEquality,
	lexer.TAIL_UP:        precedenceComparison,
	lexer.TAIL_UP_UP:     precedenceComparison,
	lexer.TAIL_DOWN:      precedenceComparison,
	lexer.TAIL_DOWN_DOWN: precedenceComparison,
	lexer.PAW_PAW:        precedenceSum,
	lexer.SCRATCH:        precedenceSum,
	lexer.PURR_PURR:      precedenceProduct,
	lexer.FEED:           precedenceProduct,
	lexer.LPAREN:         precedenceCall,
}

// ParseError captures a parsing error with location context.
type ParseError struct {
	Message  string
	Span     lexer.Span
	Severity diag.Severity
	Code     diag.Code
}

// ToDiagnostic converts a parse error into a shared diagnostic structure.
func (e ParseError) ToDiagnostic() diag.Diagnostic {
	code := e.Code
	if code == "" {
		code = diag.CodeParseUnexpectedToken
	}
	return diag.Diagnostic{
		Stage:    diag.StageParser,
		Severity: e.Severity,
		Code:     code,
		Message:  "MRRROW? " + e.Message,
		Span: diag.Span{
			Filename: e.Span.Filename,
			Line:     e.Span.Line,
			Column:   e.Span.Column,
			Start:    e.Span.Start,
			End:      e.Span.End,
		},
	}
}

// Parser implements a Pratt-style recursive descent parser for the cat
// language. curTok always reflects the token currently under examination;
// peekTok mirrors the next token pulled from the lexer. The pair forms the
// parser's sole lookahead window and is only mutated via nextToken.
//
// Parse functions leave curTok on the last token of their construct; the
// caller advances past it. Statement parsing additionally requires a
// terminator (newline, ';', '}' or EOF) via endStmt. There is no error
// recovery: the first grammatical mismatch stops the parse, matching the
// single-shot interpretation model.
type Parser struct {
	lx      *lexer.Lexer
	curTok  lexer.Token
	peekTok lexer.Token

	errors []ParseError

	filename string

	prefixFns map[lexer.TokenType]prefixParseFn
	infixFns  map[lexer.TokenType]infixParseFn
}

// New returns a parser initialised with the provided source input.
func New(input string, opts ...Option) *Parser {
	cfg := options{}
	for _, opt := range opts {
		opt(&cfg)
	}

	p := &Parser{
		lx:        lexer.New(input),
		prefixFns: make(map[lexer.TokenType]prefixParseFn),
		infixFns:  make(map[lexer.TokenType]infixParseFn),
		filename:  cfg.filename,
	}

	if cfg.filename != "" {
		p.lx.SetFilename(cfg.filename)
	}

	p.registerPrefix(lexer.IDENT, p.parseIdentifier)
	p.registerPrefix(lexer.NUMBER, p.parseNumberLiteral)
	p.registerPrefix(lexer.STRING, p.parseStringLiteral)
	p.registerPrefix(lexer.TRUE, p.parseBoolLiteral)
	p.registerPrefix(lexer.FALSE, p.parseBoolLiteral)
	p.registerPrefix(lexer.NIL, p.parseNilLiteral)
	p.registerPrefix(lexer.BANG, p.parsePrefixExpr)
	p.registerPrefix(lexer.SCRATCH, p.parsePrefixExpr)
	p.registerPrefix(lexer.LPAREN, p.parseGroupedExpr)

	p.registerInfix(lexer.ASSIGN, p.parseAssignExpr)
	p.registerInfix(lexer.AND, p.parseLogicalExpr)
	p.registerInfix(lexer.OR, p.parseLogicalExpr)
	p.registerInfix(lexer.PSPSPS, p.parseInfixExpr)
	p.registerInfix(lexer.HISSS, p.parseInfixExpr)
	p.registerInfix(lexer.TAIL_UP, p.parseInfixExpr)
	p.registerInfix(lexer.TAIL_UP_UP, p.parseInfixExpr)
	p.registerInfix(lexer.TAIL_DOWN, p.parseInfixExpr)
	p.registerInfix(lexer.TAIL_DOWN_DOWN, p.parseInfixExpr)
	p.registerInfix(lexer.PAW_PAW, p.parseInfixExpr)
	p.registerInfix(lexer.SCRATCH, p.parseInfixExpr)
	p.registerInfix(lexer.PURR_PURR, p.parseInfixExpr)
	p.registerInfix(lexer.FEED, p.parseInfixExpr)
	p.registerInfix(lexer.LPAREN, p.parseCallExpr)

	// Seed curTok/peekTok.
	p.nextToken()
	p.nextToken()

	return p
}

// Errors returns all parse errors that were encountered.
func (p *Parser) Errors() []ParseError {
	return p.errors
}

// LexErrors returns the errors accumulated by the underlying lexer.
func (p *Parser) LexErrors() []lexer.LexerError {
	return p.lx.Errors
}

// Parse parses a full script and returns its AST. Lexer errors and parse
// errors are accumulated on the parser; callers must consult LexErrors and
// Errors before evaluating the result.
func (p *Parser) Parse() *ast.Program {
	program := ast.NewProgram(p.curTok.Span)

	p.skipTerminators()

	for p.curTok.Type != lexer.EOF {
		stmt := p.parseStmt()
		if stmt == nil {
			break
		}

		program.Stmts = append(program.Stmts, stmt)
		program.SetSpan(mergeSpan(program.Span(), stmt.Span()))

		if !p.endStmt() {
			break
		}
		p.nextToken()
		p.skipTerminators()
	}

	return program
}

// nextToken advances the parser's token window.
// Contract: after calling nextToken, curTok == old(peekTok). The lexer is
// only queried from this hop to keep lookahead bookkeeping centralized.
func (p *Parser) nextToken() {
	p.curTok = p.peekTok
	p.peekTok = p.lx.NextToken()
}

// skipTerminators consumes any run of statement terminators.
func (p *Parser) skipTerminators() {
	for p.curTok.Type == lexer.NEWLINE || p.curTok.Type == lexer.SEMICOLON {
		p.nextToken()
	}
}

// endStmt asserts that the statement just parsed is properly terminated.
// Newlines and ';' are consumed; '}' and EOF terminate without being
// consumed so the enclosing construct can see them.
func (p *Parser) endStmt() bool {
	switch p.peekTok.Type {
	case lexer.NEWLINE, lexer.SEMICOLON:
		p.nextToken()
		return true
	case lexer.EOF, lexer.RBRACE:
		return true
	default:
		p.reportUnexpectedToken("expected newline or ';' after statement", p.peekTok)
		return false
	}
}

// expect asserts that the peek token matches the provided type.
// The caller is responsible for inspecting curTok before invoking expect,
// because expect never rewinds; on success it promotes peekTok into curTok.
func (p *Parser) expect(tt lexer.TokenType) bool {
	if p.peekTok.Type == tt {
		p.nextToken()
		return true
	}

	p.reportUnexpectedToken("expected '"+string(tt)+"'", p.peekTok)
	return false
}

func (p *Parser) registerPrefix(tokenType lexer.TokenType, fn prefixParseFn) {
	p.prefixFns[tokenType] = fn
}

func (p *Parser) registerInfix(tokenType lexer.TokenType, fn infixParseFn) {
	p.infixFns[tokenType] = fn
}

func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peekTok.Type]; ok {
		return prec
	}
	return precedenceLowest
}

func (p *Parser) curPrecedence() int {
	if prec, ok := precedences[p.curTok.Type]; ok {
		return prec
	}
	return precedenceLowest
}

// mergeSpan assumes start.End <= end.End and returns a span covering both.
// Callers should pass the earliest start span first so AST node spans grow
// monotonically.
func mergeSpan(start, end lexer.Span) lexer.Span {
	span := start

	if span.Filename == "" {
		span.Filename = end.Filename
	}

	if span.Line == 0 && end.Line != 0 {
		span.Line = end.Line
		span.Column = end.Column
		span.Start = end.Start
	}

	if end.End > span.End {
		span.End = end.End
	}

	return span
}
