package parser

import (
	"github.com/meow-lang/meow-lang/internal/ast"
	"github.com/meow-lang/meow-lang/internal/lexer"
)

func (p *Parser) parseStmt() ast.Stmt {
	switch p.curTok.Type {
	case lexer.MEOW:
		return p.parseVarStmt()
	case lexer.PURR:
		return p.parsePrintStmt()
	case lexer.GRR:
		return p.parseIfStmt()
	case lexer.MRRR:
		return p.parseWhileStmt()
	case lexer.PRRR:
		return p.parseFuncStmt()
	case lexer.MEW:
		return p.parseReturnStmt()
	case lexer.LBRACE:
		block := p.parseBlock()
		if block == nil {
			return nil
		}
		return block
	default:
		return p.parseExprStmt()
	}
}

// parseVarStmt parses `meow <name> = <expr>`. The initializer is required;
// rebinding an existing name reuses the same form.
func (p *Parser) parseVarStmt() ast.Stmt {
	start := p.curTok.Span

	if !p.expect(lexer.IDENT) {
		return nil
	}

	name := ast.NewIdent(p.curTok.Value, p.curTok.Span)

	if !p.expect(lexer.ASSIGN) {
		return nil
	}

	p.nextToken()

	value := p.parseExpr(precedenceLowest)
	if value == nil {
		return nil
	}

	return ast.NewVarStmt(name, value, mergeSpan(start, value.Span()))
}

// parsePrintStmt parses `purr <expr>`.
func (p *Parser) parsePrintStmt() ast.Stmt {
	start := p.curTok.Span

	p.nextToken()

	value := p.parseExpr(precedenceLowest)
	if value == nil {
		return nil
	}

	return ast.NewPrintStmt(value, mergeSpan(start, value.Span()))
}

// parseIfStmt parses `grr <expr> { ... }` with an optional `grrr { ... }`.
// The else branch must follow the closing brace on the same line.
func (p *Parser) parseIfStmt() ast.Stmt {
	start := p.curTok.Span

	p.nextToken()

	cond := p.parseExpr(precedenceLowest)
	if cond == nil {
		return nil
	}

	if !p.expect(lexer.LBRACE) {
		return nil
	}

	then := p.parseBlock()
	if then == nil {
		return nil
	}

	span := mergeSpan(start, then.Span())

	var els *ast.BlockStmt
	if p.peekTok.Type == lexer.GRRR {
		p.nextToken() // move to 'grrr'

		if !p.expect(lexer.LBRACE) {
			return nil
		}

		els = p.parseBlock()
		if els == nil {
			return nil
		}

		span = mergeSpan(span, els.Span())
	}

	return ast.NewIfStmt(cond, then, els, span)
}

// parseWhileStmt parses `mrrr <expr> { ... }`.
func (p *Parser) parseWhileStmt() ast.Stmt {
	start := p.curTok.Span

	p.nextToken()

	cond := p.parseExpr(precedenceLowest)
	if cond == nil {
		return nil
	}

	if !p.expect(lexer.LBRACE) {
		return nil
	}

	body := p.parseBlock()
	if body == nil {
		return nil
	}

	return ast.NewWhileStmt(cond, body, mergeSpan(start, body.Span()))
}

// parseFuncStmt parses `prrr <name>(<params>) { ... }`.
func (p *Parser) parseFuncStmt() ast.Stmt {
	start := p.curTok.Span

	if !p.expect(lexer.IDENT) {
		return nil
	}

	name := ast.NewIdent(p.curTok.Value, p.curTok.Span)

	if !p.expect(lexer.LPAREN) {
		return nil
	}

	params := make([]*ast.Ident, 0)

	if p.peekTok.Type == lexer.RPAREN {
		p.nextToken()
	} else {
		p.nextToken()

		parsed, ok := parseDelimited[*ast.Ident](p, delimitedConfig{
			Closing:             lexer.RPAREN,
			Separator:           lexer.COMMA,
			MissingElementMsg:   "expected parameter name",
			MissingSeparatorMsg: "expected ',' or ')' in parameter list",
		}, func(int) (*ast.Ident, bool) {
			if p.curTok.Type != lexer.IDENT {
				p.reportUnexpectedToken("expected parameter name", p.curTok)
				return nil, false
			}
			return ast.NewIdent(p.curTok.Value, p.curTok.Span), true
		})
		if !ok {
			return nil
		}

		params = parsed
	}

	if !p.expect(lexer.LBRACE) {
		return nil
	}

	body := p.parseBlock()
	if body == nil {
		return nil
	}

	return ast.NewFuncStmt(name, params, body, mergeSpan(start, body.Span()))
}

// parseReturnStmt parses `mew [<expr>]`. The expression is optional; a bare
// mew returns the no-value sentinel.
func (p *Parser) parseReturnStmt() ast.Stmt {
	start := p.curTok.Span

	switch p.peekTok.Type {
	case lexer.NEWLINE, lexer.SEMICOLON, lexer.RBRACE, lexer.EOF:
		return ast.NewReturnStmt(nil, start)
	}

	p.nextToken()

	value := p.parseExpr(precedenceLowest)
	if value == nil {
		return nil
	}

	return ast.NewReturnStmt(value, mergeSpan(start, value.Span()))
}

// parseBlock parses a `{ ... }` statement sequence. It is entered with
// curTok on '{' and returns with curTok on '}'.
func (p *Parser) parseBlock() *ast.BlockStmt {
	start := p.curTok.Span
	block := ast.NewBlockStmt(start)

	p.nextToken()
	p.skipTerminators()

	for p.curTok.Type != lexer.RBRACE && p.curTok.Type != lexer.EOF {
		stmt := p.parseStmt()
		if stmt == nil {
			return nil
		}

		block.Stmts = append(block.Stmts, stmt)

		if !p.endStmt() {
			return nil
		}
		p.nextToken()
		p.skipTerminators()
	}

	if p.curTok.Type != lexer.RBRACE {
		p.reportUnexpectedToken("expected '}' to close block", p.curTok)
		return nil
	}

	block.SetSpan(mergeSpan(start, p.curTok.Span))

	return block
}

func (p *Parser) parseExprStmt() ast.Stmt {
	expr := p.parseExpr(precedenceLowest)
	if expr == nil {
		return nil
	}

	return ast.NewExprStmt(expr, expr.Span())
}
