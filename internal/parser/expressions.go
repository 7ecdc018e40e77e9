package parser

import (
	"strconv"

	"github.com/meow-lang/meow-lang/internal/ast"
	"github.com/meow-lang/meow-lang/internal/diag"
	"github.com/meow-lang/meow-lang/internal/lexer"
)

// parseExpr is the Pratt expression loop. It is entered with curTok on the
// first token of the expression and returns with curTok on its last token.
func (p *Parser) parseExpr(precedence int) ast.Expr {
	prefix := p.prefixFns[p.curTok.Type]
	if prefix == nil {
		p.reportExpectedExpression(p.curTok)
		return nil
	}

	left := prefix()

	for left != nil && precedence < p.peekPrecedence() {
		infix := p.infixFns[p.peekTok.Type]
		if infix == nil {
			return left
		}

		p.nextToken()
		left = infix(left)
	}

	return left
}

func (p *Parser) parseIdentifier() ast.Expr {
	return ast.NewIdent(p.curTok.Value, p.curTok.Span)
}

func (p *Parser) parseNumberLiteral() ast.Expr {
	value, err := strconv.ParseFloat(p.curTok.Value, 64)
	if err != nil {
		p.reportError("invalid number literal '"+p.curTok.Raw+"'", p.curTok.Span, diag.CodeParseUnexpectedToken)
		return nil
	}

	return ast.NewNumberLit(value, p.curTok.Raw, p.curTok.Span)
}

func (p *Parser) parseStringLiteral() ast.Expr {
	return ast.NewStringLit(p.curTok.Value, p.curTok.Span)
}

func (p *Parser) parseBoolLiteral() ast.Expr {
	return ast.NewBoolLit(p.curTok.Type == lexer.TRUE, p.curTok.Span)
}

func (p *Parser) parseNilLiteral() ast.Expr {
	return ast.NewNilLit(p.curTok.Span)
}

func (p *Parser) parsePrefixExpr() ast.Expr {
	op := p.curTok.Type
	opSpan := p.curTok.Span

	p.nextToken()

	right := p.parseExpr(precedencePrefix)
	if right == nil {
		return nil
	}

	return ast.NewPrefixExpr(op, right, mergeSpan(opSpan, right.Span()))
}

func (p *Parser) parseGroupedExpr() ast.Expr {
	p.nextToken()

	expr := p.parseExpr(precedenceLowest)
	if expr == nil {
		return nil
	}

	if !p.expect(lexer.RPAREN) {
		return nil
	}

	return expr
}

func (p *Parser) parseInfixExpr(left ast.Expr) ast.Expr {
	op := p.curTok.Type
	opSpan := p.curTok.Span
	precedence := p.curPrecedence()

	p.nextToken()

	right := p.parseExpr(precedence)
	if right == nil {
		return nil
	}

	return ast.NewBinaryExpr(op, opSpan, left, right, mergeSpan(left.Span(), right.Span()))
}

func (p *Parser) parseLogicalExpr(left ast.Expr) ast.Expr {
	op := p.curTok.Type
	precedence := p.curPrecedence()

	p.nextToken()

	right := p.parseExpr(precedence)
	if right == nil {
		return nil
	}

	return ast.NewLogicalExpr(op, left, right, mergeSpan(left.Span(), right.Span()))
}

// parseAssignExpr parses `name = expr`. Assignment is right-associative and
// only identifiers are valid targets.
func (p *Parser) parseAssignExpr(left ast.Expr) ast.Expr {
	name, ok := left.(*ast.Ident)
	if !ok {
		p.reportError("invalid assignment target", left.Span(), diag.CodeParseBadAssignTarget)
		return nil
	}

	p.nextToken()

	value := p.parseExpr(precedenceAssign - 1)
	if value == nil {
		return nil
	}

	return ast.NewAssignExpr(name, value, mergeSpan(name.Span(), value.Span()))
}

func (p *Parser) parseCallExpr(callee ast.Expr) ast.Expr {
	args := make([]ast.Expr, 0)

	if p.peekTok.Type == lexer.RPAREN {
		p.nextToken()
	} else {
		p.nextToken()

		parsed, ok := parseDelimited[ast.Expr](p, delimitedConfig{
			Closing:             lexer.RPAREN,
			Separator:           lexer.COMMA,
			MissingElementMsg:   "expected argument expression",
			MissingSeparatorMsg: "expected ',' or ')' after argument",
		}, func(int) (ast.Expr, bool) {
			arg := p.parseExpr(precedenceLowest)
			if arg == nil {
				return nil, false
			}
			return arg, true
		})
		if !ok {
			return nil
		}

		args = parsed
	}

	return ast.NewCallExpr(callee, args, mergeSpan(callee.Span(), p.curTok.Span))
}
