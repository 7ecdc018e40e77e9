package parser

import (
	"fmt"

	"github.com/meow-lang/meow-lang/internal/diag"
	"github.com/meow-lang/meow-lang/internal/lexer"
)

// reportError records a diagnostic. All call sites must supply the
// best-effort span available at the failure site.
func (p *Parser) reportError(msg string, span lexer.Span, code diag.Code) {
	if span.Filename == "" && p.filename != "" {
		span.Filename = p.filename
	}

	p.errors = append(p.errors, ParseError{
		Message:  msg,
		Span:     span,
		Severity: diag.SeverityError,
		Code:     code,
	})
}

// reportUnexpectedToken reports an error naming the expected construct and
// the token actually found.
func (p *Parser) reportUnexpectedToken(expected string, found lexer.Token) {
	var msg string
	switch found.Type {
	case lexer.EOF:
		msg = fmt.Sprintf("%s, found end of input", expected)
	case lexer.NEWLINE:
		msg = fmt.Sprintf("%s, found end of line", expected)
	default:
		msg = fmt.Sprintf("%s, found '%s'", expected, found.Raw)
	}
	p.reportError(msg, found.Span, diag.CodeParseUnexpectedToken)
}

// reportExpectedExpression reports a missing expression at the given token.
func (p *Parser) reportExpectedExpression(found lexer.Token) {
	p.reportUnexpectedToken("expected expression", found)
	p.errors[len(p.errors)-1].Code = diag.CodeParseExpectedExpression
}
