package lexer

import (
	"strconv"

	"github.com/meow-lang/meow-lang/internal/diag"
)

type LexerErrorKind int

const (
	ErrUnterminatedString LexerErrorKind = iota
	ErrIllegalRune
)

type LexerError struct {
	Kind    LexerErrorKind
	Message string
	Span    Span
}

func (k LexerErrorKind) diagnosticCode() diag.Code {
	switch k {
	case ErrUnterminatedString:
		return diag.CodeLexUnterminatedString
	case ErrIllegalRune:
		return diag.CodeLexIllegalRune
	default:
		return diag.Code("LEX_UNKNOWN_ERROR")
	}
}

// catSound returns the fixed cat sound for the error kind. Every diagnostic
// message starts with one so failing runs stay reproducible.
func (k LexerErrorKind) catSound() string {
	switch k {
	case ErrUnterminatedString:
		return "HISSS!"
	default:
		return "HISS!"
	}
}

// ToDiagnostic converts a lexer error into a shared diagnostic structure.
func (e LexerError) ToDiagnostic() diag.Diagnostic {
	return diag.Diagnostic{
		Stage:    diag.StageLexer,
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

// Lexer represents the lexer state
type Lexer struct {
	input    []rune
	pos      int  // index of the current rune
	ch       rune // current rune (0 = EOF)
	line     int  // current line number (1-based)
	column   int  // current column number (1-based)
	filename string

	Errors []LexerError
}

func (l *Lexer) addError(kind LexerErrorKind, msg string, span Span) {
	span.Filename = l.filename
	l.Errors = append(l.Errors, LexerError{
		Kind:    kind,
		Message: msg,
		Span:    span,
	})
}

// New creates a new lexer for the given input
func New(input string) *Lexer {
	l := &Lexer{
		input:  []rune(input),
		pos:    -1, // start before first rune
		ch:     0,
		line:   1,
		column: 0, // will be 1 after first read()
	}
	l.read() // move to first character
	return l
}

// SetFilename attributes all subsequently produced spans to the given file.
func (l *Lexer) SetFilename(name string) {
	l.filename = name
}

// read advances the lexer to the next character. line/column always reflect
// the position of the character at pos.
func (l *Lexer) read() {
	l.pos++
	prevPos := l.pos - 1
	inputLen := len(l.input)

	if l.pos >= inputLen {
		// Moved past the last rune; normalize position to virtual EOF.
		if prevPos >= 0 && prevPos < inputLen {
			if l.input[prevPos] == '\n' {
				l.line++
				l.column = 1
			} else {
				l.column++
			}
		} else if prevPos < 0 {
			l.column = 1
		}
		l.ch = 0 // EOF
		return
	}

	l.ch = l.input[l.pos]

	// If the previous character was a newline, we are now on a new line.
	if prevPos >= 0 && prevPos < inputLen && l.input[prevPos] == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
}

// peek returns the next character without advancing
func (l *Lexer) peek() rune {
	if l.pos+1 >= len(l.input) {
		return 0
	}
	return l.input[l.pos+1]
}

// currentSpanStart returns the current position for span tracking
func (l *Lexer) currentSpanStart() (line, column, pos int) {
	return l.line, l.column, l.pos
}

// makeToken creates a token with span information
func (l *Lexer) makeToken(tokType TokenType, startLine, startColumn, startPos, endPos int, raw, value string) Token {
	return Token{
		Type:  tokType,
		Raw:   raw,
		Value: value,
		Span: Span{
			Filename: l.filename,
			Line:     startLine,
			Column:   startColumn,
			Start:    startPos,
			End:      endPos,
		},
	}
}

// skipSpaces skips horizontal whitespace. Newlines are significant (they
// terminate statements) and are handled in NextToken.
func (l *Lexer) skipSpaces() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' {
		l.read()
	}
}

// readIdentifier reads an identifier, keyword, or comparison mnemonic.
// Underscores are part of the run, which is what gives the tail mnemonics
// their maximal-munch behavior.
func (l *Lexer) readIdentifier() string {
	start := l.pos
	for isLetter(l.ch) || isDigit(l.ch) {
		l.read()
	}
	return string(l.input[start:l.pos])
}

// readNumber reads a number literal: a digit run with an optional fraction.
func (l *Lexer) readNumber() string {
	start := l.pos
	for isDigit(l.ch) {
		l.read()
	}

	if l.ch == '.' && isDigit(l.peek()) {
		l.read() // consume '.'
		for isDigit(l.ch) {
			l.read()
		}
	}

	return string(l.input[start:l.pos])
}

// readString reads a string literal. No escape processing: the scan runs to
// the closing quote or end of input. Newlines inside strings are kept and
// line tracking stays correct because read() counts them.
func (l *Lexer) readString(startLine, startColumn, startPos int) (value string, terminated bool) {
	l.read() // skip opening quote

	valueStart := l.pos
	for {
		if l.ch == 0 {
			l.addError(
				ErrUnterminatedString,
				"unterminated string literal",
				Span{Line: startLine, Column: startColumn, Start: startPos, End: l.pos},
			)
			return string(l.input[valueStart:l.pos]), false
		}
		if l.ch == '"' {
			value = string(l.input[valueStart:l.pos])
			l.read() // consume closing quote
			return value, true
		}
		l.read()
	}
}

// NextToken returns the next token from the input
func (l *Lexer) NextToken() Token {
	for {
		l.skipSpaces()

		switch l.ch {
		case 0:
			startLine, startColumn, startPos := l.currentSpanStart()
			if startColumn == 0 {
				startColumn = 1
			}
			return l.makeToken(EOF, startLine, startColumn, startPos, startPos, "", "")

		case '\n':
			startLine, startColumn, startPos := l.currentSpanStart()
			// Collapse a run of blank lines into a single terminator.
			for l.ch == '\n' || l.ch == '\r' || l.ch == ' ' || l.ch == '\t' {
				l.read()
			}
			return l.makeToken(NEWLINE, startLine, startColumn, startPos, l.pos, "\n", "\n")

		case '#':
			// Comment runs to end of line; the newline itself still counts as
			// a statement terminator, so leave it for the next iteration.
			for l.ch != '\n' && l.ch != 0 {
				l.read()
			}
			continue

		case '=':
			return l.singleToken(ASSIGN)
		case '@':
			return l.singleToken(PAW_PAW)
		case '%':
			return l.singleToken(SCRATCH)
		case '~':
			return l.singleToken(PURR_PURR)
		case '^':
			return l.singleToken(FEED)
		case '!':
			return l.singleToken(BANG)
		case ',':
			return l.singleToken(COMMA)
		case ';':
			return l.singleToken(SEMICOLON)
		case '(':
			return l.singleToken(LPAREN)
		case ')':
			return l.singleToken(RPAREN)
		case '{':
			return l.singleToken(LBRACE)
		case '}':
			return l.singleToken(RBRACE)

		case '"':
			startLine, startColumn, startPos := l.currentSpanStart()
			value, terminated := l.readString(startLine, startColumn, startPos)
			raw := string(l.input[startPos:l.pos])
			if !terminated {
				return l.makeToken(ILLEGAL, startLine, startColumn, startPos, l.pos, raw, value)
			}
			return l.makeToken(STRING, startLine, startColumn, startPos, l.pos, raw, value)

		default:
			if isLetter(l.ch) {
				startLine, startColumn, startPos := l.currentSpanStart()
				literal := l.readIdentifier()
				tokType := LookupIdent(literal)
				return l.makeToken(tokType, startLine, startColumn, startPos, l.pos, literal, literal)
			} else if isDigit(l.ch) {
				startLine, startColumn, startPos := l.currentSpanStart()
				literal := l.readNumber()
				return l.makeToken(NUMBER, startLine, startColumn, startPos, l.pos, literal, literal)
			} else {
				startLine, startColumn, startPos := l.currentSpanStart()
				raw := string(l.ch)
				l.read()
				tok := l.makeToken(ILLEGAL, startLine, startColumn, startPos, l.pos, raw, raw)
				l.addError(
					ErrIllegalRune,
					"unexpected character "+strconv.Quote(raw),
					tok.Span,
				)
				return tok
			}
		}
	}
}

// singleToken emits a one-rune token for the current character.
func (l *Lexer) singleToken(tokType TokenType) Token {
	startLine, startColumn, startPos := l.currentSpanStart()
	raw := string(l.ch)
	l.read()
	return l.makeToken(tokType, startLine, startColumn, startPos, l.pos, raw, raw)
}

func isLetter(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}
