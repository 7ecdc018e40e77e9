package lexer

// TokenType represents the type of a token
type TokenType string

// Span represents the source location of a token
type Span struct {
	Filename string // optional source filename for diagnostics
	Line     int    // 1-based line number
	Column   int    // 1-based column number
	Start    int    // index in []rune of the original string
	End      int    // exclusive end index
}

// Token represents a lexical token
type Token struct {
	Type  TokenType
	Raw   string // exact runes from source
	Value string // decoded value (for strings, same as Raw for others)
	Span  Span   // source location information
}

// Token type constants
const (
	// Special tokens
	ILLEGAL TokenType = "ILLEGAL"
	EOF     TokenType = "EOF"
	NEWLINE TokenType = "NEWLINE" // statement terminator

	// Identifiers and literals
	IDENT  TokenType = "IDENT"  // scritches, x, y, ...
	NUMBER TokenType = "NUMBER" // 9, 3.14
	STRING TokenType = "STRING" // "mouse"

	// Operators
	ASSIGN    TokenType = "="
	PAW_PAW   TokenType = "@" // addition
	SCRATCH   TokenType = "%" // subtraction, unary negation
	PURR_PURR TokenType = "~" // multiplication
	FEED      TokenType = "^" // division
	BANG      TokenType = "!" // logical not

	// Comparison mnemonics (keyword-shaped, matched by maximal munch)
	PSPSPS         TokenType = "PSPSPS"         // equal: cats come when called
	HISSS          TokenType = "HISSS"          // not equal: cats hiss when different
	TAIL_UP        TokenType = "TAIL_UP"        // greater than
	TAIL_UP_UP     TokenType = "TAIL_UP_UP"     // greater or equal
	TAIL_DOWN      TokenType = "TAIL_DOWN"      // less than
	TAIL_DOWN_DOWN TokenType = "TAIL_DOWN_DOWN" // less or equal

	// Delimiters
	COMMA     TokenType = ","
	SEMICOLON TokenType = ";"

	LPAREN TokenType = "("
	RPAREN TokenType = ")"
	LBRACE TokenType = "{"
	RBRACE TokenType = "}"

	// Keywords
	MEOW  TokenType = "MEOW"  // variable declaration / rebinding
	PURR  TokenType = "PURR"  // print
	GRR   TokenType = "GRR"   // if
	GRRR  TokenType = "GRRR"  // else
	MRRR  TokenType = "MRRR"  // while
	PRRR  TokenType = "PRRR"  // function declaration
	MEW   TokenType = "MEW"   // return
	HISS  TokenType = "HISS"  // reserved
	AND   TokenType = "AND"
	OR    TokenType = "OR"
	TRUE  TokenType = "TRUE"
	FALSE TokenType = "FALSE"
	NIL   TokenType = "NIL"
)

var keywords = map[string]TokenType{
	"meow":  MEOW,
	"purr":  PURR,
	"grr":   GRR,
	"grrr":  GRRR,
	"mrrr":  MRRR,
	"prrr":  PRRR,
	"mew":   MEW,
	"hiss":  HISS,
	"and":   AND,
	"or":    OR,
	"true":  TRUE,
	"false": FALSE,
	"nil":   NIL,

	// Comparison mnemonics share the identifier shape, so they go through the
	// same lookup. The scanner consumes the longest identifier run first, so
	// TAIL_UP_UP can never be split into TAIL_UP plus a stray _UP.
	"PSPSPS":         PSPSPS,
	"HISSS":          HISSS,
	"TAIL_UP":        TAIL_UP,
	"TAIL_UP_UP":     TAIL_UP_UP,
	"TAIL_DOWN":      TAIL_DOWN,
	"TAIL_DOWN_DOWN": TAIL_DOWN_DOWN,
}

// LookupIdent checks if the identifier is a keyword or comparison mnemonic
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}
