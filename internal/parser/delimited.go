package parser

import (
	"github.com/meow-lang/meow-lang/internal/lexer"
)

type delimitedConfig struct {
	Closing   lexer.TokenType
	Separator lexer.TokenType

	MissingElementMsg   string
	MissingSeparatorMsg string
}

// parseDelimited parses a separator-delimited list. It is entered with curTok
// on the first element and returns with curTok on the closing token.
func parseDelimited[T any](p *Parser, cfg delimitedConfig, parseItem func(idx int) (T, bool)) ([]T, bool) {
	var items []T

	if cfg.Separator == "" {
		cfg.Separator = lexer.COMMA
	}

	for {
		item, ok := parseItem(len(items))
		if !ok {
			return items, false
		}
		items = append(items, item)

		switch p.peekTok.Type {
		case cfg.Separator:
			p.nextToken() // move to separator
			p.nextToken() // move to next element

			if p.curTok.Type == cfg.Closing {
				msg := cfg.MissingElementMsg
				if msg == "" {
					msg = "expected element"
				}
				p.reportUnexpectedToken(msg, p.curTok)
				return items, false
			}
		case cfg.Closing:
			p.nextToken()
			return items, true
		default:
			msg := cfg.MissingSeparatorMsg
			if msg == "" {
				msg = "expected '" + string(cfg.Separator) + "' or '" + string(cfg.Closing) + "'"
			}
			p.reportUnexpectedToken(msg, p.peekTok)
			return items, false
		}
	}
}
