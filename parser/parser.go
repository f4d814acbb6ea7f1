// Package parser implements the recursive-descent reader that turns a
// token stream into Value trees, grounded on the original interpreter's
// single-lookahead parseHelper.
package parser

import (
	"fmt"

	"github.com/rivet-scheme/rivet/token"
	"github.com/rivet-scheme/rivet/value"
)

// Parser wraps a Tokenizer with one token of lookahead.
type Parser struct {
	tok     *token.Tokenizer
	lookPos token.Token
	haveLA  bool
}

func New(src string) *Parser {
	return &Parser{tok: token.New(src)}
}

func (p *Parser) peek() (token.Token, error) {
	if !p.haveLA {
		t, err := p.tok.Next()
		if err != nil {
			return token.Token{}, err
		}
		p.lookPos = t
		p.haveLA = true
	}
	return p.lookPos, nil
}

func (p *Parser) poll() (token.Token, error) {
	t, err := p.peek()
	if err != nil {
		return token.Token{}, err
	}
	p.haveLA = false
	return t, nil
}

// ReadExpression reads one full expression. At end of input it returns
// value.Eof(), matching the original reader's EOF sentinel rather than an
// error, so callers can loop until EOF the way loadString does.
func (p *Parser) ReadExpression() (value.Value, error) {
	return p.parseOne()
}

func (p *Parser) lookaheadIs(want token.Type) (bool, error) {
	t, err := p.peek()
	if err != nil {
		return false, err
	}
	return t.Type == want, nil
}

func (p *Parser) parseOne() (value.Value, error) {
	first, err := p.poll()
	if err != nil {
		return value.Value{}, err
	}

	switch first.Type {
	case token.FALSE:
		return value.Boolean(false), nil
	case token.TRUE:
		return value.Boolean(true), nil
	case token.DOT, token.IDENTIFIER:
		return value.SymbolOf(first.Text), nil
	case token.INTEGER:
		n, ok := numericParseLiteral(first.Text)
		if !ok {
			return value.Value{}, fmt.Errorf("malformed number literal %q", first.Text)
		}
		return n, nil
	case token.LPAREN:
		return p.parseList()
	case token.LVECTOR:
		return p.parseVector()
	case token.RPAREN:
		return value.Value{}, fmt.Errorf("unexpected close bracket")
	case token.STRING:
		// The reader strips only the surrounding quotes. A backslash-quote
		// pair does not end the string token, but it stays in the content
		// as written; no escape sequence is processed.
		text := first.Text
		return value.NewString(text[1 : len(text)-1]).MarkImmutable(), nil
	case token.QUOTE:
		return p.wrapQuoted(value.QuoteSym)
	case token.QUASIQUOTE:
		return p.wrapQuoted(value.QuasiquoteSym)
	case token.UNQUOTE:
		return p.wrapQuoted(value.UnquoteSym)
	case token.UNQUOTESPLICING:
		return p.wrapQuoted(value.UnquoteSplicingSym)
	case token.CHARSPACE:
		return value.Character(' '), nil
	case token.CHARNEWLINE:
		return value.Character('\n'), nil
	case token.CHARRAW:
		r := []rune(first.Text)
		return value.Character(r[len(r)-1]), nil
	case token.EOF:
		return value.Eof(), nil
	case token.WHITESPACE, token.COMMENT:
		return value.Value{}, fmt.Errorf("unexpected token: %v", first.Type)
	default:
		return value.Value{}, fmt.Errorf("unknown token: %v", first.Type)
	}
}

func (p *Parser) wrapQuoted(sym *value.Symbol) (value.Value, error) {
	inner, err := p.parseOne()
	if err != nil {
		return value.Value{}, err
	}
	return value.ListImmutable(value.Sym(sym), inner), nil
}

// parseList collects every element (and, for a dotted list, the final
// tail) before building the cons chain, since a freshly read literal
// must come out fully immutable and FromSliceTailImmutable builds
// bottom-up: each cell is frozen at the moment it is allocated, so no
// cell is ever linked into place after it was already marked immutable.
func (p *Parser) parseList() (value.Value, error) {
	var items []value.Value
	tail := value.Null

	for {
		la, err := p.peek()
		if err != nil {
			return value.Value{}, err
		}
		if la.Type == token.RPAREN {
			break
		}
		if la.Type == token.EOF {
			return value.Value{}, fmt.Errorf("unexpected EOF inside list")
		}

		item, err := p.parseOne()
		if err != nil {
			return value.Value{}, err
		}
		items = append(items, item)

		isDot, err := p.lookaheadIs(token.DOT)
		if err != nil {
			return value.Value{}, err
		}
		if isDot {
			if _, err := p.poll(); err != nil { // consume DOT
				return value.Value{}, err
			}
			last, err := p.parseOne()
			if err != nil {
				return value.Value{}, err
			}
			tail = last

			isRParen, err := p.lookaheadIs(token.RPAREN)
			if err != nil {
				return value.Value{}, err
			}
			if !isRParen {
				return value.Value{}, fmt.Errorf("malformed dotted list")
			}
			break
		}
	}

	if _, err := p.poll(); err != nil { // consume RPAREN
		return value.Value{}, err
	}
	return value.FromSliceTailImmutable(items, tail), nil
}

func (p *Parser) parseVector() (value.Value, error) {
	var items []value.Value
	for {
		la, err := p.peek()
		if err != nil {
			return value.Value{}, err
		}
		if la.Type == token.RPAREN {
			break
		}
		if la.Type == token.EOF {
			return value.Value{}, fmt.Errorf("unexpected EOF inside vector")
		}
		item, err := p.parseOne()
		if err != nil {
			return value.Value{}, err
		}
		items = append(items, item)
	}
	if _, err := p.poll(); err != nil {
		return value.Value{}, err
	}
	return value.NewVector(items).MarkImmutable(), nil
}
