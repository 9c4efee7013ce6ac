package toml

import (
	"fmt"
	"strconv"
	"strings"
)

// Parser builds a map[string]any tree from config text
// Supported: [table] and [dotted.table] headers, dotted keys, strings, integers,
// floats, booleans and arrays of those values (arrays may span lines)
type Parser struct {
	lexer   *Lexer
	cur     Token
	peek    Token
	root    map[string]any
	current map[string]any
	defined map[string]bool // table paths declared by a header
}

func NewParser(input []byte) *Parser {
	p := &Parser{
		lexer:   NewLexer(input),
		root:    make(map[string]any),
		defined: make(map[string]bool),
	}
	p.current = p.root
	p.next()
	p.next()
	return p
}

// Parse is shorthand for NewParser(data).Parse()
func Parse(data []byte) (map[string]any, error) {
	return NewParser(data).Parse()
}

func (p *Parser) next() {
	p.cur = p.peek
	p.peek = p.lexer.NextToken()
}

func (p *Parser) Parse() (map[string]any, error) {
	for p.cur.Type != TokenEOF {
		switch p.cur.Type {
		case TokenNewline:
			p.next()
			continue
		case TokenLBracket:
			if err := p.parseTableHeader(); err != nil {
				return nil, err
			}
		case TokenIdent, TokenString, TokenInteger, TokenBool:
			if err := p.parseKeyValue(); err != nil {
				return nil, err
			}
		case TokenError:
			return nil, fmt.Errorf("line %d: %s", p.cur.Line, p.cur.Literal)
		default:
			return nil, fmt.Errorf("line %d: unexpected %s", p.cur.Line, p.cur)
		}

		if err := p.expectLineEnd(); err != nil {
			return nil, err
		}
	}
	return p.root, nil
}

func (p *Parser) expectLineEnd() error {
	switch p.cur.Type {
	case TokenNewline:
		p.next()
		return nil
	case TokenEOF:
		return nil
	}
	return fmt.Errorf("line %d: expected end of line, got %s", p.cur.Line, p.cur)
}

func (p *Parser) parseTableHeader() error {
	line := p.cur.Line
	p.next() // [
	if p.cur.Type == TokenLBracket {
		return fmt.Errorf("line %d: arrays of tables are not supported", line)
	}

	keys, err := p.parseKey()
	if err != nil {
		return err
	}
	if p.cur.Type != TokenRBracket {
		return fmt.Errorf("line %d: expected ']' after table name", line)
	}
	p.next()

	path := strings.Join(keys, ".")
	if p.defined[path] {
		return fmt.Errorf("line %d: table [%s] defined twice", line, path)
	}
	p.defined[path] = true

	table, err := descend(p.root, keys, line)
	if err != nil {
		return err
	}
	p.current = table
	return nil
}

func (p *Parser) parseKeyValue() error {
	line := p.cur.Line
	keys, err := p.parseKey()
	if err != nil {
		return err
	}
	if p.cur.Type != TokenEqual {
		return fmt.Errorf("line %d: expected '=' after key %q", line, strings.Join(keys, "."))
	}
	p.next()

	val, err := p.parseValue()
	if err != nil {
		return err
	}

	table, err := descend(p.current, keys[:len(keys)-1], line)
	if err != nil {
		return err
	}
	last := keys[len(keys)-1]
	if _, exists := table[last]; exists {
		return fmt.Errorf("line %d: duplicate key %q", line, strings.Join(keys, "."))
	}
	table[last] = val
	return nil
}

// parseKey reads a possibly dotted key, leaving cur on the token after it
func (p *Parser) parseKey() ([]string, error) {
	var keys []string
	for {
		switch p.cur.Type {
		case TokenIdent, TokenString, TokenInteger, TokenBool:
			keys = append(keys, p.cur.Literal)
		default:
			return nil, fmt.Errorf("line %d: expected key, got %s", p.cur.Line, p.cur)
		}
		p.next()
		if p.cur.Type != TokenDot {
			return keys, nil
		}
		p.next()
	}
}

func (p *Parser) parseValue() (any, error) {
	tok := p.cur
	switch tok.Type {
	case TokenString:
		p.next()
		return tok.Literal, nil
	case TokenBool:
		p.next()
		return tok.Literal == "true", nil
	case TokenInteger:
		p.next()
		v, err := strconv.ParseInt(strings.ReplaceAll(tok.Literal, "_", ""), 0, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid integer %q", tok.Line, tok.Literal)
		}
		return v, nil
	case TokenFloat:
		p.next()
		v, err := strconv.ParseFloat(strings.ReplaceAll(tok.Literal, "_", ""), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid float %q", tok.Line, tok.Literal)
		}
		return v, nil
	case TokenLBracket:
		return p.parseArray()
	case TokenError:
		return nil, fmt.Errorf("line %d: %s", tok.Line, tok.Literal)
	}
	return nil, fmt.Errorf("line %d: expected value, got %s", tok.Line, tok)
}

func (p *Parser) parseArray() ([]any, error) {
	line := p.cur.Line
	p.next() // [
	arr := make([]any, 0)
	for {
		p.skipNewlines()
		if p.cur.Type == TokenRBracket {
			p.next()
			return arr, nil
		}
		if p.cur.Type == TokenEOF {
			return nil, fmt.Errorf("line %d: unterminated array", line)
		}

		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)

		p.skipNewlines()
		switch p.cur.Type {
		case TokenComma:
			p.next()
		case TokenRBracket:
		case TokenEOF:
			return nil, fmt.Errorf("line %d: unterminated array", line)
		default:
			return nil, fmt.Errorf("line %d: expected ',' or ']' in array, got %s", p.cur.Line, p.cur)
		}
	}
}

func (p *Parser) skipNewlines() {
	for p.cur.Type == TokenNewline {
		p.next()
	}
}

// descend walks or creates nested tables along keys
func descend(table map[string]any, keys []string, line int) (map[string]any, error) {
	for _, k := range keys {
		existing, ok := table[k]
		if !ok {
			child := make(map[string]any)
			table[k] = child
			table = child
			continue
		}
		child, ok := existing.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("line %d: key %q is a value, not a table", line, k)
		}
		table = child
	}
	return table, nil
}
