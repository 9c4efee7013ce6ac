package toml

import (
	"fmt"
	"strings"
)

// Lexer splits config text into tokens, comments are dropped here
type Lexer struct {
	input []byte
	pos   int
	line  int
}

func NewLexer(input []byte) *Lexer {
	return &Lexer{input: input, line: 1}
}

// NextToken returns the next token, TokenEOF repeatedly once input is exhausted
func (l *Lexer) NextToken() Token {
	l.skipBlank()
	if l.pos >= len(l.input) {
		return l.token(TokenEOF, "")
	}

	ch := l.input[l.pos]
	switch ch {
	case '\n':
		tok := l.token(TokenNewline, "\n")
		l.pos++
		l.line++
		return tok
	case '#':
		for l.pos < len(l.input) && l.input[l.pos] != '\n' {
			l.pos++
		}
		return l.NextToken()
	case '=':
		l.pos++
		return l.token(TokenEqual, "=")
	case '.':
		l.pos++
		return l.token(TokenDot, ".")
	case ',':
		l.pos++
		return l.token(TokenComma, ",")
	case '[':
		l.pos++
		return l.token(TokenLBracket, "[")
	case ']':
		l.pos++
		return l.token(TokenRBracket, "]")
	case '"':
		return l.readBasicString()
	case '\'':
		return l.readLiteralString()
	}

	if isBareChar(ch) || ch == '+' {
		return l.readBare()
	}

	l.pos++
	return l.token(TokenError, fmt.Sprintf("unexpected character %q", ch))
}

func (l *Lexer) token(typ TokenType, lit string) Token {
	return Token{Type: typ, Literal: lit, Line: l.line}
}

func (l *Lexer) skipBlank() {
	for l.pos < len(l.input) {
		switch l.input[l.pos] {
		case ' ', '\t', '\r':
			l.pos++
		default:
			return
		}
	}
}

func (l *Lexer) readBasicString() Token {
	l.pos++ // opening quote
	var sb strings.Builder
	for l.pos < len(l.input) {
		ch := l.input[l.pos]
		switch ch {
		case '\n':
			return l.token(TokenError, "unterminated string")
		case '"':
			l.pos++
			return l.token(TokenString, sb.String())
		case '\\':
			if l.pos+1 >= len(l.input) {
				return l.token(TokenError, "unterminated escape")
			}
			l.pos++
			switch esc := l.input[l.pos]; esc {
			case '"', '\\':
				sb.WriteByte(esc)
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			case 'r':
				sb.WriteByte('\r')
			default:
				return l.token(TokenError, fmt.Sprintf("unsupported escape \\%c", esc))
			}
		default:
			sb.WriteByte(ch)
		}
		l.pos++
	}
	return l.token(TokenError, "unterminated string")
}

func (l *Lexer) readLiteralString() Token {
	l.pos++
	start := l.pos
	for l.pos < len(l.input) {
		switch l.input[l.pos] {
		case '\n':
			return l.token(TokenError, "unterminated string")
		case '\'':
			lit := string(l.input[start:l.pos])
			l.pos++
			return l.token(TokenString, lit)
		}
		l.pos++
	}
	return l.token(TokenError, "unterminated string")
}

// readBare consumes a bare key or a number/bool value
// Dots end a bare key but belong to a number, so the classification is decided up front
func (l *Lexer) readBare() Token {
	start := l.pos
	first := l.input[l.pos]
	numeric := isDigit(first) || first == '+' || first == '-'

	for l.pos < len(l.input) {
		ch := l.input[l.pos]
		if isBareChar(ch) || ch == '+' || (numeric && ch == '.') {
			l.pos++
			continue
		}
		break
	}
	lit := string(l.input[start:l.pos])

	if lit == "true" || lit == "false" {
		return l.token(TokenBool, lit)
	}
	if numeric && looksNumeric(lit) {
		if isFloatLiteral(lit) {
			return l.token(TokenFloat, lit)
		}
		return l.token(TokenInteger, lit)
	}
	return l.token(TokenIdent, lit)
}

func looksNumeric(lit string) bool {
	s := strings.TrimLeft(lit, "+-")
	if s == "" || !isDigit(s[0]) {
		return false
	}
	if len(s) > 1 && s[0] == '0' && strings.ContainsRune("xXoObB", rune(s[1])) {
		return true
	}
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if isDigit(ch) || ch == '_' || ch == '.' || ch == 'e' || ch == 'E' || ch == '+' || ch == '-' {
			continue
		}
		return false
	}
	return true
}

func isFloatLiteral(lit string) bool {
	s := strings.TrimLeft(lit, "+-")
	if len(s) > 1 && s[0] == '0' && strings.ContainsRune("xXoObB", rune(s[1])) {
		return false
	}
	return strings.ContainsAny(s, ".eE")
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isBareChar(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || isDigit(ch) || ch == '_' || ch == '-'
}
