package toml

import "fmt"

// TokenType represents the type of a lexical token
type TokenType int

const (
	TokenError TokenType = iota
	TokenEOF
	TokenNewline

	TokenIdent   // bare key
	TokenString  // "basic" or 'literal'
	TokenInteger // 42, -7, 0x1F
	TokenFloat   // 0.5, 1e3
	TokenBool    // true/false

	TokenEqual    // =
	TokenDot      // .
	TokenComma    // ,
	TokenLBracket // [
	TokenRBracket // ]
)

// Token is a lexeme with its source position
type Token struct {
	Type    TokenType
	Literal string
	Line    int
}

func (t Token) String() string {
	switch t.Type {
	case TokenEOF:
		return "EOF"
	case TokenNewline:
		return "newline"
	case TokenError:
		return fmt.Sprintf("error(%s)", t.Literal)
	}
	return fmt.Sprintf("%q", t.Literal)
}
