package token

import "fmt"

type TokenType string

const (
	ILLEGAL TokenType = "ILLEGAL"
	EOF     TokenType = "EOF"

	NUMBER TokenType = "NUMBER"
	IDENT  TokenType = "IDENT"

	PLUS     TokenType = "+"
	MINUS    TokenType = "-"
	ASTERISK TokenType = "*"
	SLASH    TokenType = "/"
	POWER    TokenType = "**"

	LPAREN TokenType = "("
	RPAREN TokenType = ")"
)

// Token is a single lexeme with its source position. Column is 1-based and
// refers to the first character of the lexeme. Literal holds the parsed
// value for NUMBER tokens (float64) and the name for IDENT tokens (string).
type Token struct {
	Type    TokenType
	Lexeme  string
	Literal interface{}
	Column  int
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%d", t.Type, t.Lexeme, t.Column)
}
