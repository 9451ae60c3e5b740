package lexer

import (
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/funvibe/funplot/internal/token"
)

type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           rune // current char under examination
	column       int  // current column number
}

func New(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
		l.position = l.readPosition
		l.readPosition++
		l.column++
		return
	}
	r, w := utf8.DecodeRuneInString(l.input[l.readPosition:])
	l.ch = r
	l.position = l.readPosition
	l.readPosition += w
	l.column++
}

func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPosition:])
	return r
}

func (l *Lexer) NextToken() token.Token {
	var tok token.Token

	l.skipWhitespace()

	switch l.ch {
	case '+':
		tok = newToken(token.PLUS, l.ch, l.column)
	case '-':
		tok = newToken(token.MINUS, l.ch, l.column)
	case '*':
		if l.peekChar() == '*' {
			col := l.column
			l.readChar()
			tok = token.Token{Type: token.POWER, Lexeme: "**", Literal: "**", Column: col}
		} else {
			tok = newToken(token.ASTERISK, l.ch, l.column)
		}
	case '/':
		tok = newToken(token.SLASH, l.ch, l.column)
	case '(':
		tok = newToken(token.LPAREN, l.ch, l.column)
	case ')':
		tok = newToken(token.RPAREN, l.ch, l.column)
	case 0:
		tok = token.Token{Type: token.EOF, Lexeme: "", Literal: "", Column: l.column}
	default:
		if isDigit(l.ch) || (l.ch == '.' && isDigit(l.peekChar())) {
			return l.readNumber()
		}
		if isLetter(l.ch) {
			return l.readIdentifier()
		}
		tok = newToken(token.ILLEGAL, l.ch, l.column)
	}

	l.readChar()
	return tok
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

func (l *Lexer) readNumber() token.Token {
	startCol := l.column
	position := l.position

	for isDigit(l.ch) {
		l.readChar()
	}

	// Fractional part, including the leading-dot form ".5". A bare trailing
	// dot ("12.") is left unconsumed and surfaces as ILLEGAL at parse time.
	if l.ch == '.' && isDigit(l.peekChar()) {
		l.readChar() // .
		for isDigit(l.ch) {
			l.readChar()
		}
	}

	lexeme := l.input[position:l.position]
	val, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		return token.Token{Type: token.ILLEGAL, Lexeme: lexeme, Literal: "invalid number", Column: startCol}
	}
	return token.Token{Type: token.NUMBER, Lexeme: lexeme, Literal: val, Column: startCol}
}

func (l *Lexer) readIdentifier() token.Token {
	startCol := l.column
	position := l.position
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	lexeme := l.input[position:l.position]
	return token.Token{Type: token.IDENT, Lexeme: lexeme, Literal: lexeme, Column: startCol}
}

func newToken(tokenType token.TokenType, ch rune, column int) token.Token {
	return token.Token{Type: tokenType, Lexeme: string(ch), Literal: string(ch), Column: column}
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

func isLetter(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch)
}
