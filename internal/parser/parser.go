package parser

import (
	"fmt"

	"github.com/funvibe/funplot/internal/ast"
	"github.com/funvibe/funplot/internal/diagnostics"
	"github.com/funvibe/funplot/internal/lexer"
	"github.com/funvibe/funplot/internal/token"
)

// Operator precedence levels, lowest first.
const (
	LOWEST  = iota + 1
	SUM     // + -
	PRODUCT // * /
	PREFIX  // -x or +x
	POWER   // ** (right-associative, binds tighter than unary minus)
)

// MaxRecursionDepth bounds parseExpression nesting so pathological input
// like a kilobyte of open parens fails with a diagnostic instead of
// exhausting the stack.
const MaxRecursionDepth = 200

var precedences = map[token.TokenType]int{
	token.PLUS:     SUM,
	token.MINUS:    SUM,
	token.ASTERISK: PRODUCT,
	token.SLASH:    PRODUCT,
	token.POWER:    POWER,
}

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

type Parser struct {
	l *lexer.Lexer

	curToken  token.Token
	peekToken token.Token

	errors []*diagnostics.Error
	depth  int

	prefixParseFns map[token.TokenType]prefixParseFn
	infixParseFns  map[token.TokenType]infixParseFn
}

func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}

	p.prefixParseFns = map[token.TokenType]prefixParseFn{
		token.NUMBER: p.parseNumberLiteral,
		token.IDENT:  p.parseIdentifier,
		token.MINUS:  p.parsePrefixExpression,
		token.PLUS:   p.parsePrefixExpression,
		token.LPAREN: p.parseGroupedExpression,
	}
	p.infixParseFns = map[token.TokenType]infixParseFn{
		token.PLUS:     p.parseInfixExpression,
		token.MINUS:    p.parseInfixExpression,
		token.ASTERISK: p.parseInfixExpression,
		token.SLASH:    p.parseInfixExpression,
		token.POWER:    p.parseInfixExpression,
	}

	// Read two tokens, so curToken and peekToken are both set.
	p.nextToken()
	p.nextToken()
	return p
}

// Parse consumes the whole input and returns the expression tree. Any
// leftover token after a complete expression is an error, so input like
// "2x" cannot silently parse as "2". An illegal character in the leftover
// keeps its lexer code so callers can tell the two failures apart.
func (p *Parser) Parse() (ast.Expression, []*diagnostics.Error) {
	expr := p.parseExpression(LOWEST)
	if expr != nil && !p.curTokenIs(token.EOF) && !p.peekTokenIs(token.EOF) {
		code := diagnostics.ErrP003
		msg := fmt.Sprintf("unexpected %q after expression", p.peekToken.Lexeme)
		if p.peekTokenIs(token.ILLEGAL) {
			code = diagnostics.ErrL001
			msg = fmt.Sprintf("illegal character %q", p.peekToken.Lexeme)
		}
		p.errors = append(p.errors, diagnostics.NewError(code, p.peekToken, msg))
	}
	return expr, p.errors
}

func (p *Parser) Errors() []*diagnostics.Error {
	return p.errors
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) curTokenIs(t token.TokenType) bool  { return p.curToken.Type == t }
func (p *Parser) peekTokenIs(t token.TokenType) bool { return p.peekToken.Type == t }

func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peekToken.Type]; ok {
		return prec
	}
	return LOWEST
}

func (p *Parser) parseExpression(precedence int) ast.Expression {
	p.depth++
	defer func() { p.depth-- }()

	if p.depth > MaxRecursionDepth {
		p.errors = append(p.errors, diagnostics.NewError(
			diagnostics.ErrP006,
			p.curToken,
			"expression too complex: recursion depth limit exceeded",
		))
		return nil
	}

	prefix := p.prefixParseFns[p.curToken.Type]
	if prefix == nil {
		p.noPrefixParseFnError(p.curToken)
		return nil
	}
	leftExp := prefix()
	if leftExp == nil {
		return nil
	}

	for precedence < p.peekPrecedence() {
		infix := p.infixParseFns[p.peekToken.Type]
		if infix == nil {
			return leftExp
		}
		p.nextToken()
		leftExp = infix(leftExp)
		if leftExp == nil {
			return nil
		}
	}

	return leftExp
}

func (p *Parser) parseNumberLiteral() ast.Expression {
	value, ok := p.curToken.Literal.(float64)
	if !ok {
		p.errors = append(p.errors, diagnostics.NewError(
			diagnostics.ErrP002,
			p.curToken,
			fmt.Sprintf("could not parse %q as a number", p.curToken.Lexeme),
		))
		return nil
	}
	return &ast.NumberLiteral{Token: p.curToken, Value: value}
}

func (p *Parser) parseIdentifier() ast.Expression {
	return &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}
}

func (p *Parser) parsePrefixExpression() ast.Expression {
	expression := &ast.PrefixExpression{
		Token:    p.curToken,
		Operator: p.curToken.Lexeme,
	}
	p.nextToken()
	expression.Right = p.parseExpression(PREFIX)
	if expression.Right == nil {
		return nil
	}
	return expression
}

func (p *Parser) parseInfixExpression(left ast.Expression) ast.Expression {
	expression := &ast.InfixExpression{
		Token:    p.curToken,
		Left:     left,
		Operator: p.curToken.Lexeme,
	}

	precedence := precedences[p.curToken.Type]
	// ** is right-associative: 2**3**2 is 2**(3**2).
	if p.curTokenIs(token.POWER) {
		precedence--
	}

	p.nextToken()
	expression.Right = p.parseExpression(precedence)
	if expression.Right == nil {
		return nil
	}
	return expression
}

func (p *Parser) parseGroupedExpression() ast.Expression {
	p.nextToken()

	exp := p.parseExpression(LOWEST)
	if exp == nil {
		return nil
	}

	if !p.peekTokenIs(token.RPAREN) {
		p.errors = append(p.errors, diagnostics.NewError(
			diagnostics.ErrP002,
			p.peekToken,
			fmt.Sprintf("expected ), got %q", p.peekToken.Lexeme),
		))
		return nil
	}
	p.nextToken()
	return exp
}

func (p *Parser) noPrefixParseFnError(tok token.Token) {
	code := diagnostics.ErrP001
	msg := fmt.Sprintf("unexpected token %q", tok.Lexeme)
	if tok.Type == token.EOF {
		msg = "unexpected end of expression"
	} else if tok.Type == token.ILLEGAL {
		code = diagnostics.ErrL001
		msg = fmt.Sprintf("illegal character %q", tok.Lexeme)
	}
	p.errors = append(p.errors, diagnostics.NewError(code, tok, msg))
}
