// Package diagnostics carries positioned error values produced by the lexer,
// parser and evaluator. These never reach the UI directly: the validate
// package folds them into its field-scoped taxonomy.
package diagnostics

import (
	"fmt"

	"github.com/funvibe/funplot/internal/token"
)

// Stable error codes, grouped by producing stage.
const (
	ErrL001 = "L001" // illegal character
	ErrP001 = "P001" // no prefix parse rule for token
	ErrP002 = "P002" // unexpected token
	ErrP003 = "P003" // trailing input after expression
	ErrP006 = "P006" // recursion depth limit exceeded
	ErrE001 = "E001" // unknown identifier
	ErrE002 = "E002" // unknown operator
	ErrE003 = "E003" // division by zero
)

type Error struct {
	Code    string
	Column  int
	Lexeme  string
	Message string
}

func NewError(code string, tok token.Token, message string) *Error {
	return &Error{
		Code:    code,
		Column:  tok.Column,
		Lexeme:  tok.Lexeme,
		Message: message,
	}
}

func (e *Error) Error() string {
	if e.Column > 0 {
		return fmt.Sprintf("[%s] col %d: %s", e.Code, e.Column, e.Message)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}
