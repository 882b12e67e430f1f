package lexer

import (
	"errors"
	"fmt"
)

// Lexical error kinds, use errors.Is to match them.
var (
	ErrUnexpectedCharacter = errors.New("unexpected character")
	ErrIntegerParse        = errors.New("invalid integer literal")
)

// Error is a lexical error located in the source.
type Error struct {
	kind error

	// Char is the offending character of an unexpected character error.
	Char rune
	// Lexeme is the offending source text.
	Lexeme string

	Span
}

func newUnexpectedCharacter(r rune, text string, span Span) *Error {
	return &Error{kind: ErrUnexpectedCharacter, Char: r, Lexeme: text, Span: span}
}

func newIntegerParseError(text string, span Span) *Error {
	return &Error{kind: ErrIntegerParse, Lexeme: text, Span: span}
}

func (e *Error) Error() string {
	switch e.kind {
	case ErrUnexpectedCharacter:
		return fmt.Sprintf("%v: '%c'", e.kind, e.Char)
	case ErrIntegerParse:
		return fmt.Sprintf("%v: '%s'", e.kind, e.Lexeme)
	}
	return fmt.Sprintf("lexical error at %v", e.Span)
}

// Unwrap returns the kind of the error
func (e *Error) Unwrap() error {
	return e.kind
}
