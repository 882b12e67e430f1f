package parser

import (
	"errors"
	"fmt"

	"github.com/xiam/lisp/lexer"
)

// Parse error kinds, use errors.Is to match them.
var (
	ErrUnexpectedEOF    = errors.New("unexpected end of file")
	ErrUnexpectedToken  = errors.New("unexpected token")
	ErrLexical          = errors.New("lexical error")
	ErrMaxDepthExceeded = errors.New("maximum nesting depth exceeded")
)

// Error is a parse error located in the source. A lexical error is wrapped
// untouched in Lexical, errors.As reaches it.
type Error struct {
	kind error

	Token   *lexer.Token
	Lexical *lexer.Error

	lexer.Span
}

func (e *Error) Error() string {
	switch e.kind {
	case ErrLexical:
		return fmt.Sprintf("%v: %v", e.kind, e.Lexical)
	case ErrUnexpectedToken:
		return fmt.Sprintf("%v: '%v'", e.kind, e.Token)
	}
	return e.kind.Error()
}

// Is reports whether target is the kind of the error
func (e *Error) Is(target error) bool {
	return target == e.kind
}

// Unwrap returns the lexical error behind the parse error, if any.
func (e *Error) Unwrap() error {
	if e.Lexical != nil {
		return e.Lexical
	}
	return nil
}

func unexpectedEOF(offset int) *Error {
	return &Error{kind: ErrUnexpectedEOF, Span: lexer.Span{Begin: offset, End: offset}}
}

func unexpectedToken(tok *lexer.Token) *Error {
	return &Error{kind: ErrUnexpectedToken, Token: tok, Span: tok.Span}
}

func lexicalError(err *lexer.Error) *Error {
	return &Error{kind: ErrLexical, Lexical: err, Span: err.Span}
}

func maxDepthExceeded(tok *lexer.Token) *Error {
	return &Error{kind: ErrMaxDepthExceeded, Token: tok, Span: tok.Span}
}
