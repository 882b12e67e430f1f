package lexer

import (
	"fmt"
)

// Span is a half-open [Begin, End) range of byte offsets into the source.
type Span struct {
	Begin int
	End   int
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	return s.End - s.Begin
}

// Text returns the portion of src covered by the span.
func (s Span) Text(src string) string {
	return src[s.Begin:s.End]
}

func (s Span) String() string {
	return fmt.Sprintf("%d-%d", s.Begin, s.End)
}

// Token represents a known sequence of characters (lexical unit). The lexeme
// is a substring of the source and shares its memory.
type Token struct {
	tt     TokenType
	lexeme string
	i64    int64

	Span
}

// NewToken creates a lexical unit
func NewToken(tt TokenType, lexeme string, span Span) *Token {
	return &Token{
		tt:     tt,
		lexeme: lexeme,
		Span:   span,
	}
}

// NewIntegerToken creates a lexical unit of type integer
func NewIntegerToken(v int64, lexeme string, span Span) *Token {
	tok := NewToken(TokenInteger, lexeme, span)
	tok.i64 = v
	return tok
}

// Type returns the type of the lexical unit
func (t Token) Type() TokenType {
	return t.tt
}

// Text returns the raw text of the lexical unit
func (t Token) Text() string {
	return t.lexeme
}

// Int returns the value of an integer token
func (t Token) Int() int64 {
	return t.i64
}

// Is returns true if the token matches the given type
func (t Token) Is(tt TokenType) bool {
	return t.tt == tt
}

func (t Token) String() string {
	return t.lexeme
}

// GoString is used by %#v, it includes the type and span of the token.
func (t Token) GoString() string {
	return fmt.Sprintf("(:%v %q [%v])", t.tt, t.lexeme, t.Span)
}
