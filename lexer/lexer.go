package lexer

import (
	"io"
	"strconv"
	"strings"
	"text/scanner"
)

type lexState func(*Lexer) lexState

const byteOrderMark = "\uFEFF"

// New initializes a Lexer over the given source.
func New(src string) *Lexer {
	s := &scanner.Scanner{}
	s.Init(strings.NewReader(src))

	s.Mode = 0
	s.Whitespace = 0
	s.Error = func(*scanner.Scanner, string) {
		// invalid encodings surface as unexpected characters
	}

	lx := &Lexer{
		in:    s,
		src:   src,
		state: lexDefaultState,
	}

	// The scanner drops a leading BOM without reporting it, the cursor has to
	// start past it so spans stay aligned with src.
	if strings.HasPrefix(src, byteOrderMark) {
		lx.start = len(byteOrderMark)
		lx.offset = len(byteOrderMark)
	}

	return lx
}

// Lexer represents a lexical analyzer. Tokens are pulled one at a time with
// Next; a Lexer must not be shared between goroutines.
type Lexer struct {
	in  *scanner.Scanner
	src string

	state lexState

	tok *Token
	err *Error

	start  int
	offset int
}

// Next returns the next token in the source. A lexical error is returned as an
// *Error and does not stop the lexer, the following call resumes right after
// the offending text. Once the input is exhausted Next returns io.EOF, and so
// does every later call.
func (lx *Lexer) Next() (*Token, error) {
	for lx.state != nil {
		lx.state = lx.state(lx)

		if lx.err != nil {
			err := lx.err
			lx.err = nil
			return nil, err
		}
		if lx.tok != nil {
			tok := lx.tok
			lx.tok = nil
			return tok, nil
		}
	}
	return nil, io.EOF
}

// Source returns the text being scanned.
func (lx *Lexer) Source() string {
	return lx.src
}

// Offset returns the byte offset of the scan cursor.
func (lx *Lexer) Offset() int {
	return lx.offset
}

func (lx *Lexer) span() Span {
	return Span{Begin: lx.start, End: lx.offset}
}

func (lx *Lexer) lexeme() string {
	return lx.src[lx.start:lx.offset]
}

func (lx *Lexer) emit(tt TokenType) {
	lx.tok = NewToken(tt, lx.lexeme(), lx.span())
	lx.start = lx.offset
}

func (lx *Lexer) emitError(err *Error) {
	lx.err = err
	lx.start = lx.offset
}

func (lx *Lexer) peek() rune {
	return lx.in.Peek()
}

func (lx *Lexer) next() (rune, error) {
	r := lx.in.Next()
	if r == scanner.EOF {
		return rune(0), io.EOF
	}
	lx.offset = lx.in.Pos().Offset
	return r, nil
}

func lexDefaultState(lx *Lexer) lexState {
	for isWhitespace(lx.peek()) {
		if _, err := lx.next(); err != nil {
			return nil
		}
	}
	lx.start = lx.offset

	r, err := lx.next()
	if err != nil {
		return nil
	}

	switch {
	case isOpenList(r):
		return lexEmit(TokenOpenList)
	case isCloseList(r):
		return lexEmit(TokenCloseList)
	case isAritmeticSign(r):
		return lexEmit(TokenSymbol)
	case isDigit(r):
		return lexCollectStream(isDigit, lexInteger)
	case isWordStart(r):
		return lexCollectStream(isWordBody, lexEmit(TokenSymbol))
	}

	return lexUnexpectedCharacter(r)
}

func lexEmit(tt TokenType) lexState {
	return func(lx *Lexer) lexState {
		lx.emit(tt)
		return lexDefaultState
	}
}

func lexCollectStream(accept func(rune) bool, then lexState) lexState {
	return func(lx *Lexer) lexState {
		for accept(lx.peek()) {
			if _, err := lx.next(); err != nil {
				break
			}
		}
		return then
	}
}

func lexInteger(lx *Lexer) lexState {
	text := lx.lexeme()

	i64, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		lx.emitError(newIntegerParseError(text, lx.span()))
		return lexDefaultState
	}

	lx.tok = NewIntegerToken(i64, text, lx.span())
	lx.start = lx.offset
	return lexDefaultState
}

func lexUnexpectedCharacter(r rune) lexState {
	return func(lx *Lexer) lexState {
		lx.emitError(newUnexpectedCharacter(r, lx.lexeme(), lx.span()))
		return lexDefaultState
	}
}

// Tokenize takes a source and returns all the tokens within it, or the first
// lexical error found.
func Tokenize(src string) ([]*Token, error) {
	tokens := []*Token{}

	lx := New(src)
	for {
		tok, err := lx.Next()
		if err == io.EOF {
			return tokens, nil
		}
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
}
