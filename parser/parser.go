package parser

import (
	"errors"
	"io"

	"github.com/xiam/lisp/ast"
	"github.com/xiam/lisp/lexer"
)

// Option configures a Parser
type Option func(*Parser)

// WithMaxDepth limits how deeply lists may nest, zero means no limit. Going
// over the limit fails with ErrMaxDepthExceeded.
func WithMaxDepth(n int) Option {
	return func(p *Parser) {
		p.maxDepth = n
	}
}

// Parser builds an AST out of the tokens pulled from a Lexer. The parser is
// the only consumer of its lexer.
type Parser struct {
	lx *lexer.Lexer

	maxDepth int
}

// New creates a parser that reads tokens from lx
func New(lx *lexer.Lexer, opts ...Option) *Parser {
	p := &Parser{lx: lx}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse reads every top-level form until the end of the input. A program with
// no forms yields ast.Void, a single form is returned as is, and two or more
// forms are wrapped in an outer list. Only lists are allowed at the top level.
//
// The first error aborts parsing, no partial tree is returned.
func (p *Parser) Parse() (*ast.Object, error) {
	forms := []*ast.Object{}

	for {
		tok, err := p.next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		if !tok.Is(lexer.TokenOpenList) {
			return nil, unexpectedToken(tok)
		}

		list, err := p.parseList(tok.Span)
		if err != nil {
			return nil, err
		}
		forms = append(forms, list)
	}

	switch len(forms) {
	case 0:
		return ast.Void, nil
	case 1:
		return forms[0], nil
	}

	root := ast.NewList(forms...)
	root.SetSpan(lexer.Span{
		Begin: forms[0].Span().Begin,
		End:   forms[len(forms)-1].Span().End,
	})
	return root, nil
}

// ParseList reads a single list whose opening parenthesis was already
// consumed, up to and including the matching closing parenthesis.
func (p *Parser) ParseList() (*ast.Object, error) {
	begin := p.lx.Offset() - 1
	if begin < 0 {
		begin = 0
	}
	return p.parseList(lexer.Span{Begin: begin, End: begin + 1})
}

func (p *Parser) next() (*lexer.Token, error) {
	tok, err := p.lx.Next()
	if err != nil {
		var lexErr *lexer.Error
		if errors.As(err, &lexErr) {
			return nil, lexicalError(lexErr)
		}
		return nil, err
	}
	return tok, nil
}

// parseList keeps the open lists on an explicit stack rather than recursing,
// the stack height is the current nesting depth.
func (p *Parser) parseList(open lexer.Span) (*ast.Object, error) {
	stack := []*ast.Object{
		ast.NewList().SetSpan(open),
	}

	for {
		tok, err := p.next()
		if err == io.EOF {
			return nil, unexpectedEOF(p.lx.Offset())
		}
		if err != nil {
			return nil, err
		}

		top := stack[len(stack)-1]

		switch tok.Type() {
		case lexer.TokenOpenList:
			if p.maxDepth > 0 && len(stack)+1 > p.maxDepth {
				return nil, maxDepthExceeded(tok)
			}
			stack = append(stack, ast.NewList().SetSpan(tok.Span))

		case lexer.TokenCloseList:
			top.SetSpan(lexer.Span{Begin: top.Span().Begin, End: tok.End})

			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				return top, nil
			}
			if err := stack[len(stack)-1].Push(top); err != nil {
				return nil, err
			}

		default:
			atom, err := ast.FromToken(tok)
			if err != nil {
				return nil, unexpectedToken(tok)
			}
			if err := top.Push(atom); err != nil {
				return nil, err
			}
		}
	}
}

// Parse parses the given source
func Parse(src string, opts ...Option) (*ast.Object, error) {
	return New(lexer.New(src), opts...).Parse()
}
