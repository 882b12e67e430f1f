package lisp

import (
	"io"
	"os"

	"github.com/xiam/lisp/ast"
	"github.com/xiam/lisp/lexer"
	"github.com/xiam/lisp/location"
	"github.com/xiam/lisp/parser"
)

// Source is a program text together with the path used to report locations
// in it. The path is never opened by Source itself.
type Source struct {
	Path string
	Text string
}

// NewSource creates a Source
func NewSource(path string, text string) *Source {
	return &Source{Path: path, Text: text}
}

// ReadFile loads the file at path into a Source.
func ReadFile(path string) (*Source, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	logger.Printf("read %q (%d bytes)", path, len(buf))
	return NewSource(path, string(buf)), nil
}

// Parse builds the AST of the source. Errors are returned as produced by the
// parser, use WrapError to render them.
func (s *Source) Parse(opts ...parser.Option) (*ast.Object, error) {
	root, err := parser.New(lexer.New(s.Text), opts...).Parse()
	if err != nil {
		logger.Printf("parse %q: %v", s.Path, err)
		return nil, err
	}
	logger.Printf("parse %q: %v %v", s.Path, root.Type(), root.Span())
	return root, nil
}

// Tokenize returns all the tokens of the source, or the first lexical error.
func (s *Source) Tokenize() ([]*lexer.Token, error) {
	return lexer.Tokenize(s.Text)
}

// Locate resolves a byte offset into a line and column of the source.
func (s *Source) Locate(offset int) location.Location {
	return location.Resolve(s.Path, s.Text, offset)
}

// WrapError renders lexical and parse errors against the source, see
// WrapError.
func (s *Source) WrapError(err error) error {
	return WrapError(err, s.Path, s.Text)
}

// Reader parses a program from an io.Reader. The whole input is read before
// parsing starts.
type Reader struct {
	r    io.Reader
	path string
}

// NewReader creates a Reader, path is only used to report locations.
func NewReader(r io.Reader, path string) *Reader {
	return &Reader{r: r, path: path}
}

// Parse reads the input and builds its AST. Parse errors are wrapped with
// their location.
func (r *Reader) Parse(opts ...parser.Option) (*ast.Object, error) {
	buf, err := io.ReadAll(r.r)
	if err != nil {
		return nil, err
	}
	src := NewSource(r.path, string(buf))
	root, err := src.Parse(opts...)
	if err != nil {
		return nil, src.WrapError(err)
	}
	return root, nil
}

// Parse parses an in-memory program.
func Parse(in []byte, opts ...parser.Option) (*ast.Object, error) {
	return NewSource("<input>", string(in)).Parse(opts...)
}

// ParseFile reads and parses the file at path. Parse errors are wrapped with
// their location.
func ParseFile(path string, opts ...parser.Option) (*ast.Object, error) {
	src, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	root, err := src.Parse(opts...)
	if err != nil {
		return nil, src.WrapError(err)
	}
	return root, nil
}
