package lisp

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xiam/lisp/lexer"
	"github.com/xiam/lisp/location"
	"github.com/xiam/lisp/parser"
)

// Diagnostic is a lexical or parse error resolved to a location, with a
// snippet of the surrounding source.
type Diagnostic struct {
	Location location.Location
	Span     lexer.Span
	Snippet  string

	err error
}

func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%v: %v\n\n%s", d.Location, d.err, d.Snippet)
}

// Unwrap returns the wrapped error
func (d *Diagnostic) Unwrap() error {
	return d.err
}

// WrapError turns a *parser.Error or *lexer.Error into a *Diagnostic that reads
//
//	path:2:4: unexpected token: ')'
//
//	   1 | (a b)
//	   2 | (c))
//	     |    ^
//
// Any other error is returned unchanged.
func WrapError(err error, path string, src string) error {
	var span lexer.Span

	var parseErr *parser.Error
	var lexErr *lexer.Error
	switch {
	case errors.As(err, &parseErr):
		span = parseErr.Span
	case errors.As(err, &lexErr):
		span = lexErr.Span
	default:
		return err
	}

	loc := location.Resolve(path, src, span.Begin)
	return &Diagnostic{
		Location: loc,
		Span:     span,
		Snippet:  snippet(src, loc, span.Len()),
		err:      err,
	}
}

// snippet shows the line at loc, the one before it and a caret marker under
// the first width bytes starting at loc.Column.
func snippet(src string, loc location.Location, width int) string {
	lines := strings.Split(src, "\n")
	line := loc.Line
	if line > len(lines) {
		line = len(lines)
	}
	lineTxt := strings.TrimSuffix(lines[line-1], "\r")

	col := loc.Column - 1
	if col > len(lineTxt) {
		col = len(lineTxt)
	}
	end := col + width
	if end > len(lineTxt) {
		end = len(lineTxt)
	}

	// keep tabs so the marker lines up with the text above it
	pad := []rune{}
	for _, r := range lineTxt[:col] {
		if r == '\t' {
			pad = append(pad, '\t')
		} else {
			pad = append(pad, ' ')
		}
	}
	marker := strings.Repeat("^", len([]rune(lineTxt[col:end])))
	if marker == "" {
		marker = "^"
	}

	var b strings.Builder
	if line > 1 {
		fmt.Fprintf(&b, "%4d | %s\n", line-1, strings.TrimSuffix(lines[line-2], "\r"))
	}
	fmt.Fprintf(&b, "%4d | %s\n", line, lineTxt)
	fmt.Fprintf(&b, "     | %s%s\n", string(pad), marker)
	return b.String()
}
