package location

import (
	"fmt"
	"strings"
)

// Location represents a human-readable position in a source file. Line and
// Column are 1-based.
type Location struct {
	Path   string
	Line   int
	Column int
}

// Resolve maps a byte offset in source to a Location. The offset is clamped to
// [0, len(source)], so offsets past the end resolve to the position right after
// the last character.
func Resolve(path string, source string, offset int) Location {
	if offset < 0 {
		offset = 0
	}
	if offset > len(source) {
		offset = len(source)
	}

	// A newline belongs to the line it terminates.
	head := source[:offset]
	line := strings.Count(head, "\n") + 1

	column := offset + 1
	if i := strings.LastIndexByte(head, '\n'); i >= 0 {
		column = offset - i
	}

	return Location{
		Path:   path,
		Line:   line,
		Column: column,
	}
}

// String renders the location as path:line:column, a format most editors
// know how to jump to.
func (l Location) String() string {
	return fmt.Sprintf("%s:%d:%d", l.Path, l.Line, l.Column)
}
