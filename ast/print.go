package ast

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Print writes a human-readable, indented representation of an object tree
func Print(w io.Writer, o *Object) {
	printLevel(w, o, 0)
}

func printLevel(w io.Writer, o *Object, level int) {
	indent := strings.Repeat("    ", level)
	if o == nil {
		fmt.Fprintf(w, "%s:nil\n", indent)
		return
	}
	fmt.Fprintf(w, "%s(%s) [%v]", indent, o.Type(), o.Span())

	switch o.Type() {
	case ObjectTypeList:
		fmt.Fprintf(w, "\n")

	case ObjectTypeLambda:
		fmt.Fprintf(w, ": (%s)\n", strings.Join(o.Params(), " "))

	default:
		fmt.Fprintf(w, ": %s\n", Encode(o))
		return
	}

	list := o.List()
	for i := range list {
		printLevel(w, list[i], level+1)
	}
}

// Encode transforms an object into its canonical text representation: atoms
// as written, and children separated by a single space.
func Encode(o *Object) []byte {
	var buf bytes.Buffer
	encodeObject(&buf, o)
	return buf.Bytes()
}

func encodeObject(buf *bytes.Buffer, o *Object) {
	if o == nil {
		buf.WriteString("Void")
		return
	}

	switch o.Type() {
	case ObjectTypeVoid:
		buf.WriteString("Void")

	case ObjectTypeBool:
		buf.WriteString(strconv.FormatBool(o.Bool()))

	case ObjectTypeInt:
		buf.WriteString(strconv.FormatInt(o.Int(), 10))

	case ObjectTypeSymbol:
		buf.WriteString(o.Symbol())

	case ObjectTypeList:
		buf.WriteByte('(')
		for i, child := range o.List() {
			if i > 0 {
				buf.WriteByte(' ')
			}
			encodeObject(buf, child)
		}
		buf.WriteByte(')')

	case ObjectTypeLambda:
		buf.WriteString("(lambda (")
		buf.WriteString(strings.Join(o.Params(), " "))
		buf.WriteByte(')')
		for _, child := range o.List() {
			buf.WriteByte(' ')
			encodeObject(buf, child)
		}
		buf.WriteByte(')')

	default:
		panic("unknown object type")
	}
}
