package ast

import (
	"errors"
	"fmt"

	"github.com/xiam/lisp/lexer"
)

var (
	errNotVector      = errors.New("objects of type value can't accept children")
	errNotConvertible = errors.New("token does not represent a value")
)

// Shared atoms. They are read-only, SetSpan hands out a copy instead of
// changing them.
var (
	Void  = &Object{t: ObjectTypeVoid}
	True  = &Object{t: ObjectTypeBool, v: true}
	False = &Object{t: ObjectTypeBool, v: false}
)

// Object is a node of the AST: an atom (void, bool, int or symbol) or a
// vector (list or lambda) of child objects. Objects form a strict tree; a
// parsed tree is not modified after it is returned.
type Object struct {
	t ObjectType
	v interface{}

	params []string
	span   lexer.Span
}

// NewBool returns the shared object for the given boolean.
func NewBool(b bool) *Object {
	if b {
		return True
	}
	return False
}

// NewInt creates an integer object
func NewInt(v int64) *Object {
	return &Object{t: ObjectTypeInt, v: v}
}

// NewSymbol creates a symbol object
func NewSymbol(v string) *Object {
	return &Object{t: ObjectTypeSymbol, v: v}
}

// NewList creates a list object holding the given children
func NewList(children ...*Object) *Object {
	return &Object{t: ObjectTypeList, v: append([]*Object{}, children...)}
}

// NewLambda creates a lambda object with the given parameter names and body
func NewLambda(params []string, body ...*Object) *Object {
	return &Object{
		t:      ObjectTypeLambda,
		v:      append([]*Object{}, body...),
		params: append([]string{}, params...),
	}
}

// FromToken creates an atom out of an integer or symbol token, the object
// spans the same source text as the token.
func FromToken(tok *lexer.Token) (*Object, error) {
	var o *Object
	switch tok.Type() {
	case lexer.TokenInteger:
		o = NewInt(tok.Int())
	case lexer.TokenSymbol:
		o = NewSymbol(tok.Text())
	default:
		return nil, fmt.Errorf("%w: %v", errNotConvertible, tok.Type())
	}
	o.span = tok.Span
	return o, nil
}

// Push appends a child to an object of type list or lambda.
func (o *Object) Push(child *Object) error {
	if !o.IsVector() {
		return errNotVector
	}
	o.v = append(o.v.([]*Object), child)
	return nil
}

// SetSpan sets the source range the object was built from and returns the
// object. Called on a shared atom it returns a copy carrying the span.
func (o *Object) SetSpan(span lexer.Span) *Object {
	if o.isShared() {
		c := *o
		c.span = span
		return &c
	}
	o.span = span
	return o
}

func (o *Object) isShared() bool {
	return o == Void || o == True || o == False
}

// Span returns the source range the object was built from. Objects that were
// not produced by the parser have an empty span.
func (o *Object) Span() lexer.Span {
	return o.span
}

// Type returns the type of the object
func (o *Object) Type() ObjectType {
	return o.t
}

// Is returns true if the object is of the given type
func (o *Object) Is(t ObjectType) bool {
	return o.t == t
}

// IsValue returns true if the object is an atom
func (o *Object) IsValue() bool {
	return o.t&objectTypeValue > 0
}

// IsVector returns true if the object holds children
func (o *Object) IsVector() bool {
	return o.t&objectTypeVector > 0
}

// Bool returns the value of a bool object
func (o *Object) Bool() bool {
	return o.v.(bool)
}

// Int returns the value of an int object
func (o *Object) Int() int64 {
	return o.v.(int64)
}

// Symbol returns the name of a symbol object
func (o *Object) Symbol() string {
	return o.v.(string)
}

// List returns the children of a list, or the body of a lambda
func (o *Object) List() []*Object {
	return o.v.([]*Object)
}

// Params returns the parameter names of a lambda
func (o *Object) Params() []string {
	return o.params
}

// Len returns the number of children of a vector, zero for atoms.
func (o *Object) Len() int {
	if !o.IsVector() {
		return 0
	}
	return len(o.List())
}

// Equal reports whether both objects have the same shape and values. Spans are
// not compared.
func (o *Object) Equal(other *Object) bool {
	if o == nil || other == nil {
		return o == other
	}
	if o.t != other.t {
		return false
	}
	if !o.IsVector() {
		return o.v == other.v
	}

	if len(o.params) != len(other.params) {
		return false
	}
	for i := range o.params {
		if o.params[i] != other.params[i] {
			return false
		}
	}

	a, b := o.List(), other.List()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

func (o *Object) String() string {
	return string(Encode(o))
}
