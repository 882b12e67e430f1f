package lisp

import (
	"errors"
	"fmt"

	"github.com/xiam/lisp/ast"
)

// ErrUndefinedSymbol is returned when a name is not bound in an Env or any of
// its parents.
var ErrUndefinedSymbol = errors.New("undefined symbol")

// Env binds names to objects. Lookups that miss fall through to the parent.
type Env struct {
	p *Env

	vars map[string]*ast.Object
}

// NewEnv creates an environment, parent may be nil.
func NewEnv(parent *Env) *Env {
	return &Env{
		p:    parent,
		vars: make(map[string]*ast.Object),
	}
}

// Set binds name to value in this environment
func (env *Env) Set(name string, value *ast.Object) {
	env.vars[name] = value
}

// Get returns the value bound to name, looking up parents as needed.
func (env *Env) Get(name string) (*ast.Object, error) {
	for e := env; e != nil; e = e.p {
		if value, ok := e.vars[name]; ok {
			return value, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUndefinedSymbol, name)
}

// Len returns the number of names bound in this environment, parents
// excluded.
func (env *Env) Len() int {
	return len(env.vars)
}

// Parent returns the enclosing environment
func (env *Env) Parent() *Env {
	return env.p
}
