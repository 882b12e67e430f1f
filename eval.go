package lisp

import (
	"github.com/xiam/lisp/ast"
)

// Evaluator runs programs against an environment.
//
// TODO: evaluation is not implemented, every program evaluates to Void until
// special forms (define, lambda, if) and arithmetic builtins are added.
type Evaluator struct {
	env *Env
}

// NewEvaluator creates an evaluator, a nil env gets a fresh root environment.
func NewEvaluator(env *Env) *Evaluator {
	if env == nil {
		env = NewEnv(nil)
	}
	return &Evaluator{env: env}
}

// Env returns the environment of the evaluator
func (ev *Evaluator) Env() *Env {
	return ev.env
}

// Eval evaluates a parsed program.
func (ev *Evaluator) Eval(program *ast.Object) (*ast.Object, error) {
	if program != nil {
		logger.Printf("eval: %v %v", program.Type(), program.Span())
	}
	return ast.Void, nil
}

// Eval evaluates a parsed program in a fresh environment.
func Eval(program *ast.Object) (*ast.Object, error) {
	return NewEvaluator(nil).Eval(program)
}
