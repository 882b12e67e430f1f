package lisp

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xiam/lisp/ast"
)

func TestEnvSetGet(t *testing.T) {
	env := NewEnv(nil)
	assert.NotNil(t, env)

	{
		v, err := env.Get("foo")
		assert.Error(t, err)
		assert.True(t, errors.Is(err, ErrUndefinedSymbol))
		assert.Nil(t, v)
	}

	{
		env.Set("foo", ast.True)

		v, err := env.Get("foo")
		assert.NoError(t, err)
		assert.Equal(t, ast.True, v)
		assert.Equal(t, 1, env.Len())
	}
}

func TestEnvChild(t *testing.T) {
	env := NewEnv(nil)
	child := NewEnv(env)
	assert.Equal(t, env, child.Parent())

	env.Set("foo", ast.NewInt(1))

	{
		v, err := child.Get("foo")
		assert.NoError(t, err)
		assert.Equal(t, "1", v.String())
	}

	{
		child.Set("foo", ast.NewInt(2))

		v, err := child.Get("foo")
		assert.NoError(t, err)
		assert.Equal(t, "2", v.String())

		v, err = env.Get("foo")
		assert.NoError(t, err)
		assert.Equal(t, "1", v.String())
	}

	{
		child.Set("bar", ast.False)

		_, err := env.Get("bar")
		assert.Error(t, err)
		assert.Equal(t, 1, env.Len())
		assert.Equal(t, 2, child.Len())
	}
}

func TestEvaluatorEnv(t *testing.T) {
	ev := NewEvaluator(nil)
	assert.NotNil(t, ev.Env())
	assert.Nil(t, ev.Env().Parent())

	root := NewEnv(nil)
	assert.Equal(t, root, NewEvaluator(root).Env())

	value, err := ev.Eval(ast.NewList(ast.NewSymbol("define"), ast.NewSymbol("x"), ast.NewInt(1)))
	assert.NoError(t, err)
	assert.Equal(t, ast.Void, value)
}
