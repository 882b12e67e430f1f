package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/peterh/liner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiam/lisp"
)

type fakePrompter struct {
	lines   []string
	prompts []string
}

func (f *fakePrompter) Prompt(prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if len(f.lines) == 0 {
		return "", io.EOF
	}
	line := f.lines[0]
	f.lines = f.lines[1:]
	if line == "^C" {
		return "", liner.ErrPromptAborted
	}
	return line, nil
}

func writeFile(t *testing.T, name string, content string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadForm(t *testing.T) {
	p := &fakePrompter{lines: []string{"(define (f x)", "  (+ x 1))", "(a)"}}

	code, ok := readForm(p, nil)
	assert.True(t, ok)
	assert.Equal(t, "(define (f x)\n  (+ x 1))", code)
	assert.Equal(t, []string{promptMain, promptCont}, p.prompts)

	code, ok = readForm(p, nil)
	assert.True(t, ok)
	assert.Equal(t, "(a)", code)

	_, ok = readForm(p, nil)
	assert.False(t, ok)
}

func TestReadFormErrorsStopReading(t *testing.T) {
	p := &fakePrompter{lines: []string{"(a))", "(b"}}

	code, ok := readForm(p, nil)
	assert.True(t, ok)
	assert.Equal(t, "(a))", code)

	code, ok = readForm(p, nil)
	assert.True(t, ok)
	assert.Equal(t, "(b", code)
}

func TestReadFormAbort(t *testing.T) {
	p := &fakePrompter{lines: []string{"(a", "^C", "(b)"}}

	code, ok := readForm(p, nil)
	assert.True(t, ok)
	assert.Equal(t, "(b)", code)
	assert.Equal(t, []string{promptMain, promptCont, promptMain}, p.prompts)
}

func TestEvalLine(t *testing.T) {
	var out bytes.Buffer
	ev := lisp.NewEvaluator(nil)

	require.NoError(t, evalLine(ev, "(+ 1 2)", nil, true, &out))
	assert.Equal(t, "(+ 1 2)\nVoid\n", out.String())

	out.Reset()
	err := evalLine(ev, "(+ 1 2))", nil, false, &out)
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "<repl>:1:8: unexpected token: ')'"))
	assert.Equal(t, "", out.String())
}

func TestCmdRun(t *testing.T) {
	path := writeFile(t, "prog.l", "(define (plus_one x) (+ x 1))\n(plus_one 2)\n")

	var stdout, stderr bytes.Buffer
	ret := dispatch([]string{"run", path}, &stdout, &stderr)
	assert.Equal(t, 0, ret)
	assert.Equal(t, "Void\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestCmdRunErrors(t *testing.T) {
	path := writeFile(t, "bad.l", "(a\n  (b 99999999999999999999))")

	var stdout, stderr bytes.Buffer
	ret := dispatch([]string{"run", path}, &stdout, &stderr)
	assert.Equal(t, 1, ret)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), path+":2:6: lexical error: invalid integer literal")

	stderr.Reset()
	ret = dispatch([]string{"run", "-max-depth", "1", writeFile(t, "deep.l", "((x))")}, &stdout, &stderr)
	assert.Equal(t, 1, ret)
	assert.Contains(t, stderr.String(), "maximum nesting depth exceeded")

	stderr.Reset()
	ret = dispatch([]string{"run"}, &stdout, &stderr)
	assert.Equal(t, 2, ret)
	assert.Equal(t, "no input files\n", stderr.String())
}

func TestCmdParse(t *testing.T) {
	path := writeFile(t, "prog.l", "(+ 1\n  2)")

	var stdout, stderr bytes.Buffer
	ret := dispatch([]string{"parse", "-canonical", path}, &stdout, &stderr)
	assert.Equal(t, 0, ret)
	assert.Equal(t, "(+ 1 2)\n", stdout.String())

	stdout.Reset()
	ret = dispatch([]string{"parse", path}, &stdout, &stderr)
	assert.Equal(t, 0, ret)
	assert.Equal(t, "(list) [0-9]\n"+
		"    (symbol) [1-2]: +\n"+
		"    (int) [3-4]: 1\n"+
		"    (int) [7-8]: 2\n", stdout.String())
}

func TestCmdTokens(t *testing.T) {
	path := writeFile(t, "prog.l", "(+ 1\n #2)")

	var stdout, stderr bytes.Buffer
	ret := dispatch([]string{"tokens", path}, &stdout, &stderr)
	assert.Equal(t, 1, ret)

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.Len(t, lines, 6)
	assert.True(t, strings.HasPrefix(lines[0], "open_list"))
	assert.True(t, strings.HasSuffix(lines[0], path+":1:1"))
	assert.True(t, strings.HasPrefix(lines[3], "error"))
	assert.True(t, strings.HasSuffix(lines[3], path+":2:2"))
	assert.True(t, strings.HasSuffix(lines[4], path+":2:3"))
	assert.True(t, strings.HasSuffix(lines[5], path+":2:4"))
}

func TestDispatchUsage(t *testing.T) {
	var stdout, stderr bytes.Buffer

	assert.Equal(t, 0, dispatch([]string{"help"}, &stdout, &stderr))
	assert.Equal(t, usage, stdout.String())

	assert.Equal(t, 2, dispatch([]string{"frobnicate"}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), `unknown command "frobnicate"`)
}
