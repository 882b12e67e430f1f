package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/xiam/lisp"
	"github.com/xiam/lisp/ast"
	"github.com/xiam/lisp/lexer"
	"github.com/xiam/lisp/parser"
)

const (
	promptMain  = "lisp> "
	promptCont  = "  ... "
	historyFile = ".lisp_history"
	replPath    = "<repl>"
)

const usage = `usage: lisp <command> [flags] [files]

commands:
  run     parse and evaluate files
  parse   print the syntax tree of files
  tokens  print the tokens of files with their locations
  repl    start an interactive session (default)

run "lisp <command> -h" for the flags of a command.
`

func main() {
	os.Exit(dispatch(os.Args[1:], os.Stdout, os.Stderr))
}

func dispatch(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		return cmdRepl(nil, stdout, stderr)
	}

	switch args[0] {
	case "run":
		return cmdRun(args[1:], stdout, stderr)
	case "parse":
		return cmdParse(args[1:], stdout, stderr)
	case "tokens":
		return cmdTokens(args[1:], stdout, stderr)
	case "repl":
		return cmdRepl(args[1:], stdout, stderr)
	case "help", "-h", "-help", "--help":
		fmt.Fprint(stdout, usage)
		return 0
	}

	fmt.Fprintf(stderr, "unknown command %q\n\n%s", args[0], usage)
	return 2
}

type options struct {
	debug    bool
	maxDepth int
}

func (o *options) register(fs *flag.FlagSet) {
	fs.BoolVar(&o.debug, "debug", false, "write debug logs to stderr")
	fs.IntVar(&o.maxDepth, "max-depth", 0, "maximum list nesting depth, 0 means unlimited")
}

func (o *options) apply(stderr io.Writer) []parser.Option {
	if o.debug {
		lisp.SetLogOutput(stderr)
	}
	return []parser.Option{parser.WithMaxDepth(o.maxDepth)}
}

func newFlagSet(name string, stderr io.Writer) (*flag.FlagSet, *options) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)

	opts := &options{}
	opts.register(fs)
	return fs, opts
}

func loadSource(path string) (*lisp.Source, error) {
	if path == "-" {
		buf, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, err
		}
		return lisp.NewSource("<stdin>", string(buf)), nil
	}
	return lisp.ReadFile(path)
}

func parseFiles(paths []string, opts []parser.Option, stderr io.Writer, fn func(*lisp.Source, *ast.Object)) int {
	if len(paths) == 0 {
		fmt.Fprintln(stderr, "no input files")
		return 2
	}

	ret := 0
	for _, path := range paths {
		src, err := loadSource(path)
		if err != nil {
			fmt.Fprintln(stderr, err)
			ret = 1
			continue
		}
		root, err := src.Parse(opts...)
		if err != nil {
			fmt.Fprintln(stderr, src.WrapError(err))
			ret = 1
			continue
		}
		fn(src, root)
	}
	return ret
}

// -----------------------------------------------------------------------------
// run
// -----------------------------------------------------------------------------

func cmdRun(args []string, stdout, stderr io.Writer) int {
	fs, o := newFlagSet("run", stderr)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	opts := o.apply(stderr)

	ev := lisp.NewEvaluator(nil)
	ret := parseFiles(fs.Args(), opts, stderr, func(src *lisp.Source, root *ast.Object) {
		value, err := ev.Eval(root)
		if err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", src.Path, err)
			return
		}
		fmt.Fprintln(stdout, value)
	})
	return ret
}

// -----------------------------------------------------------------------------
// parse
// -----------------------------------------------------------------------------

func cmdParse(args []string, stdout, stderr io.Writer) int {
	fs, o := newFlagSet("parse", stderr)
	canonical := fs.Bool("canonical", false, "print the canonical text form instead of the tree")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	opts := o.apply(stderr)

	return parseFiles(fs.Args(), opts, stderr, func(src *lisp.Source, root *ast.Object) {
		if *canonical {
			fmt.Fprintln(stdout, root)
			return
		}
		ast.Print(stdout, root)
	})
}

// -----------------------------------------------------------------------------
// tokens
// -----------------------------------------------------------------------------

func cmdTokens(args []string, stdout, stderr io.Writer) int {
	fs, o := newFlagSet("tokens", stderr)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	o.apply(stderr)

	if fs.NArg() == 0 {
		fmt.Fprintln(stderr, "no input files")
		return 2
	}

	ret := 0
	for _, path := range fs.Args() {
		src, err := loadSource(path)
		if err != nil {
			fmt.Fprintln(stderr, err)
			ret = 1
			continue
		}

		// lexical errors are reported and scanning goes on
		lx := lexer.New(src.Text)
		for {
			tok, err := lx.Next()
			if err == io.EOF {
				break
			}
			var lexErr *lexer.Error
			if errors.As(err, &lexErr) {
				fmt.Fprintf(stdout, "%-10s %-12q at %v\n", "error", lexErr.Error(), src.Locate(lexErr.Begin))
				ret = 1
				continue
			}
			fmt.Fprintf(stdout, "%-10s %-12q at %v\n", tok.Type(), tok.Text(), src.Locate(tok.Begin))
		}
	}
	return ret
}

// -----------------------------------------------------------------------------
// repl
// -----------------------------------------------------------------------------

type prompter interface {
	Prompt(prompt string) (string, error)
}

func cmdRepl(args []string, stdout, stderr io.Writer) int {
	fs, o := newFlagSet("repl", stderr)
	echo := fs.Bool("echo", false, "print each parsed form before its value")
	history := fs.String("history", defaultHistoryPath(), "history file, empty disables history")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	opts := o.apply(stderr)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if *history != "" {
		if f, err := os.Open(*history); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(*history); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	ev := lisp.NewEvaluator(nil)
	for {
		code, ok := readForm(ln, opts)
		if !ok {
			fmt.Fprintln(stdout)
			return 0
		}
		if strings.TrimSpace(code) == "" {
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))

		if err := evalLine(ev, code, opts, *echo, stdout); err != nil {
			fmt.Fprintln(stderr, err)
		}
	}
}

// readForm reads lines until they hold complete forms, an unbalanced open
// list keeps the continuation prompt up. It returns false at end of input.
func readForm(p prompter, opts []parser.Option) (string, bool) {
	var b strings.Builder

	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}

		line, err := p.Prompt(prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			b.Reset()
			continue
		}
		if err != nil {
			if b.Len() > 0 {
				return b.String(), true
			}
			return "", false
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		_, err = parser.Parse(b.String(), opts...)
		if errors.Is(err, parser.ErrUnexpectedEOF) {
			continue
		}
		return b.String(), true
	}
}

func evalLine(ev *lisp.Evaluator, code string, opts []parser.Option, echo bool, stdout io.Writer) error {
	src := lisp.NewSource(replPath, code)

	root, err := src.Parse(opts...)
	if err != nil {
		return src.WrapError(err)
	}
	if echo {
		fmt.Fprintln(stdout, root)
	}

	value, err := ev.Eval(root)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, value)
	return nil
}

func defaultHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, historyFile)
}
