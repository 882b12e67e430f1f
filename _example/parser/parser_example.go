package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/xiam/lisp"
	"github.com/xiam/lisp/ast"
	"github.com/xiam/lisp/parser"
)

func main() {
	src := lisp.NewSource("plus_one.l", "(define (plus_one x)\n  (+ x 1))\n(plus_one 41)\n")

	root, err := src.Parse()
	if err != nil {
		log.Fatal("parse:", src.WrapError(err))
	}

	ast.Print(os.Stdout, root)
	fmt.Printf("\ncanonical: %s\n\n", root)

	// A missing parenthesis is reported with its location and a snippet.
	broken := lisp.NewSource("broken.l", "(define (plus_one x)\n  (+ x 1)\n")
	if _, err := broken.Parse(parser.WithMaxDepth(16)); err != nil {
		fmt.Println(broken.WrapError(err))
		fmt.Println("incomplete:", errors.Is(err, parser.ErrUnexpectedEOF))
	}
}
