package main

import (
	"encoding/xml"
	"fmt"
	"log"
	"strings"

	"github.com/xiam/lisp/ast"
	"github.com/xiam/lisp/location"
	"github.com/xiam/lisp/parser"
)

const input = `(define plus_one (lambda (x) (+ x 1)))
(define answer (plus_one 41))`

func attrs(node *ast.Object) string {
	span := node.Span()
	loc := location.Resolve("", input, span.Begin)
	return fmt.Sprintf(`begin="%d" end="%d" line="%d" col="%d"`, span.Begin, span.End, loc.Line, loc.Column)
}

func escape(s string) string {
	var b strings.Builder
	if err := xml.EscapeText(&b, []byte(s)); err != nil {
		log.Fatal("xml.EscapeText:", err)
	}
	return b.String()
}

func printIndentedTree(node *ast.Object, level int) {
	indent := strings.Repeat("  ", level)

	if !node.IsVector() {
		fmt.Printf("%s<%s %s>%s</%s>\n", indent, node.Type(), attrs(node), escape(node.String()), node.Type())
		return
	}

	fmt.Printf("%s<%s %s>\n", indent, node.Type(), attrs(node))
	if node.Is(ast.ObjectTypeLambda) {
		for _, param := range node.Params() {
			fmt.Printf("%s  <param>%s</param>\n", indent, escape(param))
		}
	}
	for _, child := range node.List() {
		printIndentedTree(child, level+1)
	}
	fmt.Printf("%s</%s>\n", indent, node.Type())
}

func main() {
	root, err := parser.Parse(input)
	if err != nil {
		log.Fatal("parser.Parse:", err)
	}

	fmt.Println(`<?xml version="1.0" encoding="UTF-8"?>`)
	printIndentedTree(root, 0)

	// Lambdas are never produced by the reader, build one by hand.
	double := ast.NewLambda([]string{"n"}, ast.NewList(ast.NewSymbol("+"), ast.NewSymbol("n"), ast.NewSymbol("n")))
	printIndentedTree(double, 0)
}
