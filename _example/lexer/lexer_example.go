package main

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/xiam/lisp/lexer"
	"github.com/xiam/lisp/location"
)

func main() {
	input := "(define (plus_one x)\n  (+ x 1))\n(plus_one #41)\n"

	// Next keeps going after a lexical error, Tokenize would stop at it.
	lx := lexer.New(input)
	for i := 0; ; i++ {
		tok, err := lx.Next()
		if err == io.EOF {
			break
		}

		var lexErr *lexer.Error
		if errors.As(err, &lexErr) {
			loc := location.Resolve("input", input, lexErr.Begin)
			fmt.Printf("error[%d] %v at %v\n", i, lexErr, loc)
			continue
		}
		if err != nil {
			log.Fatal("lexer.Next:", err)
		}

		loc := location.Resolve("input", input, tok.Begin)
		if tok.Is(lexer.TokenInteger) {
			fmt.Printf("token[%d] %-10v %-10q value=%d at %v span=%v\n", i, tok.Type(), tok.Text(), tok.Int(), loc, tok.Span)
			continue
		}
		fmt.Printf("token[%d] %-10v %-10q at %v span=%v\n", i, tok.Type(), tok.Text(), loc, tok.Span)
	}
}
