package lisp

import (
	"io"
	"log"
)

var logger = log.New(io.Discard, "lisp: ", log.LstdFlags)

// SetLogOutput sets the destination of the package debug log, which is
// discarded by default.
func SetLogOutput(w io.Writer) {
	logger.SetOutput(w)
}
