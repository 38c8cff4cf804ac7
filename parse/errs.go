package parse

import (
	"errors"
	"fmt"

	"github.com/pylit-format/go-pylit/ir"
)

var (
	ErrParse = ir.ErrParse

	ErrUnclosedString = errors.New("unclosed string")
	ErrGarbage        = errors.New("garbage at end of expression")
	ErrMaxDepth       = errors.New("max depth exceeded")
)

// Error is the error type returned by Parse. Offset is the character
// offset the cursor had reached when the outermost parse failed; it
// is attached once, at the top, not at each nested failure site.
type Error struct {
	Err    error
	Offset int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at position %d", e.Err.Error(), e.Offset)
}

func (e *Error) Unwrap() error {
	return e.Err
}
