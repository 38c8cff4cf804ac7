package token

import "errors"

var (
	ErrBadUTF8    = errors.New("bad utf8")
	ErrEndOfInput = errors.New("end of input")
)
