package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Parse       bool
	Materialize bool
	Encode      bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("PYLIT_DEBUG_PARSE")
	d.Materialize = boolEnv("PYLIT_DEBUG_MATERIALIZE")
	d.Encode = boolEnv("PYLIT_DEBUG_ENCODE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Materialize() bool {
	return d.Materialize
}
func Encode() bool {
	return d.Encode
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
