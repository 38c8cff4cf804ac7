package encode

import (
	"strings"

	"github.com/fatih/color"

	"github.com/pylit-format/go-pylit/ir"
)

type ColorAttr int

const (
	ValueColor ColorAttr = iota
	SepColor
)

// Colorable associates color functions with a node type.
type Colorable struct {
	Type  ir.Type
	Value func(string, ...interface{}) string
	Sep   func(string, ...interface{}) string
}

type Colors struct {
	colorables map[ir.Type]*Colorable
}

// NewColors returns the default color scheme.
func NewColors() *Colors {
	res := &Colors{
		colorables: map[ir.Type]*Colorable{},
	}
	sep := escaped(color.RGB(128, 128, 128).SprintfFunc())
	add := func(t ir.Type, r, g, b int) {
		res.colorables[t] = &Colorable{
			Type:  t,
			Value: escaped(color.RGB(r, g, b).SprintfFunc()),
			Sep:   sep,
		}
	}
	add(ir.NullType, 160, 160, 160)
	add(ir.BoolType, 255, 160, 80)
	add(ir.NumberType, 120, 200, 255)
	add(ir.ComplexType, 120, 200, 255)
	add(ir.StringType, 140, 220, 120)
	add(ir.TupleType, 220, 220, 220)
	add(ir.ListType, 220, 220, 220)
	add(ir.SetType, 220, 180, 255)
	add(ir.DictType, 220, 220, 220)
	return res
}

func (c *Colors) Color(t ir.Type, attr ColorAttr, s string) string {
	cable, ok := c.colorables[t]
	if !ok {
		return s
	}
	switch attr {
	case ValueColor:
		return cable.Value(s)
	case SepColor:
		return cable.Sep(s)
	}
	return s
}

// escaped guards against '%' in the rendered text being treated as a
// format directive by the Sprintf-style color function.
func escaped(f func(string, ...interface{}) string) func(string, ...interface{}) string {
	return func(s string, args ...interface{}) string {
		if len(args) == 0 {
			s = strings.ReplaceAll(s, "%", "%%")
		}
		return f(s, args...)
	}
}
