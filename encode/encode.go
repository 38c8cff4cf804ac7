package encode

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/pylit-format/go-pylit/debug"
	"github.com/pylit-format/go-pylit/ir"
	"github.com/pylit-format/go-pylit/token"
)

type EncState struct {
	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes the canonical literal rendering of node to w.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	if es.Color == nil {
		es.Color = colorNone
	}
	if err := encode(node, w, es); err != nil {
		if debug.Encode() {
			debug.Logf("encode failed: %v\n", err)
		}
		return err
	}
	return nil
}

func colorNone(_ ir.Type, _ ColorAttr, s string) string { return s }

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	switch node.Type {
	case ir.NullType:
		return write(w, es.Color(node.Type, ValueColor, "None"))
	case ir.BoolType:
		v := "False"
		if node.Bool {
			v = "True"
		}
		return write(w, es.Color(node.Type, ValueColor, v))
	case ir.NumberType:
		return write(w, es.Color(node.Type, ValueColor, numberLiteral(node)))
	case ir.StringType:
		return write(w, es.Color(node.Type, ValueColor, token.Quote(node.String)))
	case ir.ComplexType:
		return write(w, es.Color(node.Type, ValueColor, complexLiteral(node)))
	case ir.TupleType:
		return encodeSeq(node, w, es, "(", ")")
	case ir.ListType:
		return encodeSeq(node, w, es, "[", "]")
	case ir.SetType:
		return encodeSeq(node, w, es, "{", "}")
	case ir.DictType:
		return encodeDict(node, w, es)
	}
	return fmt.Errorf("encode: unknown node type %s", node.Type)
}

func encodeSeq(node *ir.Node, w io.Writer, es *EncState, open, close string) error {
	if err := write(w, es.Color(node.Type, SepColor, open)); err != nil {
		return err
	}
	for i, elt := range node.Values {
		if i > 0 {
			if err := write(w, es.Color(node.Type, SepColor, ", ")); err != nil {
				return err
			}
		}
		if err := encode(elt, w, es); err != nil {
			return err
		}
	}
	// the trailing comma distinguishes a one-element tuple from a
	// parenthesized scalar
	if node.Type == ir.TupleType && len(node.Values) == 1 {
		if err := write(w, es.Color(node.Type, SepColor, ",")); err != nil {
			return err
		}
	}
	return write(w, es.Color(node.Type, SepColor, close))
}

func encodeDict(node *ir.Node, w io.Writer, es *EncState) error {
	if err := write(w, es.Color(node.Type, SepColor, "{")); err != nil {
		return err
	}
	for i := range node.Fields {
		if i > 0 {
			if err := write(w, es.Color(node.Type, SepColor, ", ")); err != nil {
				return err
			}
		}
		if err := encode(node.Fields[i], w, es); err != nil {
			return err
		}
		if err := write(w, es.Color(node.Type, SepColor, ": ")); err != nil {
			return err
		}
		if err := encode(node.Values[i], w, es); err != nil {
			return err
		}
	}
	return write(w, es.Color(node.Type, SepColor, "}"))
}

func write(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

func numberLiteral(n *ir.Node) string {
	switch {
	case n.Int32 != nil:
		return strconv.FormatInt(int64(*n.Int32), 10)
	case n.Int64 != nil:
		return strconv.FormatInt(*n.Int64, 10)
	case n.Float64 != nil:
		return FloatLiteral(*n.Float64)
	default:
		return n.Number
	}
}

// FloatLiteral formats f so that the result re-parses as a float: a
// bare digit run gets a ".0" suffix.
func FloatLiteral(f float64) string {
	if math.IsInf(f, 1) {
		return "inf"
	}
	if math.IsInf(f, -1) {
		return "-inf"
	}
	if math.IsNaN(f) {
		return "nan"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// complexLiteral renders (real+imagj) or (real-imagj); the sign is
// not duplicated when the imaginary part is already negative.
func complexLiteral(n *ir.Node) string {
	re := shortFloat(n.Real)
	im := shortFloat(n.Imag)
	if n.Imag < 0 || math.Signbit(n.Imag) {
		return fmt.Sprintf("(%s%sj)", re, im)
	}
	return fmt.Sprintf("(%s+%sj)", re, im)
}

// shortFloat omits the forced ".0": inside a complex literal the
// trailing 'j' already marks the number as non-integer.
func shortFloat(f float64) string {
	if math.IsInf(f, 1) {
		return "inf"
	}
	if math.IsInf(f, -1) {
		return "-inf"
	}
	if math.IsNaN(f) {
		return "nan"
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
