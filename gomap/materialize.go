package gomap

import (
	"fmt"
	"math/big"
	"reflect"

	"github.com/pylit-format/go-pylit/debug"
	"github.com/pylit-format/go-pylit/encode"
	"github.com/pylit-format/go-pylit/ir"
)

// Materialize folds node into a native Go value.
//
// The mapping is: None to nil, bools to bool, numbers to int32, int64,
// float64, or *big.Int depending on width, strings to string, complex
// to complex128, tuples to Tuple, lists to []any, sets to Set, dicts
// to map[any]any. Dict keys and set members must materialize to
// Go-comparable values; otherwise an *UnmarshalError is returned.
func Materialize(node *ir.Node) (any, error) {
	m := &materializer{}
	err := node.Visit(func(y *ir.Node, isPost bool) (bool, error) {
		if !isPost {
			return true, nil
		}
		return true, m.fold(y)
	})
	if err != nil {
		if debug.Materialize() {
			debug.Logf("materialize failed: %v\n", err)
		}
		return nil, err
	}
	if len(m.stack) != 1 {
		return nil, &UnmarshalError{
			Message: fmt.Sprintf("materialize stack imbalance: %d values", len(m.stack)),
		}
	}
	return m.stack[0], nil
}

// materializer holds results of folded subtrees. Visit delivers
// post-order events, so by the time a container arrives its children
// sit on top of the stack in source order.
type materializer struct {
	stack []any
}

func (m *materializer) push(v any) {
	m.stack = append(m.stack, v)
}

func (m *materializer) popN(n int) []any {
	top := len(m.stack) - n
	out := make([]any, n)
	copy(out, m.stack[top:])
	m.stack = m.stack[:top]
	return out
}

func (m *materializer) fold(y *ir.Node) error {
	switch y.Type {
	case ir.NullType:
		m.push(nil)
	case ir.BoolType:
		m.push(y.Bool)
	case ir.NumberType:
		v, err := number(y)
		if err != nil {
			return err
		}
		m.push(v)
	case ir.StringType:
		m.push(y.String)
	case ir.ComplexType:
		m.push(complex(y.Real, y.Imag))
	case ir.TupleType:
		m.push(Tuple(m.popN(len(y.Values))))
	case ir.ListType:
		m.push(m.popN(len(y.Values)))
	case ir.SetType:
		members := m.popN(len(y.Values))
		for _, member := range members {
			if !isHashable(member) {
				return &UnmarshalError{
					Message: fmt.Sprintf("unhashable set member %s", describe(member)),
				}
			}
		}
		m.push(Set(members))
	case ir.DictType:
		n := len(y.Fields)
		pairs := m.popN(2 * n)
		res := make(map[any]any, n)
		for i := 0; i < n; i++ {
			key, val := pairs[2*i], pairs[2*i+1]
			if !isHashable(key) {
				return &UnmarshalError{
					Message: fmt.Sprintf("unhashable dict key %s", describe(key)),
				}
			}
			if !isMapKey(key) {
				return &UnmarshalError{
					Message: fmt.Sprintf("unsupported dict key %s", describe(key)),
				}
			}
			res[key] = val
		}
		m.push(res)
	default:
		return &UnmarshalError{
			Message: fmt.Sprintf("unknown node type %s", y.Type),
		}
	}
	return nil
}

func number(y *ir.Node) (any, error) {
	switch {
	case y.Int32 != nil:
		return *y.Int32, nil
	case y.Int64 != nil:
		return *y.Int64, nil
	case y.Float64 != nil:
		return *y.Float64, nil
	}
	v, ok := new(big.Int).SetString(y.Number, 10)
	if !ok {
		return nil, &UnmarshalError{
			Message: fmt.Sprintf("invalid number %q", y.Number),
		}
	}
	return v, nil
}

// isHashable mirrors value hashability in the source language:
// scalars are hashable, tuples are hashable when their members are,
// and lists, sets, and dicts are not.
func isHashable(v any) bool {
	switch t := v.(type) {
	case nil, bool, int32, int64, float64, *big.Int, string, complex128:
		return true
	case Tuple:
		for _, member := range t {
			if !isHashable(member) {
				return false
			}
		}
		return true
	}
	return false
}

// isMapKey reports whether v can serve as a Go map key without a
// runtime panic. Tuples pass isHashable but fail here; they have no
// comparable Go representation.
func isMapKey(v any) bool {
	if v == nil {
		return true
	}
	return reflect.ValueOf(v).Comparable()
}

func describe(v any) string {
	if v == nil {
		return "None"
	}
	return fmt.Sprintf("of type %T", v)
}

// MustMaterialize is Materialize for inputs known to be well formed,
// such as literals in tests.
func MustMaterialize(node *ir.Node) any {
	v, err := Materialize(node)
	if err != nil {
		panic(fmt.Sprintf("materialize %s: %v", encode.MustString(node), err))
	}
	return v
}
