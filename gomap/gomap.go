package gomap

import "reflect"

// Tuple is the native form of a tuple literal. It is a distinct type
// so callers can tell tuples and lists apart after materialization.
type Tuple []any

// Set is the native form of a set literal. Members are unique under
// deep equality; the order follows first occurrence in the input.
type Set []any

func (s Set) Contains(v any) bool {
	for _, m := range s {
		if reflect.DeepEqual(m, v) {
			return true
		}
	}
	return false
}
