// Package gomap converts parsed IR trees into native Go values.
//
// Materialize folds a tree bottom-up into interface values: None
// becomes nil, numbers become int32/int64/float64 or *big.Int, and
// containers become Tuple, []any, Set, and map[any]any. FromIR
// decodes a tree into a caller-supplied Go value by reflection.
package gomap
