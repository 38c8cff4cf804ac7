// Package ir provides the tree representation for parsed literal
// expressions.
//
// # Node Structure
//
// A Node represents a single value. The IR works as a recursive
// tagged union structure, where values are placed in fields depending
// on the node type:
//
//   - NullType: the null literal (a single shared instance, see Null)
//   - BoolType: boolean (True/False)
//   - NumberType: numeric value (int32, int64, float64 or
//     arbitrary-precision decimal)
//   - StringType: string value
//   - ComplexType: complex number (real and imaginary parts)
//   - TupleType, ListType, SetType: ordered elements in Values
//   - DictType: keys in Fields, values in Values, index-aligned
//
// # Numbers
//
// The numeric subtype is decided once, at parse time, and never
// coerced later. Number values are placed under:
//
//   - Int32: if the literal fits in 32 bits
//   - Int64: if it fits in 64 bits
//   - Float64: for floating point literals
//   - Number: the decimal digit string if no machine type can
//     represent it
//
// # Sets and Dicts
//
// FromSet and FromKeyVals deduplicate at construction time: a set is
// a value set, not a multiset, and a dict holds one entry per
// distinct key with the last value winning. Equality over sets and
// dicts is therefore insensitive to element order.
//
// # Comparison and Hashing
//
// Nodes are compared by structural value equality, not identity:
//
//	equal := ir.Equal(a, b)
//
// Hash returns a structural hash consistent with Equal, stable within
// a process; set and dict deduplication depend on it.
//
// # Related Packages
//
//   - github.com/pylit-format/go-pylit/parse - parses text into IR nodes
//   - github.com/pylit-format/go-pylit/encode - encodes IR nodes to text
//   - github.com/pylit-format/go-pylit/gomap - materializes IR into Go values
package ir
