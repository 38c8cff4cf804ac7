package ir

import (
	"cmp"
	"slices"
	"strings"
)

// Equal reports structural value equality of two nodes.
func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
// Set and dict comparison is insensitive to element order.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	rankA := rank(a.Type)
	rankB := rank(b.Type)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch a.Type {
	case NullType:
		return 0
	case BoolType:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case NumberType:
		return compareNumbers(a, b)
	case StringType:
		return strings.Compare(a.String, b.String)
	case ComplexType:
		if c := cmp.Compare(a.Real, b.Real); c != 0 {
			return c
		}
		return cmp.Compare(a.Imag, b.Imag)
	case TupleType, ListType:
		return compareElems(a.Values, b.Values)
	case SetType:
		return compareElems(sorted(a.Values), sorted(b.Values))
	case DictType:
		return compareDicts(a, b)
	}
	return 0
}

// rank returns the sorting rank of a type.
// Order: Null < Bool < Number < String < Complex < Tuple < List < Set < Dict
func rank(t Type) int {
	switch t {
	case NullType:
		return 0
	case BoolType:
		return 1
	case NumberType:
		return 2
	case StringType:
		return 3
	case ComplexType:
		return 4
	case TupleType:
		return 5
	case ListType:
		return 6
	case SetType:
		return 7
	case DictType:
		return 8
	}
	return 100
}

func compareNumbers(a, b *Node) int {
	// Sub-rank: Int32 < Int64 < Float64 < decimal. Subtypes are fixed
	// at parse time and never compare equal across kinds.
	subRankA := numberSubRank(a)
	subRankB := numberSubRank(b)
	if subRankA != subRankB {
		return cmp.Compare(subRankA, subRankB)
	}

	if a.Int32 != nil {
		return cmp.Compare(*a.Int32, *b.Int32)
	}
	if a.Int64 != nil {
		return cmp.Compare(*a.Int64, *b.Int64)
	}
	if a.Float64 != nil {
		return cmp.Compare(*a.Float64, *b.Float64)
	}
	return strings.Compare(a.Number, b.Number)
}

func numberSubRank(n *Node) int {
	if n.Int32 != nil {
		return 0
	}
	if n.Int64 != nil {
		return 1
	}
	if n.Float64 != nil {
		return 2
	}
	return 3
}

func compareElems(a, b []*Node) int {
	lenA := len(a)
	lenB := len(b)
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		if c := Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}

func compareDicts(a, b *Node) int {
	// Entries ordered by key on both sides; dedup guarantees keys are
	// unique, so the ordering is total.
	entA := sortedEntries(a)
	entB := sortedEntries(b)
	minLen := min(len(entA), len(entB))

	for i := 0; i < minLen; i++ {
		if c := Compare(entA[i].Key, entB[i].Key); c != 0 {
			return c
		}
		if c := Compare(entA[i].Val, entB[i].Val); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(entA), len(entB))
}

func sorted(vals []*Node) []*Node {
	res := slices.Clone(vals)
	slices.SortFunc(res, Compare)
	return res
}

func sortedEntries(y *Node) []KeyVal {
	res := make([]KeyVal, len(y.Fields))
	for i := range y.Fields {
		res[i] = KeyVal{Key: y.Fields[i], Val: y.Values[i]}
	}
	slices.SortFunc(res, func(a, b KeyVal) int {
		return Compare(a.Key, b.Key)
	})
	return res
}
