package ir

type Node struct {
	Type Type

	// Tuple, list and set elements; dict values.
	Values []*Node
	// Dict keys, index-aligned with Values.
	Fields []*Node

	String  string
	Bool    bool
	Int32   *int32
	Int64   *int64
	Float64 *float64
	// Number holds integer literals too large for Int64 as their
	// decimal digit string.
	Number string

	// Complex number parts.
	Real, Imag float64
}

var null = &Node{Type: NullType}

// Null returns the shared null node. There is exactly one instance
// system-wide; it must not be mutated.
func Null() *Node {
	return null
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

func FromInt32(v int32) *Node {
	return &Node{Type: NumberType, Int32: &v}
}

func FromInt64(v int64) *Node {
	return &Node{Type: NumberType, Int64: &v}
}

func FromFloat(v float64) *Node {
	return &Node{Type: NumberType, Float64: &v}
}

// FromDecimal wraps a decimal digit string that no machine integer
// can represent.
func FromDecimal(digits string) *Node {
	return &Node{Type: NumberType, Number: digits}
}

func FromComplex(re, im float64) *Node {
	return &Node{Type: ComplexType, Real: re, Imag: im}
}

func FromTuple(elems []*Node) *Node {
	return &Node{Type: TupleType, Values: elems}
}

func FromList(elems []*Node) *Node {
	return &Node{Type: ListType, Values: elems}
}

// FromSet builds a set node, deduplicating elems by structural
// equality. The first occurrence of each value is kept; the resulting
// order is not part of the set's contract.
func FromSet(elems []*Node) *Node {
	res := &Node{Type: SetType}
	seen := map[uint64][]*Node{}
	for _, e := range elems {
		h := e.Hash()
		dup := false
		for _, prev := range seen[h] {
			if Equal(prev, e) {
				dup = true
				break
			}
		}
		if dup {
			continue
		}
		seen[h] = append(seen[h], e)
		res.Values = append(res.Values, e)
	}
	return res
}

type KeyVal struct {
	Key *Node
	Val *Node
}

// FromKeyVals builds a dict node. Duplicate keys collapse to a single
// entry: the first key position is kept and the last value wins.
func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{Type: DictType}
	at := map[uint64][]int{}
	for _, kv := range kvs {
		h := kv.Key.Hash()
		idx := -1
		for _, i := range at[h] {
			if Equal(res.Fields[i], kv.Key) {
				idx = i
				break
			}
		}
		if idx >= 0 {
			res.Values[idx] = kv.Val
			continue
		}
		at[h] = append(at[h], len(res.Fields))
		res.Fields = append(res.Fields, kv.Key)
		res.Values = append(res.Values, kv.Val)
	}
	return res
}

// Get returns the dict value stored under key, or nil.
func Get(y *Node, key *Node) *Node {
	for i := range y.Fields {
		if Equal(y.Fields[i], key) {
			return y.Values[i]
		}
	}
	return nil
}

// Visit walks the tree depth-first. f is called with isPost false
// before a node's children and isPost true after them; returning
// false from the pre call skips the children. Dict entries are
// visited key first, then value, in entry order.
func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		if y.Type == DictType {
			for i := range y.Fields {
				if err := y.Fields[i].Visit(f); err != nil {
					return err
				}
				if err := y.Values[i].Visit(f); err != nil {
					return err
				}
			}
		} else {
			for _, yy := range y.Values {
				if err := yy.Visit(f); err != nil {
					return err
				}
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}
