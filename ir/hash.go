package ir

import (
	"encoding/binary"
	"hash/maphash"
	"math"
)

// One shared seed so structural hashes are stable across calls within
// a process; set and dict deduplication depend on that.
var seed = maphash.MakeSeed()

// Hash returns a 64-bit structural hash of the node, consistent with
// Equal. Set and dict hashes are insensitive to element order.
// It panics if n is nil.
func (n *Node) Hash() uint64 {
	if n == nil {
		panic("ir: Hash called on nil node")
	}

	var h maphash.Hash
	h.SetSeed(seed)
	h.WriteByte(byte(n.Type))

	var b [8]byte
	switch n.Type {
	case NullType:
	case BoolType:
		if n.Bool {
			h.WriteByte(1)
		} else {
			h.WriteByte(0)
		}
	case NumberType:
		h.WriteByte(byte(numberSubRank(n)))
		switch {
		case n.Int32 != nil:
			binary.LittleEndian.PutUint64(b[:], uint64(*n.Int32))
			h.Write(b[:])
		case n.Int64 != nil:
			binary.LittleEndian.PutUint64(b[:], uint64(*n.Int64))
			h.Write(b[:])
		case n.Float64 != nil:
			binary.LittleEndian.PutUint64(b[:], math.Float64bits(*n.Float64))
			h.Write(b[:])
		default:
			h.WriteString(n.Number)
		}
	case StringType:
		h.WriteString(n.String)
	case ComplexType:
		binary.LittleEndian.PutUint64(b[:], math.Float64bits(n.Real))
		h.Write(b[:])
		binary.LittleEndian.PutUint64(b[:], math.Float64bits(n.Imag))
		h.Write(b[:])
	case TupleType, ListType:
		for _, v := range n.Values {
			binary.LittleEndian.PutUint64(b[:], v.Hash())
			h.Write(b[:])
		}
	case SetType:
		// commutative combine keeps the hash order-insensitive
		var sum uint64
		for _, v := range n.Values {
			sum += v.Hash()
		}
		binary.LittleEndian.PutUint64(b[:], sum)
		h.Write(b[:])
	case DictType:
		var sum uint64
		for i, field := range n.Fields {
			var eh maphash.Hash
			eh.SetSeed(seed)
			binary.LittleEndian.PutUint64(b[:], field.Hash())
			eh.Write(b[:])
			binary.LittleEndian.PutUint64(b[:], n.Values[i].Hash())
			eh.Write(b[:])
			sum += eh.Sum64()
		}
		binary.LittleEndian.PutUint64(b[:], sum)
		h.Write(b[:])
	}
	return h.Sum64()
}
