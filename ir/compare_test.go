package ir

import "testing"

func TestCompareScalars(t *testing.T) {
	cases := []struct {
		name string
		a, b *Node
		want int
	}{
		{"null-null", Null(), Null(), 0},
		{"null-bool", Null(), FromBool(false), -1},
		{"bool-eq", FromBool(true), FromBool(true), 0},
		{"bool-lt", FromBool(false), FromBool(true), -1},
		{"int32-eq", FromInt32(7), FromInt32(7), 0},
		{"int32-lt", FromInt32(-5), FromInt32(5), -1},
		{"int64-eq", FromInt64(1 << 40), FromInt64(1 << 40), 0},
		{"float-eq", FromFloat(1.5), FromFloat(1.5), 0},
		{"float-gt", FromFloat(2.5), FromFloat(1.5), 1},
		{"string-eq", FromString("a"), FromString("a"), 0},
		{"string-lt", FromString("a"), FromString("b"), -1},
		{"decimal-eq", FromDecimal("123456789012345678901"), FromDecimal("123456789012345678901"), 0},
		{"complex-eq", FromComplex(1, 2), FromComplex(1, 2), 0},
		{"complex-imag", FromComplex(1, 2), FromComplex(1, 3), -1},
		// subtypes are fixed at parse time and never compare equal
		{"int32-vs-int64", FromInt32(1), FromInt64(1), -1},
		{"int32-vs-float", FromInt32(1), FromFloat(1), -1},
	}
	for _, c := range cases {
		if got := Compare(c.a, c.b); got != c.want {
			t.Errorf("%s: Compare = %d, want %d", c.name, got, c.want)
		}
		if got := Compare(c.b, c.a); got != -c.want {
			t.Errorf("%s: reverse Compare = %d, want %d", c.name, got, -c.want)
		}
	}
}

func TestCompareSequences(t *testing.T) {
	l12 := FromList([]*Node{FromInt32(1), FromInt32(2)})
	l12b := FromList([]*Node{FromInt32(1), FromInt32(2)})
	l21 := FromList([]*Node{FromInt32(2), FromInt32(1)})
	if !Equal(l12, l12b) {
		t.Error("equal lists differ")
	}
	if Equal(l12, l21) {
		t.Error("list equality ignored order")
	}
	if Equal(l12, FromTuple([]*Node{FromInt32(1), FromInt32(2)})) {
		t.Error("tuple equals list")
	}

	s12 := FromSet([]*Node{FromInt32(1), FromInt32(2)})
	s21 := FromSet([]*Node{FromInt32(2), FromInt32(1)})
	if !Equal(s12, s21) {
		t.Error("set equality is order sensitive")
	}

	d1 := FromKeyVals([]KeyVal{
		{Key: FromString("a"), Val: FromInt32(1)},
		{Key: FromString("b"), Val: FromInt32(2)},
	})
	d2 := FromKeyVals([]KeyVal{
		{Key: FromString("b"), Val: FromInt32(2)},
		{Key: FromString("a"), Val: FromInt32(1)},
	})
	if !Equal(d1, d2) {
		t.Error("dict equality is order sensitive")
	}
	d3 := FromKeyVals([]KeyVal{
		{Key: FromString("a"), Val: FromInt32(9)},
		{Key: FromString("b"), Val: FromInt32(2)},
	})
	if Equal(d1, d3) {
		t.Error("dicts with different values equal")
	}
}

func TestHashConsistency(t *testing.T) {
	pairs := [][2]*Node{
		{FromInt32(42), FromInt32(42)},
		{FromString("x"), FromString("x")},
		{
			FromSet([]*Node{FromInt32(1), FromInt32(2)}),
			FromSet([]*Node{FromInt32(2), FromInt32(1)}),
		},
		{
			FromKeyVals([]KeyVal{
				{Key: FromInt32(1), Val: FromString("a")},
				{Key: FromInt32(2), Val: FromString("b")},
			}),
			FromKeyVals([]KeyVal{
				{Key: FromInt32(2), Val: FromString("b")},
				{Key: FromInt32(1), Val: FromString("a")},
			}),
		},
	}
	for i, p := range pairs {
		if !Equal(p[0], p[1]) {
			t.Errorf("pair %d not equal", i)
		}
		if p[0].Hash() != p[1].Hash() {
			t.Errorf("pair %d: equal nodes hash differently", i)
		}
	}
	// hash is stable across calls
	n := FromString("stable")
	if n.Hash() != n.Hash() {
		t.Error("hash not stable")
	}
}
