package gomap

import (
	"errors"
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/pylit-format/go-pylit/parse"
)

func mustParse(t *testing.T, in string) any {
	t.Helper()
	node, err := parse.ParseString(in)
	if err != nil {
		t.Fatalf("parse %q: %v", in, err)
	}
	v, err := Materialize(node)
	if err != nil {
		t.Fatalf("materialize %q: %v", in, err)
	}
	return v
}

func TestMaterializeScalars(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want any
	}{
		{"None", nil},
		{"True", true},
		{"False", false},
		{"42", int32(42)},
		{"-42", int32(-42)},
		{"1099511627776", int64(1 << 40)},
		{"1.5", 1.5},
		{"123.0", 123.0},
		{"1e5", 1e5},
		{"'hi'", "hi"},
		{"(1+2j)", complex(1, 2)},
		{"3j", complex(0, 3)},
	} {
		got := mustParse(t, tc.in)
		if got != tc.want {
			t.Errorf("%q: got %v (%T) want %v (%T)", tc.in, got, got, tc.want, tc.want)
		}
	}
}

func TestMaterializeBigInt(t *testing.T) {
	got := mustParse(t, "123456789012345678901234567890")
	b, ok := got.(*big.Int)
	if !ok {
		t.Fatalf("got %T want *big.Int", got)
	}
	want, _ := new(big.Int).SetString("123456789012345678901234567890", 10)
	if b.Cmp(want) != 0 {
		t.Errorf("got %s want %s", b, want)
	}
}

func TestMaterializeContainers(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want any
	}{
		{"()", Tuple{}},
		{"(1,)", Tuple{int32(1)}},
		{"(1, 'a')", Tuple{int32(1), "a"}},
		{"[]", []any{}},
		{"[1, [2, 3]]", []any{int32(1), []any{int32(2), int32(3)}}},
		{"{1, 1, 2}", Set{int32(1), int32(2)}},
		{"{}", map[any]any{}},
		{"{'a': 1, 2: None}", map[any]any{"a": int32(1), int32(2): nil}},
		{"{1: 'a', 1: 'b'}", map[any]any{int32(1): "b"}},
	} {
		got := mustParse(t, tc.in)
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("%q: (-want +got):\n%s", tc.in, diff)
		}
	}
}

func TestMaterializeUnhashableKey(t *testing.T) {
	for _, in := range []string{
		"{[1]: 'a'}",
		"{[1], [2]}",
	} {
		node, err := parse.ParseString(in)
		if err != nil {
			t.Fatalf("parse %q: %v", in, err)
		}
		_, err = Materialize(node)
		var uerr *UnmarshalError
		if !errors.As(err, &uerr) {
			t.Errorf("%q: got %v want *UnmarshalError", in, err)
		}
	}
}

func TestSetContains(t *testing.T) {
	s := mustParse(t, "{1, (2, 3), 'x'}").(Set)
	if !s.Contains(int32(1)) || !s.Contains(Tuple{int32(2), int32(3)}) || !s.Contains("x") {
		t.Errorf("missing members in %v", s)
	}
	if s.Contains(int32(9)) {
		t.Errorf("unexpected member in %v", s)
	}
}
