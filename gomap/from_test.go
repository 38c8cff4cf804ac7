package gomap

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/pylit-format/go-pylit/parse"
)

func decode(t *testing.T, in string, v any) {
	t.Helper()
	node, err := parse.ParseString(in)
	if err != nil {
		t.Fatalf("parse %q: %v", in, err)
	}
	if err := FromIR(node, v); err != nil {
		t.Fatalf("decode %q: %v", in, err)
	}
}

func TestFromIRScalars(t *testing.T) {
	var s string
	decode(t, "'hello'", &s)
	if s != "hello" {
		t.Errorf("got %q", s)
	}
	var b bool
	decode(t, "True", &b)
	if !b {
		t.Error("got false")
	}
	var n int
	decode(t, "-17", &n)
	if n != -17 {
		t.Errorf("got %d", n)
	}
	var u uint16
	decode(t, "65535", &u)
	if u != 65535 {
		t.Errorf("got %d", u)
	}
	var f float32
	decode(t, "2.5", &f)
	if f != 2.5 {
		t.Errorf("got %v", f)
	}
	var c complex128
	decode(t, "(1-2j)", &c)
	if c != complex(1, -2) {
		t.Errorf("got %v", c)
	}
}

func TestFromIRSliceAndArray(t *testing.T) {
	var xs []int
	decode(t, "[1, 2, 3]", &xs)
	if diff := cmp.Diff([]int{1, 2, 3}, xs); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	var arr [2]string
	decode(t, "('a', 'b')", &arr)
	if arr != [2]string{"a", "b"} {
		t.Errorf("got %v", arr)
	}
}

func TestFromIRMap(t *testing.T) {
	var m map[string]int
	decode(t, "{'a': 1, 'b': 2}", &m)
	if diff := cmp.Diff(map[string]int{"a": 1, "b": 2}, m); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

type host struct {
	Name string `pylit:"name"`
	Port int    `pylit:"port"`
	TLS  bool
}

func TestFromIRStruct(t *testing.T) {
	var h host
	decode(t, "{'name': 'db', 'port': 5432, 'TLS': True, 'extra': None}", &h)
	want := host{Name: "db", Port: 5432, TLS: true}
	if h != want {
		t.Errorf("got %+v want %+v", h, want)
	}
}

func TestFromIRPointerNull(t *testing.T) {
	n := 3
	p := &n
	decode(t, "None", &p)
	if p != nil {
		t.Errorf("got %v want nil", p)
	}
}

func TestFromIRInterface(t *testing.T) {
	var v any
	decode(t, "[1, {'k': (2,)}]", &v)
	want := []any{int32(1), map[any]any{"k": Tuple{int32(2)}}}
	if diff := cmp.Diff(want, v); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestFromIRErrors(t *testing.T) {
	for _, tc := range []struct {
		in   string
		dst  func() any
		frag string
	}{
		{"'x'", func() any { var n int; return &n }, "expected number"},
		{"300", func() any { var b uint8; return &b }, "overflows"},
		{"-1", func() any { var u uint; return &u }, "negative"},
		{"1.5", func() any { var n int; return &n }, "cannot convert float"},
		{"[1, 2]", func() any { var a [3]int; return &a }, "length mismatch"},
		{"{1: 2}", func() any { var s struct{ X int }; return &s }, "string keys"},
	} {
		node, err := parse.ParseString(tc.in)
		if err != nil {
			t.Fatalf("parse %q: %v", tc.in, err)
		}
		err = FromIR(node, tc.dst())
		if err == nil {
			t.Errorf("%q: expected error", tc.in)
			continue
		}
		if !strings.Contains(err.Error(), tc.frag) {
			t.Errorf("%q: error %q missing %q", tc.in, err, tc.frag)
		}
	}
}
