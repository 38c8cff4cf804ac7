package parse_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/pylit-format/go-pylit/encode"
	"github.com/pylit-format/go-pylit/ir"
	"github.com/pylit-format/go-pylit/parse"
	"github.com/pylit-format/go-pylit/token"
)

// TestParseCanonical parses each input and checks the canonical
// rendering, which also exercises whitespace tolerance, set and dict
// deduplication, and the tuple arity forms.
func TestParseCanonical(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want string
	}{
		{"None", "None"},
		{"True", "True"},
		{"False", "False"},
		{"42", "42"},
		{"-5", "-5"},
		{"1.5", "1.5"},
		{"123.0", "123.0"},
		{"-0.25", "-0.25"},
		{"1e5", "100000.0"},
		{"1E5", "100000.0"},
		{"1e+21", "1e+21"},
		{"2.5e-3", "0.0025"},
		{".5", "0.5"},
		{"5.", "5.0"},
		{"123456789012345678901234567890", "123456789012345678901234567890"},
		{"''", "''"},
		{"'hi'", "'hi'"},
		{`"hi"`, "'hi'"},
		{`'it\'s\n'`, `'it\'s\n'`},
		{`"say \"hi\""`, `'say "hi"'`},
		{"(1+2j)", "(1+2j)"},
		{"(1-2j)", "(1-2j)"},
		{"(1.5+0.5j)", "(1.5+0.5j)"},
		{"3j", "(0+3j)"},
		{"-3j", "(0-3j)"},
		{"()", "()"},
		{"(1)", "(1,)"},
		{"(1,)", "(1,)"},
		{"(1,2)", "(1, 2)"},
		{"(1, 2,)", "(1, 2)"},
		{"(2j)", "((0+2j),)"},
		{"[]", "[]"},
		{"[1,2]", "[1, 2]"},
		{" [ 1 , 'a' ] ", "[1, 'a']"},
		{"{1,2}", "{1, 2}"},
		{"{1, 1, 2}", "{1, 2}"},
		{"{}", "{}"},
		{"{'a':1}", "{'a': 1}"},
		{"{1: 'a', 1: 'b'}", "{1: 'b'}"},
		{"{'k': [1, {2: (3,)}]}", "{'k': [1, {2: (3,)}]}"},
	} {
		t.Run(tc.in, func(t *testing.T) {
			node, err := parse.ParseString(tc.in)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			got := encode.MustString(node)
			if got != tc.want {
				t.Errorf("got %q want %q", got, tc.want)
			}
			// the canonical form must parse back to an equal tree
			again, err := parse.ParseString(got)
			if err != nil {
				t.Fatalf("reparse %q: %v", got, err)
			}
			if !ir.Equal(node, again) {
				t.Errorf("round trip changed value: %q vs %q", got, encode.MustString(again))
			}
		})
	}
}

func TestParseNumericSubtypes(t *testing.T) {
	node, err := parse.ParseString("42")
	if err != nil {
		t.Fatal(err)
	}
	if node.Int32 == nil || *node.Int32 != 42 {
		t.Errorf("42 did not land in int32: %+v", node)
	}

	node, err = parse.ParseString("1099511627776")
	if err != nil {
		t.Fatal(err)
	}
	if node.Int64 == nil || *node.Int64 != 1<<40 {
		t.Errorf("2^40 did not land in int64: %+v", node)
	}

	node, err = parse.ParseString("123456789012345678901234567890")
	if err != nil {
		t.Fatal(err)
	}
	if node.Number != "123456789012345678901234567890" {
		t.Errorf("big integer did not land in decimal: %+v", node)
	}
}

func TestParseHugeFloat(t *testing.T) {
	node, err := parse.ParseString("1e999")
	if err != nil {
		t.Fatal(err)
	}
	if node.Float64 == nil || !math.IsInf(*node.Float64, 1) {
		t.Errorf("got %+v want +inf", node)
	}
}

func TestParseErrors(t *testing.T) {
	for _, tc := range []struct {
		in   string
		frag string
	}{
		{"", "empty expression"},
		{"   ", "empty expression"},
		{"nope", ""},
		{"True1", "garbage"},
		{"1 2", "garbage"},
		{"'abc", "unclosed string"},
		{`'abc\`, "unclosed string"},
		{"(1,2", ""},
		{"[1 2]", ""},
		{"[1,]", ""},
		{"{1,2,}", ""},
		{"{1:2", ""},
		{"{1 2}", ""},
		{"(1 + 2j)", ""},
		{"1.2.3", "garbage"},
	} {
		t.Run(tc.in, func(t *testing.T) {
			_, err := parse.ParseString(tc.in)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, parse.ErrParse) {
				t.Errorf("error %v does not wrap ErrParse", err)
			}
			var perr *parse.Error
			if !errors.As(err, &perr) {
				t.Fatalf("error %v is not *parse.Error", err)
			}
			if !strings.Contains(err.Error(), "at position") {
				t.Errorf("error %q has no position annotation", err)
			}
			if tc.frag != "" && !strings.Contains(err.Error(), tc.frag) {
				t.Errorf("error %q missing %q", err, tc.frag)
			}
		})
	}
}

func TestParseBadUTF8(t *testing.T) {
	_, err := parse.Parse([]byte{'\'', 0xff, '\''})
	if !errors.Is(err, token.ErrBadUTF8) {
		t.Errorf("got %v want ErrBadUTF8", err)
	}
}

func TestParseMaxDepth(t *testing.T) {
	in := strings.Repeat("[", 20) + "1" + strings.Repeat("]", 20)
	if _, err := parse.ParseString(in); err != nil {
		t.Fatalf("within default depth: %v", err)
	}
	_, err := parse.ParseString(in, parse.MaxDepth(5))
	if !errors.Is(err, parse.ErrMaxDepth) {
		t.Errorf("got %v want ErrMaxDepth", err)
	}
}

func TestParseErrorOffset(t *testing.T) {
	_, err := parse.ParseString("[1, 2")
	var perr *parse.Error
	if !errors.As(err, &perr) {
		t.Fatalf("got %v", err)
	}
	if perr.Offset != 5 {
		t.Errorf("got offset %d want 5", perr.Offset)
	}
}
