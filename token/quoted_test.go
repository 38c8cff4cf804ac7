package token

import "testing"

func TestQuote(t *testing.T) {
	cases := []struct {
		in, out string
	}{
		{"", "''"},
		{"hello", "'hello'"},
		{"it's", `'it\'s'`},
		{"a\nb", `'a\nb'`},
		{"a\tb\rc", `'a\tb\rc'`},
		{"\a\b\f\v", `'\a\b\f\v'`},
		{`back\slash`, `'back\\slash'`},
		{`he said "hi"`, `'he said "hi"'`},
	}
	for _, c := range cases {
		if got := Quote(c.in); got != c.out {
			t.Errorf("Quote(%q) = %s, want %s", c.in, got, c.out)
		}
	}
}

func TestEscapeChar(t *testing.T) {
	for in, want := range map[rune]rune{
		'a': '\a', 'b': '\b', 'f': '\f', 'n': '\n',
		'r': '\r', 't': '\t', 'v': '\v',
		'\\': '\\', '\'': '\'', '"': '"',
	} {
		got, ok := EscapeChar(in)
		if !ok || got != want {
			t.Errorf("EscapeChar(%q) = %q, %v", in, got, ok)
		}
	}
	if _, ok := EscapeChar('q'); ok {
		t.Error("EscapeChar('q') recognized")
	}
}
