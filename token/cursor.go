package token

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Cursor walks an in-memory character sequence with a movable read
// position. Bookmark and RewindTo are the mechanism backtracking
// parsers rely on. A Cursor does no I/O; its only side effect is
// position mutation.
type Cursor struct {
	runes []rune
	pos   int
}

// Mark is an opaque cursor position usable with RewindTo.
type Mark int

func NewCursor(s string) *Cursor {
	return &Cursor{runes: []rune(s)}
}

// NewCursorBytes decodes d as UTF-8 before constructing the cursor.
// Invalid byte sequences are reported as ErrBadUTF8, distinct from
// any grammar error.
func NewCursorBytes(d []byte) (*Cursor, error) {
	if !utf8.Valid(d) {
		return nil, ErrBadUTF8
	}
	return NewCursor(string(d)), nil
}

// Peek returns the character at the current position without
// advancing.
func (c *Cursor) Peek() (rune, error) {
	if c.pos >= len(c.runes) {
		return 0, ErrEndOfInput
	}
	return c.runes[c.pos], nil
}

// Read returns the current character and advances by one.
func (c *Cursor) Read() (rune, error) {
	r, err := c.Peek()
	if err != nil {
		return 0, err
	}
	c.pos++
	return r, nil
}

// ReadN returns the next n characters as text and advances past them.
func (c *Cursor) ReadN(n int) (string, error) {
	if c.pos+n > len(c.runes) {
		return "", ErrEndOfInput
	}
	s := string(c.runes[c.pos : c.pos+n])
	c.pos += n
	return s, nil
}

// ScanWhile greedily consumes characters in set, returning the
// consumed text. Zero matches is not an error; the empty string is a
// valid result.
func (c *Cursor) ScanWhile(set string) string {
	start := c.pos
	for c.pos < len(c.runes) && strings.ContainsRune(set, c.runes[c.pos]) {
		c.pos++
	}
	return string(c.runes[start:c.pos])
}

// ScanUntil greedily consumes characters not in set, returning the
// consumed text.
func (c *Cursor) ScanUntil(set string) string {
	start := c.pos
	for c.pos < len(c.runes) && !strings.ContainsRune(set, c.runes[c.pos]) {
		c.pos++
	}
	return string(c.runes[start:c.pos])
}

// SkipWhitespace consumes contiguous whitespace.
func (c *Cursor) SkipWhitespace() {
	for c.pos < len(c.runes) && unicode.IsSpace(c.runes[c.pos]) {
		c.pos++
	}
}

func (c *Cursor) Bookmark() Mark {
	return Mark(c.pos)
}

func (c *Cursor) RewindTo(m Mark) {
	c.pos = int(m)
}

// Rewind steps back n characters, used after a committed-too-eager
// read.
func (c *Cursor) Rewind(n int) {
	c.pos -= n
	if c.pos < 0 {
		c.pos = 0
	}
}

// HasMore reports whether unread input remains.
func (c *Cursor) HasMore() bool {
	return c.pos < len(c.runes)
}

// Offset reports the current position in characters from the start of
// the input.
func (c *Cursor) Offset() int {
	return c.pos
}
