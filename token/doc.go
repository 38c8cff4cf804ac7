// Package token provides the character-level scanning layer for
// literal expressions: a seekable Cursor with bookmark/rewind support
// for backtracking parsers, plus quoting and escaping for string
// literals.
package token
