// Package format names the output formats shared by encode and the
// pylit CLI.
package format
