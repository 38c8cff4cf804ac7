// Package encode renders IR trees back to canonical literal text.
//
// The canonical form is single-line: single-quoted strings with the
// standard escape set, culture-invariant numbers, a forced trailing
// comma in one-element tuples, and ", " / ": " separators. Floats
// always carry a '.' or exponent so they re-parse as floats.
//
// Encode also bridges IR trees to JSON and YAML for interop and
// diagnostics.
package encode
