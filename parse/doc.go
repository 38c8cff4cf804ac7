// Package parse parses literal expression text into IR nodes.
//
// # Usage
//
//	// Parse literal text
//	node, err := parse.Parse([]byte(`{'name': 'alice', 'age': 30}`))
//	if err != nil {
//	    return err
//	}
//
//	// Parse from string
//	node, err := parse.ParseString(`[1, 2, 3]`)
//
//	// Parse with options
//	node, err := parse.Parse(data, parse.MaxDepth(64))
//
// The grammar covers the literal-value subset of Python expression
// syntax: numbers, strings, booleans, None, complex numbers, tuples,
// lists, sets and dicts, arbitrarily nested. It is not an expression
// evaluator: operators, calls and variables are rejected.
//
// Local ambiguities are resolved by bounded backtracking: at '{' a
// set is attempted before a dict, at '(' a complex number before a
// tuple, and a bare scalar tries complex, float, int in that order.
//
// # Related Packages
//
//   - github.com/pylit-format/go-pylit/ir - IR representation
//   - github.com/pylit-format/go-pylit/encode - Encode IR to text
//   - github.com/pylit-format/go-pylit/token - Cursor and quoting
package parse
