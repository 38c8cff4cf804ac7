package parse

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/pylit-format/go-pylit/debug"
	"github.com/pylit-format/go-pylit/ir"
	"github.com/pylit-format/go-pylit/token"
)

// Parse decodes d as UTF-8 and parses exactly one literal expression.
// Grammar failures are reported as *Error wrapping ErrParse; invalid
// UTF-8 is token.ErrBadUTF8.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	cur, err := token.NewCursorBytes(d)
	if err != nil {
		return nil, err
	}
	return parseCursor(cur, opts)
}

// ParseString parses exactly one literal expression from s.
func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	return parseCursor(token.NewCursor(s), opts)
}

func parseCursor(cur *token.Cursor, opts []ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{maxDepth: defaultMaxDepth}
	for _, f := range opts {
		f(pOpts)
	}
	p := &parser{cur: cur, opts: pOpts}
	node, err := p.parseExpr()
	if err == nil && cur.HasMore() {
		err = fmt.Errorf("%w: %w", ErrParse, ErrGarbage)
	}
	if err != nil {
		if debug.Parse() {
			debug.Logf("parse failed at %d: %v\n", cur.Offset(), err)
		}
		return nil, &Error{Err: err, Offset: cur.Offset()}
	}
	return node, nil
}

type parser struct {
	cur   *token.Cursor
	opts  *parseOpts
	depth int
}

type parseFn func() (*ir.Node, error)

// alt attempts each alternative in priority order, rewinding the
// cursor between attempts. The last alternative's error propagates.
func (p *parser) alt(fns ...parseFn) (*ir.Node, error) {
	bm := p.cur.Bookmark()
	var (
		node *ir.Node
		err  error
	)
	for _, fn := range fns {
		node, err = fn()
		if err == nil {
			return node, nil
		}
		p.cur.RewindTo(bm)
	}
	return nil, err
}

func (p *parser) parseExpr() (*ir.Node, error) {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > p.opts.maxDepth {
		return nil, fmt.Errorf("%w: %w (%d)", ErrParse, ErrMaxDepth, p.opts.maxDepth)
	}
	p.cur.SkipWhitespace()
	r, err := p.cur.Peek()
	if err != nil {
		return nil, fmt.Errorf("%w: empty expression", ErrParse)
	}
	var node *ir.Node
	switch r {
	case '(':
		node, err = p.alt(p.parseComplex, p.parseTuple)
	case '[':
		node, err = p.parseList()
	case '{':
		node, err = p.alt(p.parseSet, p.parseDict)
	case '\'', '"':
		node, err = p.parseString()
	case 'T', 'F':
		node, err = p.parseBool()
	case 'N':
		node, err = p.parseNone()
	default:
		node, err = p.alt(p.parseComplex, p.parseFloat, p.parseInt)
	}
	if err != nil {
		return nil, err
	}
	p.cur.SkipWhitespace()
	return node, nil
}

func (p *parser) expect(want rune) error {
	r, err := p.cur.Read()
	if err != nil || r != want {
		return fmt.Errorf("%w: expected %q", ErrParse, want)
	}
	return nil
}

// parseInt parses '-'? digit+ and picks the narrowest subtype: int32,
// then int64, then an arbitrary-precision decimal digit string.
func (p *parser) parseInt() (*ir.Node, error) {
	lit := p.scanSign()
	digits := p.cur.ScanWhile(token.Digits)
	if digits == "" {
		return nil, fmt.Errorf("%w: expected integer", ErrParse)
	}
	lit += digits
	if i, err := strconv.ParseInt(lit, 10, 32); err == nil {
		return ir.FromInt32(int32(i)), nil
	}
	if i, err := strconv.ParseInt(lit, 10, 64); err == nil {
		return ir.FromInt64(i), nil
	}
	return ir.FromDecimal(lit), nil
}

func (p *parser) parseFloat() (*ir.Node, error) {
	lit, err := p.scanFloat()
	if err != nil {
		return nil, err
	}
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return nil, fmt.Errorf("%w: bad float %q", ErrParse, lit)
	}
	return ir.FromFloat(f), nil
}

// scanFloat consumes ['-'] digit* '.'? digit* exponent?. A literal
// with no '.', 'e' or 'E' is rejected so a plain digit run falls
// through to integer parsing instead of being accepted as a float
// with zero fraction.
func (p *parser) scanFloat() (string, error) {
	b := &strings.Builder{}
	b.WriteString(p.scanSign())
	b.WriteString(p.cur.ScanWhile(token.Digits))
	dotted := false
	if r, err := p.cur.Peek(); err == nil && r == '.' {
		p.cur.Read()
		b.WriteByte('.')
		dotted = true
		b.WriteString(p.cur.ScanWhile(token.Digits))
	}
	hasExp := false
	if r, err := p.cur.Peek(); err == nil && (r == 'e' || r == 'E') {
		// the exponent needs at least one digit, otherwise the 'e'
		// is not part of this literal
		bm := p.cur.Bookmark()
		p.cur.Read()
		exp := string(r) + p.scanSign()
		if r, err := p.cur.Peek(); err == nil && r == '+' {
			p.cur.Read()
			exp += "+"
		}
		expDigits := p.cur.ScanWhile(token.Digits)
		if expDigits == "" {
			p.cur.RewindTo(bm)
		} else {
			hasExp = true
			b.WriteString(exp)
			b.WriteString(expDigits)
		}
	}
	if !dotted && !hasExp {
		return "", fmt.Errorf("%w: not a float", ErrParse)
	}
	return b.String(), nil
}

func (p *parser) scanSign() string {
	if r, err := p.cur.Peek(); err == nil && r == '-' {
		p.cur.Read()
		return "-"
	}
	return ""
}

// parseComplex parses '(' (float|int) imaginary ')' or a bare
// imaginary literal. The mandatory trailing 'j' is what makes the
// attempt fail naturally on tuples.
func (p *parser) parseComplex() (*ir.Node, error) {
	r, err := p.cur.Peek()
	if err != nil {
		return nil, fmt.Errorf("%w: expected complex", ErrParse)
	}
	if r != '(' {
		im, err := p.parseImaginary()
		if err != nil {
			return nil, err
		}
		return ir.FromComplex(0, im), nil
	}
	p.cur.Read()
	p.cur.SkipWhitespace()
	re, err := p.parseRealPart()
	if err != nil {
		return nil, err
	}
	im, err := p.parseImaginary()
	if err != nil {
		return nil, err
	}
	p.cur.SkipWhitespace()
	if err := p.expect(')'); err != nil {
		return nil, err
	}
	return ir.FromComplex(re, im), nil
}

func (p *parser) parseRealPart() (float64, error) {
	node, err := p.alt(p.parseFloat, p.parseInt)
	if err != nil {
		return 0, err
	}
	return numValue(node)
}

// parseImaginary parses ('+'|'-')? (float|int) 'j'.
func (p *parser) parseImaginary() (float64, error) {
	sign := 1.0
	if r, err := p.cur.Peek(); err == nil {
		switch r {
		case '+':
			p.cur.Read()
		case '-':
			p.cur.Read()
			sign = -1
		}
	}
	node, err := p.alt(p.parseFloat, p.parseInt)
	if err != nil {
		return 0, err
	}
	if r, err := p.cur.Read(); err != nil || r != 'j' {
		return 0, fmt.Errorf("%w: expected 'j'", ErrParse)
	}
	v, err := numValue(node)
	if err != nil {
		return 0, err
	}
	return sign * v, nil
}

func numValue(n *ir.Node) (float64, error) {
	switch {
	case n.Int32 != nil:
		return float64(*n.Int32), nil
	case n.Int64 != nil:
		return float64(*n.Int64), nil
	case n.Float64 != nil:
		return *n.Float64, nil
	}
	f, err := strconv.ParseFloat(n.Number, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("%w: bad number %q", ErrParse, n.Number)
	}
	return f, nil
}

// parseTuple handles the arity special cases: '()' is the empty
// tuple, a single element followed by ',' then ')' is a one-element
// tuple, and a trailing comma before ')' is tolerated.
func (p *parser) parseTuple() (*ir.Node, error) {
	if err := p.expect('('); err != nil {
		return nil, err
	}
	p.cur.SkipWhitespace()
	if r, err := p.cur.Peek(); err == nil && r == ')' {
		p.cur.Read()
		return ir.FromTuple(nil), nil
	}
	var elems []*ir.Node
	for {
		elt, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		elems = append(elems, elt)
		r, err := p.cur.Read()
		if err != nil {
			return nil, fmt.Errorf("%w: expected ')'", ErrParse)
		}
		switch r {
		case ')':
			return ir.FromTuple(elems), nil
		case ',':
			p.cur.SkipWhitespace()
			if r, err := p.cur.Peek(); err == nil && r == ')' {
				p.cur.Read()
				return ir.FromTuple(elems), nil
			}
		default:
			return nil, fmt.Errorf("%w: unexpected %q in tuple", ErrParse, r)
		}
	}
}

func (p *parser) parseList() (*ir.Node, error) {
	if err := p.expect('['); err != nil {
		return nil, err
	}
	p.cur.SkipWhitespace()
	if r, err := p.cur.Peek(); err == nil && r == ']' {
		p.cur.Read()
		return ir.FromList(nil), nil
	}
	elems, err := p.parseExprList(']')
	if err != nil {
		return nil, err
	}
	return ir.FromList(elems), nil
}

func (p *parser) parseSet() (*ir.Node, error) {
	if err := p.expect('{'); err != nil {
		return nil, err
	}
	p.cur.SkipWhitespace()
	// '{}' is the empty dict, never a set
	if r, err := p.cur.Peek(); err == nil && r == '}' {
		return nil, fmt.Errorf("%w: empty set", ErrParse)
	}
	elems, err := p.parseExprList('}')
	if err != nil {
		return nil, err
	}
	return ir.FromSet(elems), nil
}

func (p *parser) parseDict() (*ir.Node, error) {
	if err := p.expect('{'); err != nil {
		return nil, err
	}
	p.cur.SkipWhitespace()
	if r, err := p.cur.Peek(); err == nil && r == '}' {
		p.cur.Read()
		return ir.FromKeyVals(nil), nil
	}
	var kvs []ir.KeyVal
	for {
		key, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(':'); err != nil {
			return nil, err
		}
		val, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		kvs = append(kvs, ir.KeyVal{Key: key, Val: val})
		r, err := p.cur.Read()
		if err != nil {
			return nil, fmt.Errorf("%w: expected '}'", ErrParse)
		}
		if r == '}' {
			return ir.FromKeyVals(kvs), nil
		}
		if r != ',' {
			return nil, fmt.Errorf("%w: unexpected %q in dict", ErrParse, r)
		}
	}
}

// parseExprList parses expr (',' expr)* and consumes the closing
// delimiter.
func (p *parser) parseExprList(close rune) ([]*ir.Node, error) {
	var elems []*ir.Node
	for {
		elt, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		elems = append(elems, elt)
		r, err := p.cur.Read()
		if err != nil {
			return nil, fmt.Errorf("%w: expected %q", ErrParse, close)
		}
		if r == close {
			return elems, nil
		}
		if r != ',' {
			return nil, fmt.Errorf("%w: unexpected %q, expected %q or ','", ErrParse, r, close)
		}
	}
}

// parseString reads until the opening quote character reappears
// unescaped.
func (p *parser) parseString() (*ir.Node, error) {
	quote, err := p.cur.Read()
	if err != nil || (quote != '\'' && quote != '"') {
		return nil, fmt.Errorf("%w: expected string", ErrParse)
	}
	b := &strings.Builder{}
	for {
		r, err := p.cur.Read()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, ErrUnclosedString)
		}
		if r == quote {
			return ir.FromString(b.String()), nil
		}
		if r != '\\' {
			b.WriteRune(r)
			continue
		}
		esc, err := p.cur.Read()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, ErrUnclosedString)
		}
		if dec, ok := token.EscapeChar(esc); ok {
			b.WriteRune(dec)
		} else {
			// unrecognized escapes keep the backslash
			b.WriteByte('\\')
			b.WriteRune(esc)
		}
	}
}

func (p *parser) parseBool() (*ir.Node, error) {
	bm := p.cur.Bookmark()
	if s, err := p.cur.ReadN(4); err == nil && s == "True" {
		return ir.FromBool(true), nil
	}
	p.cur.RewindTo(bm)
	if s, err := p.cur.ReadN(5); err == nil && s == "False" {
		return ir.FromBool(false), nil
	}
	p.cur.RewindTo(bm)
	return nil, fmt.Errorf("%w: expected boolean", ErrParse)
}

func (p *parser) parseNone() (*ir.Node, error) {
	bm := p.cur.Bookmark()
	if s, err := p.cur.ReadN(4); err == nil && s == "None" {
		return ir.Null(), nil
	}
	p.cur.RewindTo(bm)
	return nil, fmt.Errorf("%w: expected None", ErrParse)
}
