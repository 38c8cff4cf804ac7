package parse

type ParseOption func(*parseOpts)

type parseOpts struct {
	maxDepth int
}

const defaultMaxDepth = 10000

// MaxDepth bounds expression nesting. Parses of deeper input fail
// with ErrMaxDepth instead of exhausting the goroutine stack, which
// matters for attacker-controlled input.
func MaxDepth(n int) ParseOption {
	return func(po *parseOpts) { po.maxDepth = n }
}
