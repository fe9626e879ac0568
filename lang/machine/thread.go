package machine

import "context"

// defaultMaxDepth bounds the evaluator's recursion depth so a
// pathologically recursive program fails with a RuntimeError instead of
// exhausting the host goroutine's stack. A depth ceiling is cheaper than
// an explicit work-stack machine and is sufficient here since tail calls
// are not optimized.
const defaultMaxDepth = 100000

// Thread carries the state of a single, single-threaded evaluation: a
// context for cooperative cancellation (e.g. a REPL's Ctrl-C handling)
// and a recursion-depth counter. A Thread must not be shared between
// concurrent evaluations; each independent evaluation needs its own
// Thread and its own Env chain.
type Thread struct {
	Ctx      context.Context
	MaxDepth int

	depth int
}

// NewThread returns a Thread bound to ctx with the default recursion
// depth ceiling.
func NewThread(ctx context.Context) *Thread {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Thread{Ctx: ctx, MaxDepth: defaultMaxDepth}
}

// enter increments the recursion depth, returning an error if the
// Thread's context was cancelled or the depth ceiling was exceeded. The
// caller must call the returned leave func (typically via defer) to
// restore the previous depth.
func (th *Thread) enter() (leave func(), err error) {
	if th.Ctx != nil {
		if cerr := th.Ctx.Err(); cerr != nil {
			return func() {}, cancelled(cerr)
		}
	}
	max := th.MaxDepth
	if max == 0 {
		max = defaultMaxDepth
	}
	th.depth++
	if th.depth > max {
		th.depth--
		return func() {}, recursionLimit()
	}
	return func() { th.depth-- }, nil
}
