package session

// Queue is the session-local presentation order of exercises: a sequence of
// order values, initialized to identity. It is never persisted — only the
// per-order completion flags are written back at session completion — so a
// reload resets any skips, by design.
type Queue []int

// NewQueue returns the identity queue [0..n-1].
func NewQueue(n int) Queue {
	q := make(Queue, n)
	for i := range q {
		q[i] = i
	}
	return q
}

// At returns the stable order value at the given display position. Completion
// bookkeeping must always go through this, never the position itself.
func (q Queue) At(pos int) (int, bool) {
	if pos < 0 || pos >= len(q) {
		return 0, false
	}
	return q[pos], true
}

// Skip defers the exercise at pos to just after the next one, returning a new
// queue. The set of elements is unchanged. Returns ErrUnskippable when there
// is no later exercise to defer behind.
func (q Queue) Skip(pos int) (Queue, error) {
	if len(q) < 2 || pos < 0 || pos >= len(q)-1 {
		return q, ErrUnskippable
	}
	out := make(Queue, len(q))
	copy(out, q)
	out[pos], out[pos+1] = out[pos+1], out[pos]
	return out, nil
}

// Advance moves to the next position. The second result is true when the
// queue is exhausted, which signals the caller to complete the session.
func (q Queue) Advance(pos int) (int, bool) {
	if pos+1 >= len(q) {
		return pos, true
	}
	return pos + 1, false
}

// Retreat moves to the previous position, stopping at 0.
func (q Queue) Retreat(pos int) int {
	if pos <= 0 {
		return 0
	}
	return pos - 1
}
