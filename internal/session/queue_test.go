package session

import (
	"errors"
	"testing"
)

// TestNewQueueIdentity verifies the initial queue is [0..n-1].
func TestNewQueueIdentity(t *testing.T) {
	q := NewQueue(4)
	want := Queue{0, 1, 2, 3}
	if !equalQueues(q, want) {
		t.Errorf("NewQueue(4) = %v, want %v", q, want)
	}
}

// TestSkipMovesCurrentBehindNext verifies [0,1,2,3] skipped at position 0
// becomes [1,0,2,3]: the current exercise slots in just after the next one.
func TestSkipMovesCurrentBehindNext(t *testing.T) {
	q := NewQueue(4)
	got, err := q.Skip(0)
	if err != nil {
		t.Fatalf("Skip(0) error: %v", err)
	}
	want := Queue{1, 0, 2, 3}
	if !equalQueues(got, want) {
		t.Errorf("Skip(0) = %v, want %v", got, want)
	}
	// Original queue untouched
	if !equalQueues(q, Queue{0, 1, 2, 3}) {
		t.Errorf("Skip mutated its receiver: %v", q)
	}
}

// TestSkipPreservesElements verifies skip at every legal position produces a
// permutation of the same elements with the skipped one gone from its slot.
func TestSkipPreservesElements(t *testing.T) {
	for n := 2; n <= 6; n++ {
		q := NewQueue(n)
		for pos := 0; pos < n-1; pos++ {
			got, err := q.Skip(pos)
			if err != nil {
				t.Fatalf("n=%d Skip(%d) error: %v", n, pos, err)
			}
			if len(got) != n {
				t.Fatalf("n=%d Skip(%d) changed length to %d", n, pos, len(got))
			}
			seen := make(map[int]bool, n)
			for _, v := range got {
				if seen[v] {
					t.Errorf("n=%d Skip(%d) duplicated element %d", n, pos, v)
				}
				seen[v] = true
			}
			for i := 0; i < n; i++ {
				if !seen[i] {
					t.Errorf("n=%d Skip(%d) lost element %d", n, pos, i)
				}
			}
			if got[pos] == q[pos] {
				t.Errorf("n=%d Skip(%d) left element %d in place", n, pos, q[pos])
			}
		}
	}
}

// TestSkipUnskippable verifies skip is rejected for single-element queues,
// the final position, and out-of-range positions.
func TestSkipUnskippable(t *testing.T) {
	tests := []struct {
		name string
		q    Queue
		pos  int
	}{
		{"single element", NewQueue(1), 0},
		{"last position", NewQueue(3), 2},
		{"negative position", NewQueue(3), -1},
		{"past end", NewQueue(3), 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.q.Skip(tt.pos)
			if !errors.Is(err, ErrUnskippable) {
				t.Errorf("Skip error = %v, want ErrUnskippable", err)
			}
			if !equalQueues(got, tt.q) {
				t.Errorf("rejected Skip changed queue: %v", got)
			}
		})
	}
}

// TestAdvanceAndRetreat verifies bounds handling and the exhaustion signal at
// the end of the queue.
func TestAdvanceAndRetreat(t *testing.T) {
	q := NewQueue(3)

	pos, done := q.Advance(0)
	if pos != 1 || done {
		t.Errorf("Advance(0) = (%d, %v), want (1, false)", pos, done)
	}
	pos, done = q.Advance(2)
	if !done {
		t.Errorf("Advance(last) = (%d, %v), want exhausted", pos, done)
	}

	if got := q.Retreat(2); got != 1 {
		t.Errorf("Retreat(2) = %d, want 1", got)
	}
	if got := q.Retreat(0); got != 0 {
		t.Errorf("Retreat(0) = %d, want 0", got)
	}
}

// TestAtBoundsChecked verifies the stable-order lookup by display position.
func TestAtBoundsChecked(t *testing.T) {
	q := Queue{2, 0, 1}
	if v, ok := q.At(0); !ok || v != 2 {
		t.Errorf("At(0) = (%d, %v), want (2, true)", v, ok)
	}
	if _, ok := q.At(3); ok {
		t.Error("At(3) ok = true, want false")
	}
	if _, ok := q.At(-1); ok {
		t.Error("At(-1) ok = true, want false")
	}
}

func equalQueues(a, b Queue) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
