package session

import "errors"

// Lifecycle errors. Store failures are wrapped with %w and carry no sentinel;
// anything that is not one of these is a persistence problem.
var (
	// ErrAuthRequired means no owner could be resolved; nothing was written.
	ErrAuthRequired = errors.New("sign-in required")

	// ErrNotFound means the session does not exist, is deleted, or belongs
	// to someone else. Safe to retry after a refresh.
	ErrNotFound = errors.New("session not found")

	// ErrInvalidState means the requested transition is not legal from the
	// session's current status. The session was not mutated.
	ErrInvalidState = errors.New("invalid session state")

	// ErrUnskippable means the queue has nothing to defer the current
	// exercise behind.
	ErrUnskippable = errors.New("exercise cannot be skipped")
)
