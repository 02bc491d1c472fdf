package session

import "time"

// Clock supplies wall-clock readings. Injected so lifecycle and timer logic
// can be tested against simulated suspensions.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

// SystemClock returns the real wall clock, in UTC.
func SystemClock() Clock { return systemClock{} }
