package types

import "time"

// Clock abstracts time.Now for testability. Services receive a Clock instead
// of calling time.Now directly so that tests can pin the current time.
type Clock interface {
	Now() time.Time
}

// RealClock is the production Clock backed by time.Now.
type RealClock struct{}

// Now returns the current wall-clock time.
func (RealClock) Now() time.Time { return time.Now() }

// FixedClock is a Clock pinned to a single instant, for tests.
type FixedClock struct {
	T time.Time
}

// Now returns the pinned instant.
func (c FixedClock) Now() time.Time { return c.T }
