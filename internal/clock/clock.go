// Package clock abstracts the current time so batch timestamps can be fixed
// in tests.
package clock

import "time"

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}

// System reads the wall clock.
type System struct{}

// Now returns the current local time.
func (System) Now() time.Time {
	return time.Now()
}

// Fixed always returns the same instant until moved.
type Fixed struct {
	current time.Time
}

// NewFixed creates a Fixed clock at t.
func NewFixed(t time.Time) *Fixed {
	return &Fixed{current: t}
}

// Now returns the fixed time.
func (c *Fixed) Now() time.Time {
	return c.current
}

// Advance moves the clock forward by d.
func (c *Fixed) Advance(d time.Duration) {
	c.current = c.current.Add(d)
}
