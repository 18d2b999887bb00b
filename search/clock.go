package search

import (
	"context"
	"time"
)

// Clock is a source of wall-clock time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// SystemClock reads the real time.
var SystemClock Clock = systemClock{}

// Deadline is passed down every level of the search. The zero Deadline
// never passes, not even when the context is done.
type Deadline struct {
	clock      Clock
	at         time.Time
	cancelable bool
}

// NewDeadline returns a deadline that passes once clock reaches at or the
// context is done.
func NewDeadline(clock Clock, at time.Time) Deadline {
	return Deadline{clock: clock, at: at, cancelable: true}
}

// Unbounded returns a deadline with no time limit that passes only once
// the context is done.
func Unbounded() Deadline {
	return Deadline{cancelable: true}
}

// Passed returns true once the time is up or the context is done.
func (d Deadline) Passed(ctx context.Context) bool {
	if d.cancelable && ctx.Err() != nil {
		return true
	}
	if d.clock == nil {
		return false
	}
	return !d.clock.Now().Before(d.at)
}
