package state

import (
	"sync/atomic"

	"github.com/google/uuid"
)

// Clock counts mutations of a session's curve set. Snapshots carry the value
// so readers on other goroutines can order them.
type Clock struct {
	rev atomic.Uint64
}

// Tick advances the clock and returns the new revision.
func (c *Clock) Tick() uint64 {
	return c.rev.Add(1)
}

// Now returns the current revision without advancing it.
func (c *Clock) Now() uint64 {
	return c.rev.Load()
}

func newSessionID() string {
	return uuid.NewString()
}
