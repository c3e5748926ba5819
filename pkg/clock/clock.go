// Package clock provides the time capability injected into every component
// that computes dates. Production wiring uses System; the demo simulation
// uses Simulated, which only moves when told to.
package clock

import (
	"sync"
	"time"
)

type Clock interface {
	Now() time.Time
}

// System reads the wall clock.
type System struct{}

func (System) Now() time.Time {
	return time.Now().UTC()
}

// Simulated is a manually advanced clock.
type Simulated struct {
	mu  sync.RWMutex
	now time.Time
}

func NewSimulated(start time.Time) *Simulated {
	return &Simulated{now: start.UTC()}
}

func (s *Simulated) Now() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.now
}

// Advance moves the clock forward and returns the new time.
func (s *Simulated) Advance(d time.Duration) time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = s.now.Add(d)
	return s.now
}

// SetTo jumps the clock to an absolute instant.
func (s *Simulated) SetTo(t time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = t.UTC()
}
