// Package backpressure implements a time gate that Azure API clients consult
// before sending requests.
package backpressure

import (
	"sync"
	"time"
)

// Backpressure holds the earliest point in time at which the next request
// may be sent. The zero value is ready to use and lets every request through.
type Backpressure struct {
	mutex     sync.RWMutex
	notBefore time.Time
}

// NotBefore moves the gate to t. Moving the gate backwards is ignored, so
// concurrent 429 responses cannot shorten an existing wait.
func (g *Backpressure) NotBefore(t time.Time) {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	if t.After(g.notBefore) {
		g.notBefore = t
	}
}

func (g *Backpressure) CanProceed() bool {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	return time.Now().After(g.notBefore)
}

func (g *Backpressure) RetryAfter() time.Time {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	return g.notBefore
}
