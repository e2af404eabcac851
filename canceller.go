package minion

import "sync/atomic"

// Canceller requests a spawned loop to stop. Copies of a Canceller share the
// same flag, so a copy may be handed to any goroutine.
//
// The zero value is not attached to any loop and does nothing.
type Canceller struct {
	keepRunning *atomic.Bool
}

func newCanceller() Canceller {
	keepRunning := &atomic.Bool{}
	keepRunning.Store(true)
	return Canceller{keepRunning: keepRunning}
}

// Cancel tells the loop to stop before its next step. It does not wait for the
// loop to finish. Safe to call multiple times and from multiple goroutines.
func (c Canceller) Cancel() {
	if c.keepRunning == nil {
		return
	}
	c.keepRunning.Store(false)
}

// IsCancelled returns true once Cancel has been called on this Canceller or on
// any of its copies.
func (c Canceller) IsCancelled() bool {
	if c.keepRunning == nil {
		return false
	}
	return !c.keepRunning.Load()
}

func (c Canceller) shouldRun() bool {
	return c.keepRunning.Load()
}
