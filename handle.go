package minion

import (
	"errors"
	"fmt"
	"runtime/debug"
	"sync/atomic"
)

var errGoexit = errors.New("minion: step called runtime.Goexit")

// PanicError is the value Wait panics with when the spawned loop terminated
// abnormally. Value is whatever the step panicked with, Stack is the stack of
// the background goroutine at the time of the panic.
type PanicError struct {
	Value any
	Stack []byte
}

func (p *PanicError) Error() string {
	return fmt.Sprintf("minion: spawned loop panicked: %v\n\n%s", p.Value, p.Stack)
}

// Unwrap returns the panic value if it is an error.
func (p *PanicError) Unwrap() error {
	if err, ok := p.Value.(error); ok {
		return err
	}
	return nil
}

// Handle is returned by Spawn and controls exactly one background loop.
// Cancel is available on the Handle directly.
type Handle struct {
	canceller Canceller

	doneChan chan struct{}
	stopped  atomic.Bool
	waited   atomic.Bool

	// written by the loop goroutine before doneChan is closed
	err   error
	fault *PanicError
}

// Spawn starts c in a new goroutine and returns its Handle. The loop checks for
// cancellation before every step; the caller must not touch c afterwards.
func Spawn(c Cancellable) *Handle {
	h := &Handle{
		canceller: newCanceller(),
		doneChan:  make(chan struct{}),
	}
	go h.run(c)
	return h
}

func (h *Handle) run(c Cancellable) {
	var (
		err      error
		finished bool
	)

	defer func() {
		if !finished {
			h.fault = &PanicError{Value: recover(), Stack: debug.Stack()}
			if h.fault.Value == nil {
				h.fault.Value = errGoexit
			}
		}
		h.err = err
		h.stopped.Store(true)
		close(h.doneChan)
	}()

	err = drive(c, h.canceller.shouldRun)
	finished = true
}

// Canceller returns a new Canceller for the loop. It stays usable after the
// loop is gone, cancelling is then a no-op.
func (h *Handle) Canceller() Canceller {
	return h.canceller
}

// Cancel tells the loop to stop before its next step, see Canceller.Cancel.
func (h *Handle) Cancel() {
	h.canceller.Cancel()
}

// IsCancelled returns true once the loop was told to stop.
func (h *Handle) IsCancelled() bool {
	return h.canceller.IsCancelled()
}

// Done returns a channel that is closed when the loop has stopped.
func (h *Handle) Done() <-chan struct{} {
	return h.doneChan
}

// IsStopped returns true if the loop is already finished, otherwise false.
func (h *Handle) IsStopped() bool {
	return h.stopped.Load()
}

// Wait blocks until the loop has stopped and returns the error of the failing
// step, or nil if it stopped after Break or cancellation.
//
// If a step panicked, Wait panics with a *PanicError in the calling goroutine.
// Wait must be called at most once.
func (h *Handle) Wait() error {
	if !h.waited.CompareAndSwap(false, true) {
		panic("minion: Wait called more than once")
	}

	<-h.doneChan

	if h.fault != nil {
		panic(h.fault)
	}
	return h.err
}

// Stop is a convenience function which calls Cancel and then Wait.
func (h *Handle) Stop() error {
	h.Cancel()
	return h.Wait()
}
