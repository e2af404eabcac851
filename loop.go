package minion

import "fmt"

// LoopState tells the loop driver what to do after a step.
type LoopState int

const (
	// Continue asks the driver to run another step.
	Continue LoopState = iota
	// Break stops the loop, reporting success.
	Break
)

func (s LoopState) String() string {
	switch s {
	case Continue:
		return "Continue"
	case Break:
		return "Break"
	default:
		return fmt.Sprintf("LoopState(%d)", int(s))
	}
}

// Cancellable is a unit of work that is executed repeatedly, one Step at a time.
//
// Step may block for as long as it needs to. Cancellation requested through a
// Canceller is only observed between steps, never while a step is running.
type Cancellable interface {
	Step() (LoopState, error)
}

// StepFunc adapts an ordinary function to the Cancellable interface.
type StepFunc func() (LoopState, error)

// Step calls f.
func (f StepFunc) Step() (LoopState, error) {
	return f()
}

// Run executes c in the calling goroutine until a step returns Break or an error.
// The error of the failing step is returned as is. Run can not be cancelled,
// use Spawn for that.
func Run(c Cancellable) error {
	for {
		state, err := c.Step()
		if err != nil {
			return err
		}
		if state == Break {
			return nil
		}
	}
}

// drive is the cancellation aware version of Run. keepRunning is checked
// before every step.
func drive(c Cancellable, keepRunning func() bool) error {
	for keepRunning() {
		state, err := c.Step()
		if err != nil {
			return err
		}
		if state == Break {
			return nil
		}
	}
	return nil
}
