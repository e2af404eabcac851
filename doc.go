// Package minion runs a repeatable unit of work as a background loop that can
// be cancelled from another goroutine. Example usages:
//
//	// 1. Synchronously, until a step returns Break or an error.
//	err := minion.Run(unit)
//
//	// 2. In the background.
//	handle := minion.Spawn(unit)
//	canceller := handle.Canceller()
//	go func() {
//		// ..... after some time .....
//		canceller.Cancel()
//	}()
//	if err := handle.Wait(); err != nil {
//		// handle error
//	}
//
// Cancellation is cooperative: it is checked before every step, so a step
// that blocks delays the stop until it returns. A cancelled loop is reported
// as success, exactly like a loop that returned Break.
package minion
