// Package schedule provides the periodic-callback primitives the driver runs
// on. A Scheduler only has to repeat a callback and cancel it.
package schedule

import (
	"sync"
	"time"
)

// Scheduler requests a callback every period until the returned cancel func
// is called. Cancel must be idempotent and must not block, since it may be
// invoked from inside fn.
type Scheduler interface {
	Every(period time.Duration, fn func()) (cancel func())
}

// Ticker runs callbacks from a time.Ticker on a dedicated goroutine
type Ticker struct{}

// Every implements Scheduler
func (Ticker) Every(period time.Duration, fn func()) func() {
	var (
		t    = time.NewTicker(period)
		done = make(chan struct{})
		once sync.Once
	)

	go func() {
		defer t.Stop()
		for {
			select {
			case <-done:
				return
			case <-t.C:
				select {
				case <-done:
					return
				default:
				}
				fn()
			}
		}
	}()

	return func() { once.Do(func() { close(done) }) }
}
