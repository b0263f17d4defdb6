package lazy

import "sync"

// Invalidator cleans up after one subscriber notification. It runs before the
// next notification, when the subscriber is removed, or when the signal is
// destroyed.
type Invalidator func()

// Stopper undoes whatever a Starter set up. It runs once, on the next stop.
type Stopper = Invalidator

// Unsubscriber removes a listener. Calling it more than once is a no-op.
type Unsubscriber func()

// Promise delivers a cleanup once some asynchronous setup has finished. A nil
// Invalidator, or closing the channel without sending, means there is nothing
// to clean up.
type Promise <-chan Invalidator

// CoerceInvalidator normalises whatever a listener handed back into a single
// cleanup, or nil when there is none. Accepted inputs are nil, an Invalidator
// (or any plain func()), an Unsubscriber, and a Promise or channel of
// Invalidator. Anything else is treated as no cleanup.
func CoerceInvalidator(maybe any) Invalidator {
	switch v := maybe.(type) {
	case nil:
		return nil
	case Invalidator:
		return v
	case func():
		return v
	case Unsubscriber:
		return Invalidator(v)
	case Promise:
		return Await(v)
	case <-chan Invalidator:
		return Await(v)
	case chan Invalidator:
		return Await(v)
	default:
		return nil
	}
}

// Await wraps a pending cleanup in a synchronous Invalidator. Invoking it
// returns immediately; a detached goroutine waits for the promise and runs the
// resolved cleanup. Panics raised by that cleanup are recovered and dropped,
// so nothing about its outcome reaches the caller. Callers that need cleanup
// to finish before their next read or write must use a synchronous
// Invalidator instead.
func Await(p Promise) Invalidator {
	if p == nil {
		return nil
	}
	resolved := sync.OnceValue(func() Invalidator {
		return <-p
	})
	return func() {
		go func() {
			defer func() {
				_ = recover()
			}()
			if fn := resolved(); fn != nil {
				fn()
			}
		}()
	}
}
