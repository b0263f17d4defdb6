package lazy

// Subscriber receives values. It may return an Invalidator that runs before
// the next call, when the subscriber is removed, or when the signal is
// destroyed.
type Subscriber[T any] func(v T) Invalidator

// Starter runs each time a signal goes from stopped to started. The returned
// Stopper, if any, runs on the following stop.
type Starter[T any] func(h *Handle[T]) Stopper

// Dependency is the type-erased side of a signal used to combine signals of
// different value types.
type Dependency interface {
	value() any
	subscribeSoonAny(fn func(any)) Unsubscriber
}

// Readable is a signal seen without its mutators.
type Readable[T any] interface {
	Dependency

	Get() T
	Trigger()
	Destroy()
	Started() bool
	Subscribed() bool

	Subscribe(onValue Subscriber[T]) Unsubscriber
	SubscribeSoon(onNextValue Subscriber[T]) Unsubscriber
	SubscribeStart(onStart Starter[T]) Unsubscriber
	SubscribeStartSoon(onNextStart Starter[T]) Unsubscriber
	SubscribeStop(onStop Stopper) Unsubscriber
	SubscribeStopSoon(onNextStop Stopper) Unsubscriber

	Out(to Writable[T]) Writable[T]

	deriveCache() map[uintptr]derivedEntry
}

// Writable is a signal that can be written and wired to a source.
type Writable[T any] interface {
	Readable[T]

	Set(v T)
	Update(fn func(T) T)
	In(from Readable[T]) Writable[T]
}
