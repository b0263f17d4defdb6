package lazy

import (
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/rs/zerolog"
)

var nopLogger = zerolog.Nop()

type subscription[T any] struct {
	fn Subscriber[T]
	// pending holds every invalidator this subscriber returned that has not
	// run yet. A re-entrant Set can leave more than one.
	pending []*entry[Invalidator]
}

func (sub *subscription[T]) track(e *entry[Invalidator]) {
	live := sub.pending[:0]
	for _, p := range sub.pending {
		if p.live {
			live = append(live, p)
		}
	}
	sub.pending = append(live, e)
}

type derivedEntry struct {
	// mapper is held only to keep its closure, and so its key, alive.
	mapper any
	signal any
}

// Signal is a mutable value that notifies subscribers when it changes and runs
// starters and stoppers as it moves between started and stopped.
//
// A signal starts the first time it is read or gains its first subscriber,
// and stops when its last subscriber leaves. A read alone never stops it
// again. Every operation runs synchronously on the caller's goroutine; a
// Signal is not safe for concurrent use. Listeners may freely call back into
// the signal while it is notifying them.
type Signal[T any] struct {
	val     T
	started bool

	subscribers   callbacks[*subscription[T]]
	invalidators  callbacks[Invalidator]
	starters      callbacks[Starter[T]]
	stoppers      callbacks[Stopper]
	stopListeners callbacks[Stopper]

	derived      map[uintptr]derivedEntry
	connectedIn  mapset.Set[Readable[T]]
	connectedOut mapset.Set[Writable[T]]

	equal func(a, b T) bool
	h     *Handle[T]
	name  string
	log   *zerolog.Logger
}

// New creates a stopped signal holding value. Each onStart is registered as a
// starter, in order.
func New[T any](value T, onStart ...Starter[T]) *Signal[T] {
	s := &Signal[T]{
		val:   value,
		equal: Compare[T],
		log:   &nopLogger,
	}
	for _, fn := range onStart {
		if fn != nil {
			s.starters.add(fn)
		}
	}
	return s
}

// WithEquals replaces the equality rule used by Set.
func (s *Signal[T]) WithEquals(fn func(a, b T) bool) *Signal[T] {
	if fn == nil {
		fn = Compare[T]
	}
	s.equal = fn
	return s
}

// WithLogger sets the logger lifecycle events are written to at debug level.
func (s *Signal[T]) WithLogger(l *zerolog.Logger) *Signal[T] {
	if l == nil {
		l = &nopLogger
	}
	s.log = l
	return s
}

// WithName labels the signal in log output.
func (s *Signal[T]) WithName(name string) *Signal[T] {
	s.name = name
	return s
}

// Readonly returns s typed without its mutators. It is the same instance.
func (s *Signal[T]) Readonly() Readable[T] {
	return s
}

// Started reports whether the signal is started.
func (s *Signal[T]) Started() bool {
	return s.started
}

// Subscribed reports whether the signal has at least one subscriber.
func (s *Signal[T]) Subscribed() bool {
	return s.subscribers.len() > 0
}

// Get starts the signal if needed and returns its value.
func (s *Signal[T]) Get() T {
	s.start()
	return s.val
}

// Set stores v and notifies subscribers, unless v equals the current value.
// The current value is read through Get, so Set starts a stopped signal.
func (s *Signal[T]) Set(v T) {
	if s.equal(s.Get(), v) {
		return
	}
	s.val = v
	s.Trigger()
}

// Update sets the value to fn applied to the current one.
func (s *Signal[T]) Update(fn func(T) T) {
	s.Set(fn(s.Get()))
}

// Trigger runs pending invalidators, then calls every subscriber with the
// current value, whether or not it changed.
func (s *Signal[T]) Trigger() {
	s.invalidators.consume(func(inv Invalidator) {
		inv()
	})
	s.subscribers.each(s.invokeSubscriber)
}

// Subscribe calls onValue with the current value right away, then on every
// change until the returned func is called.
func (s *Signal[T]) Subscribe(onValue Subscriber[T]) Unsubscriber {
	sub := &subscription[T]{fn: onValue}
	s.invokeSubscriber(sub)
	return s.subscribe(sub)
}

// SubscribeSoon calls onNextValue on every change until the returned func is
// called, skipping the immediate call.
func (s *Signal[T]) SubscribeSoon(onNextValue Subscriber[T]) Unsubscriber {
	return s.subscribe(&subscription[T]{fn: onNextValue})
}

func (s *Signal[T]) subscribe(sub *subscription[T]) Unsubscriber {
	e := s.subscribers.add(sub)
	s.start()

	return func() {
		if !s.subscribers.remove(e) {
			return
		}
		pending := sub.pending
		sub.pending = nil
		for _, p := range pending {
			if s.invalidators.remove(p) {
				p.fn()
			}
		}
		if s.subscribers.len() == 0 {
			s.stop()
		}
	}
}

// SubscribeStart registers onStart to run on every start. If the signal is
// already started it also runs right away.
func (s *Signal[T]) SubscribeStart(onStart Starter[T]) Unsubscriber {
	if s.started {
		s.invokeStarter(onStart)
	}
	return s.SubscribeStartSoon(onStart)
}

// SubscribeStartSoon registers onNextStart to run on every future start.
func (s *Signal[T]) SubscribeStartSoon(onNextStart Starter[T]) Unsubscriber {
	e := s.starters.add(onNextStart)
	return func() {
		s.starters.remove(e)
	}
}

// SubscribeStop registers onStop to run on every stop. If the signal is
// stopped it also runs right away.
func (s *Signal[T]) SubscribeStop(onStop Stopper) Unsubscriber {
	if !s.started {
		onStop()
	}
	return s.SubscribeStopSoon(onStop)
}

// SubscribeStopSoon registers onNextStop to run on every future stop.
func (s *Signal[T]) SubscribeStopSoon(onNextStop Stopper) Unsubscriber {
	e := s.stopListeners.add(onNextStop)
	return func() {
		s.stopListeners.remove(e)
	}
}

// In makes s mirror from while s is started. Repeat calls with the same source
// are ignored.
func (s *Signal[T]) In(from Readable[T]) Writable[T] {
	if s.connectedIn == nil {
		s.connectedIn = mapset.NewThreadUnsafeSet[Readable[T]]()
	}
	if s.connectedIn.Contains(from) {
		return s
	}

	s.SubscribeStart(func(h *Handle[T]) Stopper {
		return Stopper(from.Subscribe(func(v T) Invalidator {
			h.Set(v)
			return nil
		}))
	})
	s.connectedIn.Add(from)

	return s
}

// Out pushes the values of s into to while to is started, and returns to.
// Every start of to subscribes to s again and every stop unsubscribes. Repeat
// calls with the same target are ignored; the wiring is permanent and is not
// undone when to stops.
func (s *Signal[T]) Out(to Writable[T]) Writable[T] {
	if s.connectedOut == nil {
		s.connectedOut = mapset.NewThreadUnsafeSet[Writable[T]]()
	}
	if s.connectedOut.Contains(to) {
		return to
	}
	s.connectedOut.Add(to)

	to.SubscribeStart(func(*Handle[T]) Stopper {
		unsubscribe := s.Subscribe(func(v T) Invalidator {
			to.Set(v)
			return nil
		})
		return Stopper(unsubscribe)
	})

	return to
}

// Destroy runs pending invalidators, stoppers and stop listeners, drops all
// subscribers and releases the value. The signal must not be used afterwards.
func (s *Signal[T]) Destroy() {
	s.log.Debug().
		Str("signal", s.name).
		Int("subscribers", s.subscribers.len()).
		Msg("destroy")

	run := func(fn Invalidator) {
		fn()
	}
	s.invalidators.consume(run)
	s.stoppers.consume(run)
	s.stopListeners.each(run)
	s.subscribers.clear()
	s.started = false

	var zero T
	s.val = zero
	s.derived = nil
}

// ValueOf returns the value's own primitive form when it has one (a
// ValueOf() any method), and the value itself otherwise. It starts the
// signal, like Get.
func (s *Signal[T]) ValueOf() any {
	v := s.Get()
	if p, ok := any(v).(interface{ ValueOf() any }); ok {
		return p.ValueOf()
	}
	return v
}

func (s *Signal[T]) start() {
	if s.started {
		return
	}
	s.started = true
	s.log.Debug().
		Str("signal", s.name).
		Int("starters", s.starters.len()).
		Msg("start")

	s.starters.each(s.invokeStarter)
}

func (s *Signal[T]) stop() {
	if !s.started {
		return
	}
	s.started = false
	s.log.Debug().
		Str("signal", s.name).
		Int("stoppers", s.stoppers.len()).
		Msg("stop")

	s.stoppers.consume(func(stop Stopper) {
		stop()
	})
	s.stopListeners.each(func(stop Stopper) {
		stop()
	})
}

func (s *Signal[T]) invokeSubscriber(sub *subscription[T]) {
	if inv := sub.fn(s.Get()); inv != nil {
		sub.track(s.invalidators.add(inv))
	}
}

func (s *Signal[T]) invokeStarter(starter Starter[T]) {
	if stop := starter(s.handle()); stop != nil {
		s.stoppers.add(stop)
	}
}

func (s *Signal[T]) deriveCache() map[uintptr]derivedEntry {
	if s.derived == nil {
		s.derived = make(map[uintptr]derivedEntry)
	}
	return s.derived
}

func (s *Signal[T]) value() any {
	return s.Get()
}

func (s *Signal[T]) subscribeSoonAny(fn func(any)) Unsubscriber {
	return s.SubscribeSoon(func(v T) Invalidator {
		fn(v)
		return nil
	})
}
