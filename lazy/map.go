package lazy

// Map returns a signal holding mapper applied to the value of src. Calls with
// the same mapper func value return the same signal, and distinct func values
// get distinct signals. A func literal that captures nothing may evaluate to
// the same func value every time, so it shares one signal per source. The derived
// signal follows src only while it is itself started.
//
// Building the derived signal reads src, which starts it.
func Map[T, R any](src Readable[T], mapper func(T) R, onStart ...Starter[R]) *Signal[R] {
	cache := src.deriveCache()
	key := funcKey(mapper)
	if d, ok := cache[key]; ok {
		return d.signal.(*Signal[R])
	}

	var starter Starter[R]
	if len(onStart) > 0 {
		starter = onStart[0]
	}
	d := New(mapper(src.Get()), DeriveStarter(src, mapper, starter))
	cache[key] = derivedEntry{mapper: mapper, signal: d}

	return d
}
