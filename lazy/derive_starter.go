package lazy

// DeriveStarter builds a starter that, while the output signal is started,
// keeps it set to mapper applied to each value of input. onStart, when given,
// runs before the wiring is made; its stopper runs before the wiring is torn
// down.
func DeriveStarter[T, R any](input Readable[T], mapper func(T) R, onStart Starter[R]) Starter[R] {
	return func(h *Handle[R]) Stopper {
		var stop Stopper
		if onStart != nil {
			stop = onStart(h)
		}
		unsubscribe := input.Subscribe(func(v T) Invalidator {
			h.Set(mapper(v))
			return nil
		})

		return func() {
			if stop != nil {
				stop()
			}
			unsubscribe()
		}
	}
}
