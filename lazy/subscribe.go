package lazy

// Subscribe observes several signals at once. callback runs right away with
// the current values, keyed with Prefix, and again with the full, updated set
// after every single source change. The Invalidator it returns runs before
// the next call and once more on unsubscribe.
//
// The sources are subscribed immediately. The returned func unsubscribes
// from all of them and runs the last pending invalidator.
func Subscribe(sources Sources, callback func(Values) Invalidator) Unsubscriber {
	keys := sortedKeys(sources)
	values := make(Values, len(keys))
	for _, k := range keys {
		values[Prefix+k] = sources[k].value()
	}

	var invalidator Invalidator
	invoke := func() {
		inv := callback(values)
		// a callback that writes to one of its own sources is called again
		// before it returns; run what that nested call left behind
		if prev := invalidator; prev != nil {
			invalidator = nil
			prev()
		}
		invalidator = inv
	}
	consume := func() {
		if invalidator == nil {
			return
		}
		inv := invalidator
		invalidator = nil
		inv()
	}

	unsubscribes := make([]Unsubscriber, 0, len(keys))
	for _, k := range keys {
		unsubscribes = append(unsubscribes, sources[k].subscribeSoonAny(func(v any) {
			consume()
			values[Prefix+k] = v
			invoke()
		}))
	}

	invoke()

	return func() {
		for _, unsubscribe := range unsubscribes {
			unsubscribe()
		}
		consume()
	}
}
