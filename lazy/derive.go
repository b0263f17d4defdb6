package lazy

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Prefix marks source keys in Values, so a source named "count" is read as
// "$count".
const Prefix = "$"

// Sources names the signals a multi-source derive or subscribe reads from.
type Sources map[string]Dependency

// Record holds the current value of each source under the source's own key.
type Record map[string]any

// Values holds the current value of each source under its Prefix-ed key. The
// map passed to a callback is reused and updated in place between calls, so
// it must not be retained past the call that received it.
type Values map[string]any

// Pick reads key from v as a T. Missing keys and values of another type give
// the zero T.
func Pick[T any](v Values, key string) T {
	t, _ := v[key].(T)
	return t
}

func sortedKeys(sources Sources) []string {
	keys := maps.Keys(sources)
	slices.Sort(keys)
	return keys
}

// DeriveRecord returns a signal of the current values of sources. The record
// is a single map updated in place: every read returns the same map, and each
// source change writes its field and triggers the signal explicitly, since the
// record itself never compares unequal to its previous state. Anyone holding
// the record will see fields change under them.
//
// While started, the signal subscribes to every source. On start the record
// is re-read from the sources to pick up changes made while it was stopped.
func DeriveRecord(sources Sources) *Signal[Record] {
	keys := sortedKeys(sources)
	record := make(Record, len(keys))
	if len(keys) == 0 {
		return New(record)
	}
	for _, k := range keys {
		record[k] = sources[k].value()
	}

	return New(record, func(h *Handle[Record]) Stopper {
		unsubscribes := make([]Unsubscriber, 0, len(keys))
		for _, k := range keys {
			unsubscribes = append(unsubscribes, sources[k].subscribeSoonAny(func(v any) {
				record[k] = v
				h.Trigger()
			}))
		}

		changed := false
		for _, k := range keys {
			if v := sources[k].value(); !compareAny(record[k], v) {
				record[k] = v
				changed = true
			}
		}
		if changed {
			h.Trigger()
		}

		return func() {
			for _, unsubscribe := range unsubscribes {
				unsubscribe()
			}
		}
	})
}

// Derive returns a signal of compute applied to the current values of
// sources, keyed with Prefix. compute runs again, synchronously, on every
// single source change while the signal is started; changes are not batched.
//
// On start the values are re-read from the sources and recomputed, then
// onStart runs and sees the fresh value. Its stopper runs after the sources
// are unsubscribed. With no sources compute runs once and the signal never
// changes by itself.
func Derive[R any](sources Sources, compute func(Values) R, onStart ...Starter[R]) *Signal[R] {
	keys := sortedKeys(sources)
	values := make(Values, len(keys))
	if len(keys) == 0 {
		return New(compute(values), onStart...)
	}
	for _, k := range keys {
		values[Prefix+k] = sources[k].value()
	}

	var starter Starter[R]
	if len(onStart) > 0 {
		starter = onStart[0]
	}

	return New(compute(values), func(h *Handle[R]) Stopper {
		unsubscribes := make([]Unsubscriber, 0, len(keys))
		for _, k := range keys {
			unsubscribes = append(unsubscribes, sources[k].subscribeSoonAny(func(v any) {
				values[Prefix+k] = v
				h.Set(compute(values))
			}))
		}
		for _, k := range keys {
			values[Prefix+k] = sources[k].value()
		}
		h.Set(compute(values))

		var stop Stopper
		if starter != nil {
			stop = starter(h)
		}

		return func() {
			for _, unsubscribe := range unsubscribes {
				unsubscribe()
			}
			if stop != nil {
				stop()
			}
		}
	})
}
