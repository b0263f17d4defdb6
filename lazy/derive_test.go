package lazy_test

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/delaneyj/lazysignal/lazy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sameMap(t *testing.T, a, b lazy.Record) {
	t.Helper()
	assert.Equal(t, reflect.ValueOf(a).UnsafePointer(), reflect.ValueOf(b).UnsafePointer())
}

func TestDeriveRecordKeepsIdentity(t *testing.T) {
	a := lazy.New(1)
	b := lazy.New("x")
	d := lazy.DeriveRecord(lazy.Sources{"a": a, "b": b})

	v1 := d.Get()
	assert.Equal(t, lazy.Record{"a": 1, "b": "x"}, v1)

	var received []lazy.Record
	unsubscribe := d.Subscribe(record(&received))
	require.Len(t, received, 1)
	assert.Equal(t, lazy.Record{"a": 1, "b": "x"}, received[0])

	a.Set(2)
	v2 := d.Get()
	sameMap(t, v1, v2)
	assert.Equal(t, lazy.Record{"a": 2, "b": "x"}, v2)

	b.Set("y")
	v3 := d.Get()
	sameMap(t, v1, v3)
	assert.Equal(t, lazy.Record{"a": 2, "b": "y"}, v3)
	assert.Len(t, received, 3, "every field change triggers")

	unsubscribe()
}

func TestDeriveRecordCatchesUpOnStart(t *testing.T) {
	count := lazy.New(1)
	label := lazy.New("initial")
	d := lazy.DeriveRecord(lazy.Sources{"count": count, "label": label})

	count.Set(2)
	label.Set("updated")

	var seen []lazy.Record
	unsubscribe := d.Subscribe(record(&seen))
	require.Len(t, seen, 1)
	assert.Equal(t, lazy.Record{"count": 2, "label": "updated"}, seen[0])
	sameMap(t, seen[0], d.Get())

	unsubscribe()
}

func TestDeriveRecordStopsFollowing(t *testing.T) {
	a := lazy.New(1)
	d := lazy.DeriveRecord(lazy.Sources{"a": a})

	var seen []lazy.Record
	unsubscribe := d.Subscribe(record(&seen))
	unsubscribe()
	assert.False(t, a.Subscribed())

	a.Set(5)
	assert.Len(t, seen, 1)
	assert.Equal(t, 5, d.Get()["a"])
}

func TestDeriveRecordEmpty(t *testing.T) {
	d := lazy.DeriveRecord(nil)
	assert.Empty(t, d.Get())
}

func label(v lazy.Values) string {
	return fmt.Sprintf("%d %s", lazy.Pick[int](v, "$count"), lazy.Pick[string](v, "$label"))
}

func TestDeriveComputesFromPrefixedValues(t *testing.T) {
	count := lazy.New(2)
	unit := lazy.New("units")
	d := lazy.Derive(lazy.Sources{"count": count, "label": unit}, label)

	assert.Equal(t, "2 units", d.Get())

	var values []string
	unsubscribe := d.Subscribe(record(&values))
	require.NotEmpty(t, values)
	assert.Equal(t, "2 units", values[0])
	assert.Equal(t, values[len(values)-1], d.Get())

	unsubscribe()
}

func TestDeriveCatchesUpOnStart(t *testing.T) {
	count := lazy.New(1)
	unit := lazy.New("unit")
	d := lazy.Derive(lazy.Sources{"count": count, "label": unit}, label)

	count.Set(5)
	unit.Set("items")

	var seen []string
	unsubscribe := d.Subscribe(record(&seen))
	assert.Equal(t, []string{"5 items"}, seen)
	assert.Equal(t, seen[0], d.Get())

	unsubscribe()
}

func TestDeriveComposesStarter(t *testing.T) {
	count := lazy.New(1)
	var starts []int
	stops := 0

	d := lazy.Derive(lazy.Sources{"count": count}, func(v lazy.Values) int {
		return lazy.Pick[int](v, "$count") * 2
	}, func(h *lazy.Handle[int]) lazy.Stopper {
		starts = append(starts, h.Get())
		return func() { stops++ }
	})

	unsubscribeA := d.Subscribe(noop[int])
	assert.Equal(t, []int{2}, starts)
	assert.Zero(t, stops)

	count.Set(3)
	unsubscribeA()
	assert.Equal(t, 1, stops)

	count.Set(7)

	unsubscribeB := d.Subscribe(noop[int])
	assert.Equal(t, []int{2, 14}, starts)
	assert.Equal(t, 1, stops)

	unsubscribeB()
	assert.Equal(t, 2, stops)
}

func TestDeriveRecomputesOnEveryChange(t *testing.T) {
	count := lazy.New(2)
	unit := lazy.New("units")
	d := lazy.Derive(lazy.Sources{"count": count, "label": unit}, label)

	var seen []string
	unsubscribe := d.Subscribe(record(&seen))
	assert.Equal(t, []string{"2 units"}, seen)

	count.Set(3)
	assert.Contains(t, seen, "3 units")

	unit.Set("items")
	assert.Contains(t, seen, "3 items")
	assert.Equal(t, "3 items", d.Get())

	unsubscribe()
}

func TestDeriveSkipsEqualResults(t *testing.T) {
	n := lazy.New(1)
	calls := 0
	parity := lazy.Derive(lazy.Sources{"n": n}, func(v lazy.Values) bool {
		calls++
		return lazy.Pick[int](v, "$n")%2 == 0
	})

	var seen []bool
	unsubscribe := parity.Subscribe(record(&seen))
	n.Set(3)
	n.Set(4)
	assert.Equal(t, []bool{false, true}, seen)
	assert.Greater(t, calls, 3)

	unsubscribe()
}

func TestDeriveEmptySources(t *testing.T) {
	calls := 0
	d := lazy.Derive(lazy.Sources{}, func(lazy.Values) string {
		calls++
		return "static"
	})
	assert.Equal(t, "static", d.Get())
	assert.Equal(t, "static", d.Get())
	assert.Equal(t, 1, calls)
}

func TestPick(t *testing.T) {
	v := lazy.Values{"$n": 3, "$s": "x"}
	assert.Equal(t, 3, lazy.Pick[int](v, "$n"))
	assert.Equal(t, "x", lazy.Pick[string](v, "$s"))
	assert.Zero(t, lazy.Pick[int](v, "$s"))
	assert.Zero(t, lazy.Pick[int](v, "$missing"))
}
