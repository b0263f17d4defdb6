package lazy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInWiresOnce(t *testing.T) {
	source := New(1)
	target := New(0)

	target.In(source)
	target.In(source)
	assert.Equal(t, 1, target.starters.len())

	var seen []int
	for cycle := 0; cycle < 3; cycle++ {
		unsubscribe := target.SubscribeSoon(func(v int) Invalidator {
			seen = append(seen, v)
			return nil
		})
		assert.Equal(t, 1, source.subscribers.len())

		source.Set(source.Get() + 1)
		unsubscribe()
		assert.Equal(t, 0, source.subscribers.len())
	}

	assert.Equal(t, []int{1, 2, 3, 4}, seen)
}

func TestOutWiresOnce(t *testing.T) {
	from := New(1)
	to := New(0)

	from.Out(to)
	from.Out(to)
	assert.Equal(t, 1, to.starters.len())

	for cycle := 0; cycle < 3; cycle++ {
		unsubscribe := to.SubscribeSoon(func(int) Invalidator { return nil })
		assert.Equal(t, 1, from.subscribers.len())

		unsubscribe()
		assert.Equal(t, 0, from.subscribers.len())

		from.Out(to)
		assert.Equal(t, 1, to.starters.len())
	}
}

func TestTriggerConsumesInvalidatorsOnce(t *testing.T) {
	s := New(0)
	runs := 0
	s.Subscribe(func(int) Invalidator {
		return func() {
			runs++
			// re-entering while invalidators are being consumed must not
			// run this one a second time
			s.Trigger()
		}
	})

	s.Trigger()
	assert.Equal(t, 1, runs)
}
