package lazy_test

import (
	"testing"

	"github.com/delaneyj/lazysignal/lazy"
	"github.com/stretchr/testify/assert"
)

func TestDeriveStarterWiresWhileStarted(t *testing.T) {
	input := lazy.New(1)
	output := lazy.New(0, lazy.DeriveStarter[int, int](input, double, nil))

	var seen []int
	unsubscribe := output.Subscribe(record(&seen))
	assert.Equal(t, []int{2}, seen)
	assert.Equal(t, 2, output.Get())

	input.Set(3)
	assert.Equal(t, 6, output.Get())

	unsubscribe()
}

func TestDeriveStarterComposesStopper(t *testing.T) {
	input := lazy.New(1)
	var started, stopped int
	var order []string

	onStart := func(h *lazy.Handle[int]) lazy.Stopper {
		started++
		return func() {
			stopped++
			order = append(order, "stopper")
		}
	}
	output := lazy.New(0, lazy.DeriveStarter(input, func(v int) int { return v + 1 }, onStart))
	input.SubscribeStopSoon(func() {
		order = append(order, "input stopped")
	})

	unsubscribe := output.Subscribe(noop[int])
	assert.Equal(t, 1, started)

	input.Set(5)
	assert.Equal(t, 6, output.Get())

	unsubscribe()
	assert.Equal(t, 1, stopped)
	assert.Equal(t, []string{"stopper", "input stopped"}, order)

	input.Set(9)
	assert.Equal(t, 10, output.Get())
	assert.Equal(t, 2, started)
}
