package lazy_test

import (
	"strings"
	"testing"

	"github.com/delaneyj/lazysignal/lazy"
	"github.com/stretchr/testify/assert"
)

func TestDeriveTyped(t *testing.T) {
	count := lazy.New(2)
	unit := lazy.New("apples")

	d := lazy.Derive2(count, unit, func(n int, u string) string {
		return strings.Repeat(u[:1], n)
	})
	assert.Equal(t, "aa", d.Get())

	var seen []string
	unsubscribe := d.Subscribe(record(&seen))
	count.Set(3)
	unit.Set("bananas")
	assert.Equal(t, []string{"aa", "aaa", "bbb"}, seen)
	unsubscribe()

	sum := lazy.Derive4(lazy.New(1), lazy.New(2), lazy.New(3), count, func(a, b, c, d int) int {
		return a + b + c + d
	})
	assert.Equal(t, 9, sum.Get())
}

func TestSubscribeTyped(t *testing.T) {
	a := lazy.New(1)
	b := lazy.New(true)

	type pair struct {
		n  int
		ok bool
	}
	var seen []pair
	invalidated := 0
	unsubscribe := lazy.Subscribe2(a, b, func(n int, ok bool) lazy.Invalidator {
		seen = append(seen, pair{n, ok})
		return func() { invalidated++ }
	})

	a.Set(2)
	b.Set(false)
	assert.Equal(t, []pair{{1, true}, {2, true}, {2, false}}, seen)
	assert.Equal(t, 2, invalidated)

	unsubscribe()
	assert.Equal(t, 3, invalidated)
}
