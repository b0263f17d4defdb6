package lazy

type entry[F any] struct {
	fn   F
	key  uintptr
	live bool
}

// callbacks is an insertion-ordered list of listeners. Walks iterate over a
// snapshot, so listeners may add or remove entries while a walk is running:
// removed entries are skipped, added entries wait for the next walk.
type callbacks[F any] struct {
	entries []*entry[F]
}

func (c *callbacks[F]) add(fn F) *entry[F] {
	e := &entry[F]{fn: fn, live: true}
	c.entries = append(c.entries, e)
	return e
}

func (c *callbacks[F]) addKeyed(key uintptr, fn F) *entry[F] {
	e := c.add(fn)
	e.key = key
	return e
}

// remove reports whether e was still registered.
func (c *callbacks[F]) remove(e *entry[F]) bool {
	if e == nil || !e.live {
		return false
	}
	e.live = false
	for i, x := range c.entries {
		if x == e {
			c.entries = append(c.entries[:i], c.entries[i+1:]...)
			break
		}
	}
	return true
}

func (c *callbacks[F]) find(key uintptr) *entry[F] {
	for _, e := range c.entries {
		if e.key == key {
			return e
		}
	}
	return nil
}

func (c *callbacks[F]) len() int {
	return len(c.entries)
}

func (c *callbacks[F]) snapshot() []*entry[F] {
	out := make([]*entry[F], len(c.entries))
	copy(out, c.entries)
	return out
}

// each calls fn for every live entry without removing it.
func (c *callbacks[F]) each(fn func(F)) {
	for _, e := range c.snapshot() {
		if e.live {
			fn(e.fn)
		}
	}
}

// consume removes every live entry right before handing it to fn, so an entry
// fires at most once even if fn re-enters the owner.
func (c *callbacks[F]) consume(fn func(F)) {
	for _, e := range c.snapshot() {
		if c.remove(e) {
			fn(e.fn)
		}
	}
}

func (c *callbacks[F]) clear() {
	for _, e := range c.entries {
		e.live = false
	}
	c.entries = nil
}
