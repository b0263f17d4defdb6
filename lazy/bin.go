package lazy

// Bin collects deferred callbacks and runs them in bulk, in the order they were
// collected. Callbacks are identified by function value, so collecting the
// same func twice keeps a single entry. The method value b.Dispose stands in
// for calling the bin itself.
//
// A Bin is not safe for concurrent use. Panics from callbacks propagate to the
// caller of Process or Dispose.
type Bin struct {
	callbacks callbacks[func()]
}

// NewBin returns an empty bin.
func NewBin() *Bin {
	return &Bin{}
}

// Collect adds cb and returns a func that removes it again without running it.
func (b *Bin) Collect(cb func()) (remove func()) {
	if cb == nil {
		return func() {}
	}
	key := funcKey(cb)
	e := b.callbacks.find(key)
	if e == nil {
		e = b.callbacks.addKeyed(key, cb)
	}
	return func() {
		b.callbacks.remove(e)
	}
}

// Add is Collect without the remover, for the common "collect and forget"
// case.
func (b *Bin) Add(cb func()) {
	b.Collect(cb)
}

// Extract removes cb from the bin without running it and returns it.
func (b *Bin) Extract(cb func()) func() {
	if cb != nil {
		b.callbacks.remove(b.callbacks.find(funcKey(cb)))
	}
	return cb
}

// Process runs every collected callback and keeps them collected. Callbacks
// built with Await start their asynchronous work and are not waited for.
func (b *Bin) Process() {
	b.callbacks.each(func(cb func()) {
		cb()
	})
}

// Dispose runs every collected callback, then empties the bin.
func (b *Bin) Dispose() {
	b.Process()
	b.callbacks.clear()
}

// Len returns the number of collected callbacks.
func (b *Bin) Len() int {
	return b.callbacks.len()
}
