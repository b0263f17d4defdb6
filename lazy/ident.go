package lazy

import "unsafe"

// funcKey returns the address of the closure fn refers to. Two func values
// share a key only when they are the same function value; behaviourally equal
// closures created separately get different keys. Callers must keep fn
// reachable for as long as the key is in use, since a collected closure's
// address can be handed out again.
//
// fn must be a func type.
func funcKey[F any](fn F) uintptr {
	return *(*uintptr)(unsafe.Pointer(&fn))
}
