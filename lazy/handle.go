package lazy

// Handle is the view of a signal handed to starters. Its funcs are bound to the
// signal once, when the handle is built, so a starter can keep or pass around
// h.Set on its own and every read of a field returns the same func.
type Handle[T any] struct {
	Get     func() T
	Set     func(T)
	Update  func(func(T) T)
	Trigger func()
}

func (s *Signal[T]) handle() *Handle[T] {
	if s.h == nil {
		s.h = &Handle[T]{
			Get:     s.Get,
			Set:     s.Set,
			Update:  s.Update,
			Trigger: s.Trigger,
		}
	}
	return s.h
}
