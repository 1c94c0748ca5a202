package reactive

import "sync"

// selector subscribes to a signal on behalf of a component and forwards the
// notification only when the picked value changes.
type selector[T any, S comparable] struct {
	id uint64

	mu     sync.Mutex
	sig    *Signal[T]
	pick   func(T) S
	last   S
	target Listener
}

func (s *selector[T, S]) ID() uint64 {
	return s.id
}

func (s *selector[T, S]) MarkDirty() {
	s.mu.Lock()
	next := s.pick(s.sig.Peek())
	changed := next != s.last
	if changed {
		s.last = next
	}
	target := s.target
	s.mu.Unlock()

	if changed && target != nil {
		target.MarkDirty()
	}
}

func (s *selector[T, S]) detach() {
	s.mu.Lock()
	sig := s.sig
	s.mu.Unlock()
	if sig != nil {
		sig.Unsubscribe(s)
	}
}

// Select returns pick(sig's value) and re-renders the calling component only
// when that result changes. Use it to watch one part of a large value, such
// as one host's bucket inside a registry snapshot.
//
// This is a hook: call it unconditionally during render.
func Select[T any, S comparable](sig *Signal[T], pick func(T) S) S {
	o := mustOwner("Select")
	o.TrackHook(HookSelect)

	sel := useSlot(o, func() *selector[T, S] {
		s := &selector[T, S]{id: nextID()}
		o.OnCleanup(s.detach)
		return s
	})

	current := pick(sig.Peek())

	sel.mu.Lock()
	prev := sel.sig
	sel.sig = sig
	sel.pick = pick
	sel.last = current
	sel.target = currentListener()
	sel.mu.Unlock()

	if prev != sig {
		if prev != nil {
			prev.Unsubscribe(sel)
		}
		sig.subscribe(sel)
	}
	return current
}
