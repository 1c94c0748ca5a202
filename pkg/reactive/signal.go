package reactive

import (
	"reflect"
	"sync"
)

// signalBase provides type-erased subscriber management.
type signalBase struct {
	id uint64

	subs  []Listener
	subMu sync.RWMutex
}

// subscribe adds a listener, deduplicated by listener ID.
func (s *signalBase) subscribe(l Listener) bool {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	lid := l.ID()
	for _, existing := range s.subs {
		if existing.ID() == lid {
			return false
		}
	}
	s.subs = append(s.subs, l)
	return true
}

// Unsubscribe removes a listener from this signal's subscribers.
func (s *signalBase) Unsubscribe(l Listener) {
	if l == nil {
		return
	}
	s.subMu.Lock()
	defer s.subMu.Unlock()
	lid := l.ID()
	for i, existing := range s.subs {
		if existing.ID() == lid {
			s.subs = append(s.subs[:i], s.subs[i+1:]...)
			return
		}
	}
}

// notify marks every subscriber dirty. Subscribers are copied first so a
// listener may unsubscribe while being notified.
func (s *signalBase) notify() {
	s.subMu.RLock()
	subs := make([]Listener, len(s.subs))
	copy(subs, s.subs)
	s.subMu.RUnlock()

	for _, sub := range subs {
		sub.MarkDirty()
	}
}

func (s *signalBase) track() {
	l := currentListener()
	if l == nil {
		return
	}
	if s.subscribe(l) {
		if t, ok := l.(SourceTracker); ok {
			t.TrackSource(s)
		}
	}
}

// Signal is a reactive value container.
// Reading a Signal with Get while a component renders subscribes that
// component, which is re-rendered on the next flush after the value changes.
type Signal[T any] struct {
	base signalBase

	mu    sync.RWMutex
	value T

	// equal decides whether Set changes the value. Nil uses defaultEquals.
	equal func(T, T) bool
}

// NewSignal creates a new signal with the given initial value.
func NewSignal[T any](initial T) *Signal[T] {
	return &Signal[T]{
		base:  signalBase{id: nextID()},
		value: initial,
	}
}

// Get returns the current value and subscribes the current listener.
func (s *Signal[T]) Get() T {
	s.mu.RLock()
	v := s.value
	s.mu.RUnlock()
	s.base.track()
	return v
}

// Peek returns the current value without subscribing.
func (s *Signal[T]) Peek() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Set updates the value and notifies subscribers if it changed.
func (s *Signal[T]) Set(value T) {
	s.mu.Lock()
	changed := !s.equals(s.value, value)
	if changed {
		s.value = value
	}
	s.mu.Unlock()

	if changed {
		s.base.notify()
	}
}

// Update atomically replaces the value with fn(current).
func (s *Signal[T]) Update(fn func(T) T) {
	s.mu.Lock()
	next := fn(s.value)
	changed := !s.equals(s.value, next)
	if changed {
		s.value = next
	}
	s.mu.Unlock()

	if changed {
		s.base.notify()
	}
}

// WithEquals sets a custom equality function and returns the signal.
func (s *Signal[T]) WithEquals(fn func(T, T) bool) *Signal[T] {
	s.equal = fn
	return s
}

// ID returns the unique identifier for this signal.
func (s *Signal[T]) ID() uint64 {
	return s.base.id
}

// Unsubscribe removes l from the signal's subscribers.
func (s *Signal[T]) Unsubscribe(l Listener) {
	s.base.Unsubscribe(l)
}

// Subscribers returns the number of subscribed listeners.
func (s *Signal[T]) Subscribers() int {
	s.base.subMu.RLock()
	defer s.base.subMu.RUnlock()
	return len(s.base.subs)
}

func (s *Signal[T]) subscribe(l Listener) {
	s.base.subscribe(l)
}

func (s *Signal[T]) equals(a, b T) bool {
	if s.equal != nil {
		return s.equal(a, b)
	}
	return defaultEquals(a, b)
}

// defaultEquals uses == for comparable dynamic types and reflect.DeepEqual
// otherwise. Pointers compare by identity.
func defaultEquals[T any](a, b T) bool {
	av, bv := any(a), any(b)
	if av == nil || bv == nil {
		return av == nil && bv == nil
	}
	if t := reflect.TypeOf(av); t.Comparable() && t.Kind() != reflect.Interface && t.Kind() != reflect.Struct {
		return av == bv
	}
	return reflect.DeepEqual(a, b)
}

// UseSignal returns a signal that lives as long as the rendering component.
// The initial value is used on the first render only.
//
// This is a hook: call it unconditionally during render.
func UseSignal[T any](initial T) *Signal[T] {
	o := mustOwner("UseSignal")
	o.TrackHook(HookSignal)
	return useSlot(o, func() *Signal[T] {
		return NewSignal(initial)
	})
}
