package reactive

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/vango-dev/primitives/internal/errors"
)

// DebugMode enables hook order validation. A component whose hook sequence
// changes between renders panics with a descriptive message.
var DebugMode = false

// HookType identifies the type of hook call for order validation.
type HookType uint8

const (
	HookSignal HookType = iota + 1
	HookEffect
	HookRef
	HookContext
	HookSelect
	HookID
)

// String returns a human-readable name for the hook type.
func (h HookType) String() string {
	switch h {
	case HookSignal:
		return "Signal"
	case HookEffect:
		return "Effect"
	case HookRef:
		return "Ref"
	case HookContext:
		return "Context"
	case HookSelect:
		return "Select"
	case HookID:
		return "ID"
	default:
		return "Unknown"
	}
}

// Owner represents a component scope that owns hooks.
// When an Owner is disposed, its child owners, effect cleanups and registered
// cleanups run, children first.
//
// Owners form a hierarchy mirroring the component tree. Context values set on
// an owner are visible to every descendant owner.
type Owner struct {
	id uint64

	// parent is nil for the root Owner.
	parent *Owner

	mu       sync.Mutex
	children []*Owner

	// effects are the owner's effect hooks in declaration order.
	effects []*Effect

	// cleanups are registered via OnCleanup.
	cleanups []func()

	// values stores context values for this scope.
	values map[any]any

	// valuesChanged is set when SetValue stores a value different from
	// the previous one.
	valuesChanged bool

	disposed atomic.Bool

	// Hook slot storage for stable identity across renders.
	hookSlots   []any
	hookSlotIdx int

	// Dev-mode hook order tracking (only used when DebugMode is true).
	hookOrder   []HookType
	hookIndex   int
	renderCount int
}

// NewOwner creates a new Owner with the given parent.
// If parent is nil, creates a root Owner.
func NewOwner(parent *Owner) *Owner {
	o := &Owner{
		id:     nextID(),
		parent: parent,
	}
	if parent != nil {
		parent.addChild(o)
	}
	return o
}

// ID returns the unique identifier for this Owner.
func (o *Owner) ID() uint64 {
	return o.id
}

// Parent returns the parent Owner, or nil if this is a root Owner.
func (o *Owner) Parent() *Owner {
	return o.parent
}

// IsDisposed returns true if this Owner has been disposed.
func (o *Owner) IsDisposed() bool {
	return o.disposed.Load()
}

func (o *Owner) addChild(child *Owner) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.children = append(o.children, child)
}

func (o *Owner) removeChild(child *Owner) {
	o.mu.Lock()
	defer o.mu.Unlock()
	for i, c := range o.children {
		if c == child {
			o.children = append(o.children[:i], o.children[i+1:]...)
			return
		}
	}
}

// OnCleanup registers a cleanup function to run when this Owner is disposed.
// If the Owner is already disposed, fn runs immediately.
func (o *Owner) OnCleanup(fn func()) {
	if o.disposed.Load() {
		fn()
		return
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	o.cleanups = append(o.cleanups, fn)
}

// SetValue sets a context value on this Owner.
func (o *Owner) SetValue(key, value any) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.values == nil {
		o.values = make(map[any]any)
	}
	if old, ok := o.values[key]; !ok || !SameValue(old, value) {
		o.valuesChanged = true
	}
	o.values[key] = value
}

// TakeValuesChanged reports whether any context value changed since the
// last call, and resets the flag.
func (o *Owner) TakeValuesChanged() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	changed := o.valuesChanged
	o.valuesChanged = false
	return changed
}

// Value retrieves a value from this Owner or its nearest ancestor that has it.
func (o *Owner) Value(key any) (any, bool) {
	for cur := o; cur != nil; cur = cur.parent {
		cur.mu.Lock()
		v, ok := cur.values[key]
		cur.mu.Unlock()
		if ok {
			return v, true
		}
	}
	return nil, false
}

// PendingEffects returns the effects whose dependencies changed during the
// last render, in declaration order. Nothing is cleared; Effect.Run does that.
func (o *Owner) PendingEffects() []*Effect {
	o.mu.Lock()
	defer o.mu.Unlock()
	var out []*Effect
	for _, e := range o.effects {
		if e.pending && !e.disposed {
			out = append(out, e)
		}
	}
	return out
}

// Dispose disposes this Owner and all its children.
// Children are disposed in reverse creation order, then effect cleanups run
// in reverse declaration order, then OnCleanup functions in reverse order.
// Disposal is idempotent.
func (o *Owner) Dispose() {
	if o.disposed.Swap(true) {
		return
	}

	if o.parent != nil {
		o.parent.removeChild(o)
	}

	o.mu.Lock()
	children := append([]*Owner(nil), o.children...)
	o.children = nil
	effects := o.effects
	o.effects = nil
	cleanups := o.cleanups
	o.cleanups = nil
	o.mu.Unlock()

	for i := len(children) - 1; i >= 0; i-- {
		children[i].Dispose()
	}
	for i := len(effects) - 1; i >= 0; i-- {
		effects[i].dispose()
	}
	for i := len(cleanups) - 1; i >= 0; i-- {
		cleanups[i]()
	}
}

// StartRender is called at the beginning of a component render.
func (o *Owner) StartRender() {
	o.hookSlotIdx = 0
	if DebugMode {
		o.hookIndex = 0
	}
}

// EndRender is called at the end of a component render.
// In debug mode, it validates that all expected hooks were called.
func (o *Owner) EndRender() {
	if !DebugMode {
		return
	}
	if o.renderCount == 0 {
		o.renderCount = 1
	} else if o.hookIndex < len(o.hookOrder) {
		panic(fmt.Sprintf("[PRIMITIVES R004] hook order changed: expected %d hooks, got %d",
			len(o.hookOrder), o.hookIndex))
	}
}

// TrackHook records a hook call during render for order validation.
func (o *Owner) TrackHook(ht HookType) {
	if !DebugMode {
		return
	}
	if o.renderCount == 0 {
		o.hookOrder = append(o.hookOrder, ht)
	} else {
		if o.hookIndex >= len(o.hookOrder) {
			panic(fmt.Sprintf("[PRIMITIVES R004] hook order changed: extra %s hook at index %d",
				ht, o.hookIndex))
		}
		if expected := o.hookOrder[o.hookIndex]; expected != ht {
			panic(fmt.Sprintf("[PRIMITIVES R004] hook order changed at index %d: expected %s, got %s",
				o.hookIndex, expected, ht))
		}
	}
	o.hookIndex++
}

// UseHookSlot returns the stored value for the current hook slot, or nil on
// the first render. The caller stores a fresh value with SetHookSlot.
func (o *Owner) UseHookSlot() any {
	idx := o.hookSlotIdx
	o.hookSlotIdx++
	if idx < len(o.hookSlots) {
		return o.hookSlots[idx]
	}
	return nil
}

// SetHookSlot stores a value in the current hook slot.
// Must be called after UseHookSlot returns nil.
func (o *Owner) SetHookSlot(value any) {
	o.hookSlots = append(o.hookSlots, value)
}

// mustOwner returns the current owner or panics: hooks only work during render.
func mustOwner(hook string) *Owner {
	o := CurrentOwner()
	if o == nil {
		panic(errors.New(errors.CodeHookOutside).WithSuggestion(hook + " must be called from a component's Render method"))
	}
	return o
}

// useSlot is the shared hook-slot pattern: the stored value on re-render, or
// the result of create on the first render.
func useSlot[T any](o *Owner, create func() T) T {
	if slot := o.UseHookSlot(); slot != nil {
		return slot.(T)
	}
	v := create()
	o.SetHookSlot(v)
	return v
}
