package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"sync/atomic"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/primitives/internal/errors"
	"github.com/vango-dev/primitives/pkg/reactive"
	"github.com/vango-dev/primitives/pkg/vdom"
)

// Tree is a mounted component tree.
type Tree struct {
	mu     sync.Mutex
	ctx    context.Context
	owner  *reactive.Owner
	root   *Instance
	closed bool

	logger    *slog.Logger
	tracer    trace.Tracer
	maxPasses int

	qmu     sync.Mutex
	queue   []*Instance
	removed []*Instance

	output *vdom.VNode
	hids   *vdom.HIDGenerator

	instances atomic.Int64
	renders   atomic.Int64
	flushes   atomic.Int64
}

// Stats is a snapshot of a tree's counters.
type Stats struct {
	Instances int64
	Renders   int64
	Flushes   int64
}

// Mount renders root and commits its effects.
//
// ctx parents the tree's trace spans. If rendering panics, every mounted
// instance is disposed (running all cleanups) before the panic continues.
// A flush that does not settle returns the tree together with
// ErrUpdateDepth.
func Mount(ctx context.Context, root vdom.Component, opts ...Option) (*Tree, error) {
	if root == nil {
		return nil, ErrNilComponent
	}
	if ctx == nil {
		ctx = context.Background()
	}
	t := &Tree{
		ctx:       ctx,
		owner:     reactive.NewOwner(nil),
		logger:    slog.Default(),
		tracer:    defaultTracer(),
		maxPasses: DefaultMaxPasses,
		hids:      vdom.NewHIDGenerator(),
	}
	for _, opt := range opts {
		opt(t)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.root = newInstance(t, nil, root, "")
	t.root.MarkDirty()
	return t, t.flushLocked()
}

// Root returns the root instance.
func (t *Tree) Root() *Instance {
	return t.root
}

// Output returns the composed output of the last flush. Component
// boundaries are gone; interactive elements carry hydration IDs.
func (t *Tree) Output() *vdom.VNode {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.output
}

// Update runs fn under the tree's lock and then flushes. Use it to write
// signals from outside the tree.
func (t *Tree) Update(fn func()) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return ErrTreeClosed
	}
	t.guard(fn)
	return t.flushLocked()
}

// Flush renders dirty instances and commits effects until nothing is left
// to do.
func (t *Tree) Flush() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return ErrTreeClosed
	}
	return t.flushLocked()
}

// Close unmounts the tree, running every cleanup. It is idempotent.
func (t *Tree) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.closeLocked()
}

// Closed reports whether the tree has been closed.
func (t *Tree) Closed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.closed
}

// Stats returns the tree's counters.
func (t *Tree) Stats() Stats {
	return Stats{
		Instances: t.instances.Load(),
		Renders:   t.renders.Load(),
		Flushes:   t.flushes.Load(),
	}
}

func (t *Tree) closeLocked() {
	if t.closed {
		return
	}
	t.closed = true
	t.owner.Dispose()
	t.qmu.Lock()
	t.queue = nil
	t.removed = nil
	t.qmu.Unlock()
	t.output = nil
	t.logger.Debug("tree closed")
}

// guard runs fn and, if it panics, disposes the whole tree first.
func (t *Tree) guard(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			t.logger.Debug("render panicked, disposing tree", "panic", r)
			t.closeLocked()
			panic(r)
		}
	}()
	fn()
}

func (t *Tree) schedule(i *Instance) {
	t.qmu.Lock()
	t.queue = append(t.queue, i)
	t.qmu.Unlock()
}

func (t *Tree) retire(i *Instance) {
	i.detached.Store(true)
	t.qmu.Lock()
	t.removed = append(t.removed, i)
	t.qmu.Unlock()
}

func (t *Tree) take() (dirty, removed []*Instance) {
	t.qmu.Lock()
	defer t.qmu.Unlock()
	dirty, removed = t.queue, t.removed
	t.queue, t.removed = nil, nil
	return dirty, removed
}

func (t *Tree) flushLocked() (err error) {
	_, span := t.tracer.Start(t.ctx, "primitives.flush")
	defer span.End()

	passes := 0
	t.guard(func() {
		for {
			dirty, removed := t.take()
			if len(dirty) == 0 && len(removed) == 0 {
				return
			}
			if passes >= t.maxPasses {
				// Put the work back so a later flush can continue.
				t.qmu.Lock()
				t.queue = append(dirty, t.queue...)
				t.removed = append(removed, t.removed...)
				t.qmu.Unlock()
				err = errors.New(errors.CodeUpdateDepth).
					WithDetail(fmt.Sprintf("still dirty after %d passes", passes))
				return
			}
			passes++
			t.pass(dirty, removed)
		}
	})

	t.flushes.Add(1)
	t.output = compose(t.root.output)
	t.hids.Reset()
	vdom.AssignHIDs(t.output, t.hids)

	span.SetAttributes(
		attribute.Int("primitives.passes", passes),
		attribute.Int64("primitives.instances", t.instances.Load()),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	t.logger.Debug("tree flushed", "passes", passes, "instances", t.instances.Load())
	return err
}

// pass renders the dirty instances top-down and commits effects.
func (t *Tree) pass(dirty, removed []*Instance) {
	sort.SliceStable(dirty, func(a, b int) bool {
		return dirty[a].depth < dirty[b].depth
	})
	for _, inst := range dirty {
		if inst.dirty.Load() && inst.attached() {
			inst.render(false)
		}
	}

	// Renders may have retired more instances.
	removed = append(removed, t.takeRemoved()...)
	for _, inst := range removed {
		inst.owner.Dispose()
	}

	effects := t.root.effects(nil)
	for _, e := range effects {
		e.Teardown()
	}
	for _, e := range effects {
		e.Run()
	}
}

func (t *Tree) takeRemoved() []*Instance {
	t.qmu.Lock()
	defer t.qmu.Unlock()
	removed := t.removed
	t.removed = nil
	return removed
}
