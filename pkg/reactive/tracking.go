package reactive

import (
	"runtime"
	"sync"
)

// trackingContext holds the reactive state for a goroutine.
// Each goroutine has its own tracking context so independent trees can render
// concurrently while each tree stays single-threaded.
type trackingContext struct {
	// owner receives hooks created during render.
	owner *Owner

	// listener is subscribed to any signal read while it is set.
	listener Listener
}

// trackingContexts stores per-goroutine tracking contexts.
var trackingContexts sync.Map

// getGoroutineID returns the numeric ID of the current goroutine.
// The stack header has the form "goroutine <id> [...]".
func getGoroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)

	var id uint64
	for i := len("goroutine "); i < n; i++ {
		if buf[i] < '0' || buf[i] > '9' {
			break
		}
		id = id*10 + uint64(buf[i]-'0')
	}
	return id
}

// getTrackingContext returns the tracking context for the current goroutine,
// creating it on first use.
func getTrackingContext() *trackingContext {
	gid := getGoroutineID()
	if ctx, ok := trackingContexts.Load(gid); ok {
		return ctx.(*trackingContext)
	}
	ctx := &trackingContext{}
	trackingContexts.Store(gid, ctx)
	return ctx
}

// releaseIfIdle drops the goroutine's context once nothing is tracked, so
// short-lived goroutines do not leak entries.
func releaseIfIdle(ctx *trackingContext) {
	if ctx.owner == nil && ctx.listener == nil {
		trackingContexts.Delete(getGoroutineID())
	}
}

// CurrentOwner returns the owner of the component currently rendering, or nil.
func CurrentOwner() *Owner {
	return getTrackingContext().owner
}

// currentListener returns the listener currently tracking reads, or nil.
func currentListener() Listener {
	return getTrackingContext().listener
}

// WithOwner runs fn with o as the current owner.
// The previous owner is restored even if fn panics.
func WithOwner(o *Owner, fn func()) {
	ctx := getTrackingContext()
	prev := ctx.owner
	ctx.owner = o
	defer func() {
		ctx.owner = prev
		releaseIfIdle(ctx)
	}()
	fn()
}

// WithListener runs fn with l subscribed to every signal read.
func WithListener(l Listener, fn func()) {
	ctx := getTrackingContext()
	prev := ctx.listener
	ctx.listener = l
	defer func() {
		ctx.listener = prev
		releaseIfIdle(ctx)
	}()
	fn()
}

// Untracked runs fn without subscribing to any signal it reads.
func Untracked(fn func()) {
	WithListener(nil, fn)
}
