package reactive

// Listener is anything that can be notified when a dependency changes.
// Component instances and selectors implement it.
type Listener interface {
	// MarkDirty notifies the listener that one of its dependencies has changed.
	MarkDirty()

	// ID returns a unique identifier for this listener.
	ID() uint64
}

// Cleanup is a function returned by effects to clean up resources.
// It is called before the effect re-runs and when its owner is disposed.
type Cleanup func()

// Source is a signal a listener has subscribed to.
type Source interface {
	Unsubscribe(l Listener)
}

// SourceTracker is implemented by listeners that want to be told which
// sources they subscribed to, so they can unsubscribe on re-render or
// disposal.
type SourceTracker interface {
	Listener
	TrackSource(s Source)
}
