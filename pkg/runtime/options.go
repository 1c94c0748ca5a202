package runtime

import (
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// DefaultMaxPasses is the default number of render passes per flush.
const DefaultMaxPasses = 50

const tracerName = "github.com/vango-dev/primitives/pkg/runtime"

// Option configures a Tree.
type Option func(*Tree)

// WithLogger sets the logger used for lifecycle debug output.
func WithLogger(l *slog.Logger) Option {
	return func(t *Tree) {
		if l != nil {
			t.logger = l
		}
	}
}

// WithMaxPasses limits the render passes of one flush.
func WithMaxPasses(n int) Option {
	return func(t *Tree) {
		if n > 0 {
			t.maxPasses = n
		}
	}
}

// WithTracer sets the tracer for flush spans. By default the global
// OpenTelemetry provider is used, which is a no-op until configured.
func WithTracer(tr trace.Tracer) Option {
	return func(t *Tree) {
		if tr != nil {
			t.tracer = tr
		}
	}
}

// WithRootValue sets a context value on the tree's root owner, visible to
// every component through reactive.Owner.Value.
func WithRootValue(key, value any) Option {
	return func(t *Tree) {
		t.owner.SetValue(key, value)
	}
}

func defaultTracer() trace.Tracer {
	return otel.Tracer(tracerName)
}
