package portal

import (
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/vango-dev/primitives/pkg/reactive"
)

// Scope owns the registry for one Provider. Portals and Hosts reach the
// registry only through their Scope, so sibling providers never see each
// other's content.
type Scope struct {
	id      string
	reg     *reactive.Signal[*Registry]
	logger  *slog.Logger
	reclaim bool

	writes    atomic.Uint64
	reclaimed atomic.Uint64

	mu        sync.Mutex
	consumers map[string]int
}

// ScopeOption configures a Scope.
type ScopeOption func(*Scope)

// WithReclaimEmptyHosts drops a host's bucket once its last payload is
// removed. DefaultHost is always kept. Without this option empty buckets
// stay for the lifetime of the scope.
func WithReclaimEmptyHosts() ScopeOption {
	return func(s *Scope) {
		s.reclaim = true
	}
}

// WithLogger sets the scope's logger.
func WithLogger(l *slog.Logger) ScopeOption {
	return func(s *Scope) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewScope creates a scope whose registry holds only the empty default
// host.
func NewScope(opts ...ScopeOption) *Scope {
	s := &Scope{
		id:        uuid.NewString(),
		reg:       reactive.NewSignal(NewRegistry()),
		logger:    slog.Default(),
		consumers: make(map[string]int),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ID returns the scope's unique identifier.
func (s *Scope) ID() string {
	return s.id
}

// Signal returns the signal carrying the current registry snapshot.
// Reading it during render subscribes the reader to every change.
func (s *Scope) Signal() *reactive.Signal[*Registry] {
	return s.reg
}

// Snapshot returns the current registry without subscribing.
func (s *Scope) Snapshot() *Registry {
	return s.reg.Peek()
}

// Update stores payload under name in host. Overwrites keep position.
//
// Scope state lives in a signal owned by the tree, so outside render and
// effects call it from inside Tree.Update. The same holds for Remove.
func (s *Scope) Update(host, name string, payload any) {
	s.reg.Update(func(r *Registry) *Registry {
		next := r.Update(host, name, payload)
		if next != r {
			s.writes.Add(1)
		}
		return next
	})
}

// Remove deletes name from host. Unknown hosts and names are ignored.
func (s *Scope) Remove(host, name string) {
	s.reg.Update(func(r *Registry) *Registry {
		next := r.Remove(host, name)
		if next == r {
			return r
		}
		s.writes.Add(1)
		if s.reclaim {
			if c := next.Compact(); c != next {
				s.reclaimed.Add(1)
				s.logger.Debug("portal host reclaimed", "scope", s.id, "host", hostName(host))
				next = c
			}
		}
		return next
	})
}

// Read returns host's payloads in order, never nil.
func (s *Scope) Read(host string) []any {
	return s.reg.Peek().Read(host)
}

// Writes returns the number of Update and Remove calls that changed the
// registry.
func (s *Scope) Writes() uint64 {
	return s.writes.Load()
}

// Reclaimed returns the number of buckets dropped by
// WithReclaimEmptyHosts.
func (s *Scope) Reclaimed() uint64 {
	return s.reclaimed.Load()
}

// Consumers returns the number of mounted Hosts named host.
func (s *Scope) Consumers(host string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.consumers[hostName(host)]
}

func (s *Scope) acquireHost(host string) {
	s.mu.Lock()
	s.consumers[host]++
	n := s.consumers[host]
	s.mu.Unlock()
	if n > 1 {
		s.logger.Debug("portal host mounted more than once", "scope", s.id, "host", host, "count", n)
	}
}

func (s *Scope) releaseHost(host string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.consumers[host] <= 1 {
		delete(s.consumers, host)
		return
	}
	s.consumers[host]--
}

// Register writes payload into host under a fresh token and returns the
// handle that owns it.
func (s *Scope) Register(host string, payload any) *Registration {
	r := &Registration{
		scope: s,
		host:  hostName(host),
		token: uuid.NewString(),
	}
	s.Update(r.host, r.token, payload)
	return r
}
