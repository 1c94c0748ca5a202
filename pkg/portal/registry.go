package portal

import "github.com/vango-dev/primitives/pkg/reactive"

// DefaultHost is the host used when a Portal or Host names none. It is
// present in every Registry.
const DefaultHost = "INTERNAL_PRIMITIVE_DEFAULT_HOST_NAME"

// Bucket is the ordered set of named payloads for one host.
// A Bucket is immutable once published in a Registry.
type Bucket struct {
	names []string
	items map[string]any
}

var emptyBucket = &Bucket{}

// Len returns the number of payloads.
func (b *Bucket) Len() int {
	if b == nil {
		return 0
	}
	return len(b.names)
}

// Names returns the content names in first-insertion order.
func (b *Bucket) Names() []string {
	if b == nil {
		return []string{}
	}
	out := make([]string, len(b.names))
	copy(out, b.names)
	return out
}

// Get returns the payload stored under name.
func (b *Bucket) Get(name string) (any, bool) {
	if b == nil {
		return nil, false
	}
	v, ok := b.items[name]
	return v, ok
}

// Payloads returns the payloads in first-insertion order. The slice is
// never nil.
func (b *Bucket) Payloads() []any {
	if b == nil {
		return []any{}
	}
	out := make([]any, len(b.names))
	for i, n := range b.names {
		out[i] = b.items[n]
	}
	return out
}

// Each calls fn for every entry in order.
func (b *Bucket) Each(fn func(name string, payload any)) {
	if b == nil {
		return
	}
	for _, n := range b.names {
		fn(n, b.items[n])
	}
}

func (b *Bucket) with(name string, payload any) *Bucket {
	nb := &Bucket{items: make(map[string]any, len(b.items)+1)}
	for k, v := range b.items {
		nb.items[k] = v
	}
	if _, exists := b.items[name]; exists {
		nb.names = b.names
	} else {
		nb.names = make([]string, len(b.names), len(b.names)+1)
		copy(nb.names, b.names)
		nb.names = append(nb.names, name)
	}
	nb.items[name] = payload
	return nb
}

func (b *Bucket) without(name string) *Bucket {
	nb := &Bucket{
		names: make([]string, 0, len(b.names)),
		items: make(map[string]any, len(b.items)),
	}
	for _, n := range b.names {
		if n == name {
			continue
		}
		nb.names = append(nb.names, n)
		nb.items[n] = b.items[n]
	}
	return nb
}

// Registry is an immutable snapshot mapping host names to buckets.
// Update and Remove return new snapshots; unchanged buckets are shared by
// pointer, so comparing Bucket pointers tells whether a host changed.
type Registry struct {
	hosts   map[string]*Bucket
	order   []string
	version uint64
}

// NewRegistry returns a registry containing only the empty default host.
func NewRegistry() *Registry {
	return &Registry{
		hosts: map[string]*Bucket{DefaultHost: emptyBucket},
		order: []string{DefaultHost},
	}
}

// Update stores payload under name in host's bucket, creating the bucket
// if needed. A new name is appended; an existing name keeps its position.
// Writing the payload already stored returns r itself.
//
// An empty host means DefaultHost. An empty name is an ordinary name.
func (r *Registry) Update(host, name string, payload any) *Registry {
	host = hostName(host)
	b, ok := r.hosts[host]
	if ok {
		if cur, exists := b.items[name]; exists && reactive.SameValue(cur, payload) {
			return r
		}
	} else {
		b = emptyBucket
	}
	return r.replace(host, b.with(name, payload), !ok)
}

// Remove deletes name from host's bucket. An absent host or name leaves
// the registry unchanged and returns r itself. The bucket stays, even when
// it becomes empty.
func (r *Registry) Remove(host, name string) *Registry {
	host = hostName(host)
	b, ok := r.hosts[host]
	if !ok {
		return r
	}
	if _, exists := b.items[name]; !exists {
		return r
	}
	return r.replace(host, b.without(name), false)
}

// Read returns the payloads for host in order. The result is empty, never
// nil, when the host is absent or has no payloads.
func (r *Registry) Read(host string) []any {
	return r.hosts[hostName(host)].Payloads()
}

// Bucket returns host's bucket, or nil when the host has never been written.
func (r *Registry) Bucket(host string) *Bucket {
	return r.hosts[hostName(host)]
}

// Hosts returns the host names in creation order.
func (r *Registry) Hosts() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the total number of payloads across hosts.
func (r *Registry) Len() int {
	n := 0
	for _, b := range r.hosts {
		n += b.Len()
	}
	return n
}

// EmptyHosts returns the number of hosts, other than DefaultHost, whose
// bucket is empty.
func (r *Registry) EmptyHosts() int {
	n := 0
	for h, b := range r.hosts {
		if h != DefaultHost && b.Len() == 0 {
			n++
		}
	}
	return n
}

// Version counts the snapshots that led to this one.
func (r *Registry) Version() uint64 {
	return r.version
}

// Compact drops empty buckets other than DefaultHost. It returns r itself
// when there is nothing to drop.
func (r *Registry) Compact() *Registry {
	if r.EmptyHosts() == 0 {
		return r
	}
	nr := &Registry{
		hosts:   make(map[string]*Bucket, len(r.hosts)),
		order:   make([]string, 0, len(r.order)),
		version: r.version + 1,
	}
	for _, h := range r.order {
		b := r.hosts[h]
		if h != DefaultHost && b.Len() == 0 {
			continue
		}
		nr.hosts[h] = b
		nr.order = append(nr.order, h)
	}
	return nr
}

func (r *Registry) replace(host string, b *Bucket, added bool) *Registry {
	nr := &Registry{
		hosts:   make(map[string]*Bucket, len(r.hosts)+1),
		order:   r.order,
		version: r.version + 1,
	}
	for k, v := range r.hosts {
		nr.hosts[k] = v
	}
	nr.hosts[host] = b
	if added {
		nr.order = make([]string, len(r.order), len(r.order)+1)
		copy(nr.order, r.order)
		nr.order = append(nr.order, host)
	}
	return nr
}

func hostName(host string) string {
	if host == "" {
		return DefaultHost
	}
	return host
}
