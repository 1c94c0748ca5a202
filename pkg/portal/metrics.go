package portal

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// DefaultCollector is the collector Providers attach to unless told
// otherwise. It is not registered anywhere until Register is called.
var DefaultCollector = NewCollector("primitives")

// Collector exports the state of every attached Scope to Prometheus.
//
// Metrics:
//   - <ns>_portal_scopes: mounted scopes
//   - <ns>_portal_hosts: hosts across scopes, DefaultHost included
//   - <ns>_portal_empty_hosts: non-default hosts with no payloads
//   - <ns>_portal_items: payloads across scopes
//   - <ns>_portal_writes_total: Update and Remove calls on attached scopes
//   - <ns>_portal_reclaimed_hosts_total: buckets dropped by reclamation
type Collector struct {
	mu     sync.Mutex
	scopes map[*Scope]struct{}

	// Counters of detached scopes, so totals never go down.
	retiredWrites    uint64
	retiredReclaimed uint64

	scopesDesc    *prometheus.Desc
	hostsDesc     *prometheus.Desc
	emptyDesc     *prometheus.Desc
	itemsDesc     *prometheus.Desc
	writesDesc    *prometheus.Desc
	reclaimedDesc *prometheus.Desc
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector creates a collector with the given metric namespace.
func NewCollector(namespace string) *Collector {
	name := func(n string) string {
		return prometheus.BuildFQName(namespace, "portal", n)
	}
	return &Collector{
		scopes:        make(map[*Scope]struct{}),
		scopesDesc:    prometheus.NewDesc(name("scopes"), "Number of mounted portal scopes", nil, nil),
		hostsDesc:     prometheus.NewDesc(name("hosts"), "Number of portal hosts across scopes", nil, nil),
		emptyDesc:     prometheus.NewDesc(name("empty_hosts"), "Number of non-default portal hosts with no content", nil, nil),
		itemsDesc:     prometheus.NewDesc(name("items"), "Number of registered portal payloads", nil, nil),
		writesDesc:    prometheus.NewDesc(name("writes_total"), "Total registry updates and removals", nil, nil),
		reclaimedDesc: prometheus.NewDesc(name("reclaimed_hosts_total"), "Total empty hosts dropped by reclamation", nil, nil),
	}
}

// Register registers the collector with reg, or with the default
// registerer when reg is nil. Registering twice is not an error.
func (c *Collector) Register(reg prometheus.Registerer) error {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if err := reg.Register(c); err != nil {
		if _, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return nil
		}
		return err
	}
	return nil
}

// Attach starts reporting s.
func (c *Collector) Attach(s *Scope) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.scopes[s] = struct{}{}
}

// Detach stops reporting s. Its counters stay in the totals.
func (c *Collector) Detach(s *Scope) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.scopes[s]; !ok {
		return
	}
	delete(c.scopes, s)
	c.retiredWrites += s.Writes()
	c.retiredReclaimed += s.Reclaimed()
}

// Scopes returns the number of attached scopes.
func (c *Collector) Scopes() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.scopes)
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.scopesDesc
	ch <- c.hostsDesc
	ch <- c.emptyDesc
	ch <- c.itemsDesc
	ch <- c.writesDesc
	ch <- c.reclaimedDesc
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.mu.Lock()
	var hosts, empty, items int
	writes, reclaimed := c.retiredWrites, c.retiredReclaimed
	for s := range c.scopes {
		r := s.Snapshot()
		hosts += len(r.Hosts())
		empty += r.EmptyHosts()
		items += r.Len()
		writes += s.Writes()
		reclaimed += s.Reclaimed()
	}
	n := len(c.scopes)
	c.mu.Unlock()

	ch <- prometheus.MustNewConstMetric(c.scopesDesc, prometheus.GaugeValue, float64(n))
	ch <- prometheus.MustNewConstMetric(c.hostsDesc, prometheus.GaugeValue, float64(hosts))
	ch <- prometheus.MustNewConstMetric(c.emptyDesc, prometheus.GaugeValue, float64(empty))
	ch <- prometheus.MustNewConstMetric(c.itemsDesc, prometheus.GaugeValue, float64(items))
	ch <- prometheus.MustNewConstMetric(c.writesDesc, prometheus.CounterValue, float64(writes))
	ch <- prometheus.MustNewConstMetric(c.reclaimedDesc, prometheus.CounterValue, float64(reclaimed))
}
