package metrics

import (
	"sort"
	"sync"
)

// Registry holds metrics by name. Lookups create the metric on first use,
// so callers never see nil.
type Registry struct {
	mu         sync.RWMutex
	counters   map[string]*Counter
	gauges     map[string]*Gauge
	histograms map[string]*Histogram
}

// DefaultRegistry holds the codec metrics declared in standard.go.
var DefaultRegistry = NewRegistry()

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		counters:   make(map[string]*Counter),
		gauges:     make(map[string]*Gauge),
		histograms: make(map[string]*Histogram),
	}
}

// getOrCreate looks name up in m, creating the metric with mk under the
// write lock if it is missing.
func getOrCreate[M any](r *Registry, m map[string]M, name string, mk func(string) M) M {
	r.mu.RLock()
	v, ok := m[name]
	r.mu.RUnlock()
	if ok {
		return v
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if v, ok = m[name]; ok {
		return v
	}
	v = mk(name)
	m[name] = v
	return v
}

// Counter returns the Counter registered under name.
func (r *Registry) Counter(name string) *Counter {
	return getOrCreate(r, r.counters, name, NewCounter)
}

// Gauge returns the Gauge registered under name.
func (r *Registry) Gauge(name string) *Gauge {
	return getOrCreate(r, r.gauges, name, NewGauge)
}

// Histogram returns the Histogram registered under name.
func (r *Registry) Histogram(name string) *Histogram {
	return getOrCreate(r, r.histograms, name, NewHistogram)
}

// Visitor receives each metric of a registry. Unused callbacks may be nil.
type Visitor struct {
	Counter   func(*Counter)
	Gauge     func(*Gauge)
	Histogram func(*Histogram)
}

// Each calls v for every metric: counters, then gauges, then histograms,
// each group in name order. The registry is not locked while callbacks run.
func (r *Registry) Each(v Visitor) {
	r.mu.RLock()
	counters := sortedValues(r.counters)
	gauges := sortedValues(r.gauges)
	hists := sortedValues(r.histograms)
	r.mu.RUnlock()

	if v.Counter != nil {
		for _, c := range counters {
			v.Counter(c)
		}
	}
	if v.Gauge != nil {
		for _, g := range gauges {
			v.Gauge(g)
		}
	}
	if v.Histogram != nil {
		for _, h := range hists {
			v.Histogram(h)
		}
	}
}

// Snapshot returns every metric value keyed by name: int64 for counters
// and gauges, HistogramSummary for histograms.
func (r *Registry) Snapshot() map[string]interface{} {
	snap := make(map[string]interface{})
	r.Each(Visitor{
		Counter:   func(c *Counter) { snap[c.Name()] = c.Value() },
		Gauge:     func(g *Gauge) { snap[g.Name()] = g.Value() },
		Histogram: func(h *Histogram) { snap[h.Name()] = h.Summary() },
	})
	return snap
}

func sortedValues[M any](m map[string]M) []M {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]M, len(names))
	for i, name := range names {
		out[i] = m[name]
	}
	return out
}
