// Package metrics provides the in-process counters used by the RLP codec
// and its fixture runner. Counter and Gauge are lock-free; Histogram keeps
// a running summary under a mutex.
package metrics

import (
	"math"
	"sync"
	"sync/atomic"
	"time"
)

// Counter is a monotonically increasing count.
type Counter struct {
	name  string
	value atomic.Int64
}

// NewCounter returns a zero Counter.
func NewCounter(name string) *Counter {
	return &Counter{name: name}
}

// Inc adds one.
func (c *Counter) Inc() { c.value.Add(1) }

// Add adds n. Non-positive n is ignored.
func (c *Counter) Add(n int64) {
	if n > 0 {
		c.value.Add(n)
	}
}

// Value returns the current count.
func (c *Counter) Value() int64 { return c.value.Load() }

// Name returns the metric name.
func (c *Counter) Name() string { return c.name }

// Gauge is a value that can move in both directions, such as the number of
// encoder buffers currently checked out of a pool.
type Gauge struct {
	name  string
	value atomic.Int64
}

// NewGauge returns a zero Gauge.
func NewGauge(name string) *Gauge {
	return &Gauge{name: name}
}

func (g *Gauge) Set(v int64) { g.value.Store(v) }
func (g *Gauge) Inc()        { g.value.Add(1) }
func (g *Gauge) Dec()        { g.value.Add(-1) }

// Value returns the current value.
func (g *Gauge) Value() int64 { return g.value.Load() }

// Name returns the metric name.
func (g *Gauge) Name() string { return g.name }

// Histogram summarises observed values as count, sum, min and max.
type Histogram struct {
	name string

	mu    sync.Mutex
	count int64
	sum   float64
	min   float64
	max   float64
}

// NewHistogram returns an empty Histogram.
func NewHistogram(name string) *Histogram {
	return &Histogram{name: name, min: math.Inf(1), max: math.Inf(-1)}
}

// Observe records v.
func (h *Histogram) Observe(v float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += v
	h.min = math.Min(h.min, v)
	h.max = math.Max(h.max, v)
}

// HistogramSummary is a consistent view of a Histogram. Min, Max and Mean
// are zero when Count is zero.
type HistogramSummary struct {
	Count int64
	Sum   float64
	Min   float64
	Max   float64
	Mean  float64
}

// Summary returns all statistics under a single lock.
func (h *Histogram) Summary() HistogramSummary {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.count == 0 {
		return HistogramSummary{}
	}
	return HistogramSummary{
		Count: h.count,
		Sum:   h.sum,
		Min:   h.min,
		Max:   h.max,
		Mean:  h.sum / float64(h.count),
	}
}

func (h *Histogram) Count() int64  { return h.Summary().Count }
func (h *Histogram) Sum() float64  { return h.Summary().Sum }
func (h *Histogram) Min() float64  { return h.Summary().Min }
func (h *Histogram) Max() float64  { return h.Summary().Max }
func (h *Histogram) Mean() float64 { return h.Summary().Mean }

// Name returns the metric name.
func (h *Histogram) Name() string { return h.name }

// Timer measures one operation and records its duration, in microseconds,
// into a Histogram.
type Timer struct {
	start time.Time
	hist  *Histogram
}

// NewTimer starts a Timer that reports to h. A nil h only measures.
func NewTimer(h *Histogram) *Timer {
	return &Timer{start: time.Now(), hist: h}
}

// Stop records and returns the elapsed time.
func (t *Timer) Stop() time.Duration {
	d := time.Since(t.start)
	if t.hist != nil {
		t.hist.Observe(float64(d.Microseconds()))
	}
	return d
}
