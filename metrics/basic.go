package metrics

import (
	"sync"
	"sync/atomic"
)

// BasicProvider is a concurrency-safe in-memory Provider. Instruments are
// created on first use and reused for the same name; snapshots expose their
// state for assertions.
type BasicProvider struct {
	mu         sync.Mutex
	counters   map[string]*BasicCounter
	updowns    map[string]*BasicUpDownCounter
	histograms map[string]*BasicHistogram
}

// NewBasicProvider constructs an empty BasicProvider.
func NewBasicProvider() *BasicProvider {
	return &BasicProvider{
		counters:   make(map[string]*BasicCounter),
		updowns:    make(map[string]*BasicUpDownCounter),
		histograms: make(map[string]*BasicHistogram),
	}
}

// Counter returns the monotonic counter registered under name, creating it
// on first use.
func (p *BasicProvider) Counter(name string) Counter {
	p.mu.Lock()
	defer p.mu.Unlock()
	c, ok := p.counters[name]
	if !ok {
		c = &BasicCounter{}
		p.counters[name] = c
	}
	return c
}

// UpDownCounter returns the up/down counter registered under name, creating
// it on first use.
func (p *BasicProvider) UpDownCounter(name string) UpDownCounter {
	p.mu.Lock()
	defer p.mu.Unlock()
	u, ok := p.updowns[name]
	if !ok {
		u = &BasicUpDownCounter{}
		p.updowns[name] = u
	}
	return u
}

// Histogram returns the histogram registered under name, creating it on
// first use.
func (p *BasicProvider) Histogram(name string) Histogram {
	p.mu.Lock()
	defer p.mu.Unlock()
	h, ok := p.histograms[name]
	if !ok {
		h = &BasicHistogram{}
		p.histograms[name] = h
	}
	return h
}

// CounterValue returns the current value of the named counter, or zero when
// it was never recorded.
func (p *BasicProvider) CounterValue(name string) int64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	if c, ok := p.counters[name]; ok {
		return c.Snapshot()
	}
	return 0
}

// UpDownValue returns the current value of the named up/down counter, or
// zero when it was never recorded.
func (p *BasicProvider) UpDownValue(name string) int64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	if u, ok := p.updowns[name]; ok {
		return u.Snapshot()
	}
	return 0
}

// HistogramValue returns a snapshot of the named histogram, or the zero
// snapshot when it was never recorded.
func (p *BasicProvider) HistogramValue(name string) HistSnapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	if h, ok := p.histograms[name]; ok {
		return h.Snapshot()
	}
	return HistSnapshot{}
}

// BasicCounter is a thread-safe monotonic counter.
type BasicCounter struct {
	val atomic.Int64
}

// Add increments the counter by n.
func (c *BasicCounter) Add(n int64) { c.val.Add(n) }

// Snapshot returns the current value.
func (c *BasicCounter) Snapshot() int64 { return c.val.Load() }

// BasicUpDownCounter is a thread-safe up/down counter.
type BasicUpDownCounter struct {
	val atomic.Int64
}

// Add adds n (positive or negative) to the current value.
func (u *BasicUpDownCounter) Add(n int64) { u.val.Add(n) }

// Snapshot returns the current value.
func (u *BasicUpDownCounter) Snapshot() int64 { return u.val.Load() }

// BasicHistogram tracks count, sum, min, and max of recorded measurements.
// It keeps no buckets; it is a lightweight aggregator, not a full histogram.
type BasicHistogram struct {
	mu    sync.Mutex
	count int64
	sum   float64
	min   float64
	max   float64
}

// Record adds a measurement.
func (h *BasicHistogram) Record(v float64) {
	h.mu.Lock()
	if h.count == 0 {
		h.min, h.max = v, v
	} else {
		if v < h.min {
			h.min = v
		}
		if v > h.max {
			h.max = v
		}
	}
	h.count++
	h.sum += v
	h.mu.Unlock()
}

// HistSnapshot is an immutable snapshot of a BasicHistogram.
type HistSnapshot struct {
	Count int64
	Sum   float64
	Min   float64
	Max   float64
}

// Snapshot returns a copy of the histogram state at the time of call.
func (h *BasicHistogram) Snapshot() HistSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return HistSnapshot{Count: h.count, Sum: h.sum, Min: h.min, Max: h.max}
}
