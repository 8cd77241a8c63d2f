package parloop

import (
	"github.com/ygrebnov/parloop/metrics"
)

// sched carries the resolved configuration and instruments for one call.
// It is created at the start of For/ForEach and discarded when the call
// returns; nothing is shared between invocations.
type sched struct {
	cfg config

	// instruments, resolved once per call
	items    metrics.Counter
	batches  metrics.Counter
	faults   metrics.Counter
	inflight metrics.UpDownCounter
	batchLen metrics.Histogram
}

func newSched(opts []Option) (*sched, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	p := cfg.metrics
	return &sched{
		cfg:      cfg,
		items:    p.Counter("parloop.items.processed"),
		batches:  p.Counter("parloop.batches.pulled"),
		faults:   p.Counter("parloop.faults.contained"),
		inflight: p.UpDownCounter("parloop.workers.inflight"),
		batchLen: p.Histogram("parloop.batch.size"),
	}, nil
}

// invokeIndex runs body(i) inside the per-item containment boundary.
func (s *sched) invokeIndex(body func(int), i int) {
	defer s.recoverFault()
	body(i)
}

// invokeItem runs body(v) inside the per-item containment boundary.
// Free function because methods cannot carry type parameters.
func invokeItem[T any](s *sched, body func(T), v T) {
	defer s.recoverFault()
	body(v)
}
