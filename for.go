package parloop

import (
	"sync"

	"github.com/ygrebnov/errorc"
)

// For applies body to every index in [from, to), splitting the range into one
// contiguous chunk per worker. It returns once every index has been visited
// (modulo the contained-fault policy; see package docs).
//
// An empty or inverted range is a no-op, not an error. When the range holds
// fewer indices than the effective worker count, the whole range runs on the
// calling goroutine in ascending order and nothing is dispatched.
//
// Within a chunk indices are visited in ascending order; across chunks there
// is no ordering guarantee.
func For(from, to int, body func(int), opts ...Option) error {
	if body == nil {
		return errorc.With(ErrInvalidArgument, errorc.String("argument", "body"))
	}
	s, err := newSched(opts)
	if err != nil {
		return err
	}
	s.forRange(from, to, body)
	return nil
}

func (s *sched) forRange(from, to int, body func(int)) {
	total := to - from
	if total <= 0 {
		return
	}

	workers := s.cfg.effectiveWorkers()
	if total < workers {
		// Dispatch would cost more than the work itself.
		for i := from; i < to; i++ {
			s.invokeIndex(body, i)
		}
		s.items.Add(int64(total))
		return
	}

	spans := splitRange(from, to, workers)
	var wg sync.WaitGroup
	wg.Add(len(spans))
	for _, sp := range spans {
		go s.runChunk(&wg, sp, body)
	}
	wg.Wait()
	s.items.Add(int64(total))
}

// runChunk is the worker boundary for range work: it signals the barrier on
// every exit path.
func (s *sched) runChunk(wg *sync.WaitGroup, sp span, body func(int)) {
	defer wg.Done()
	s.inflight.Add(1)
	defer s.inflight.Add(-1)
	for i := sp.start; i < sp.end; i++ {
		s.invokeIndex(body, i)
	}
}

// span is a contiguous sub-range of indices assigned to one worker.
type span struct {
	start, end int
}

// splitRange cuts [from, to) into exactly workers contiguous, non-overlapping
// spans. The first workers-1 spans hold total/workers indices each; the last
// span absorbs the remainder, so it may be up to workers-1 indices larger.
// Requires to-from >= workers >= 1.
func splitRange(from, to, workers int) []span {
	size := (to - from) / workers
	spans := make([]span, workers)
	start := from
	for i := 0; i < workers-1; i++ {
		spans[i] = span{start: start, end: start + size}
		start += size
	}
	spans[workers-1] = span{start: start, end: to}
	return spans
}
