package parloop

import (
	"iter"
	"sync"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/parloop/pool"
)

// ForEachSeq applies body to every element of a pull-based, single-pass
// sequence. Workers pull fixed-size batches from a shared cursor under a
// mutex, then process the batch outside the lock, so caller code never runs
// while the cursor is held. Every element is processed exactly once;
// element-to-worker assignment is first-pulls-first-served and therefore
// non-deterministic.
//
// WithSizeHint enables the sequential small-workload fallback, clamps the
// worker count to the number of batches worth dispatching, and sizes batches;
// without a hint the batch size defaults to 64. For random-access data prefer
// ForEach, which avoids the cursor lock entirely.
func ForEachSeq[T any](src iter.Seq[T], body func(T), opts ...Option) error {
	if src == nil {
		return errorc.With(ErrInvalidArgument, errorc.String("argument", "src"))
	}
	if body == nil {
		return errorc.With(ErrInvalidArgument, errorc.String("argument", "body"))
	}
	s, err := newSched(opts)
	if err != nil {
		return err
	}
	forSeq(s, src, body)
	return nil
}

func forSeq[T any](s *sched, src iter.Seq[T], body func(T)) {
	workers := s.cfg.effectiveWorkers()
	hint := s.cfg.sizeHint

	if hint > 0 && hint < workers && !s.cfg.force {
		// Dispatch would cost more than the work itself.
		n := 0
		for v := range src {
			invokeItem(s, body, v)
			n++
		}
		s.items.Add(int64(n))
		return
	}

	batchSize := s.cfg.batchSizeFor(workers)
	if hint > 0 {
		// Never spin up more workers than there are batches to pull.
		if useful := (hint + batchSize - 1) / batchSize; useful < workers {
			workers = useful
		}
	}

	next, stop := iter.Pull(src)
	defer stop()
	cur := newCursor(next)
	buffers := pool.NewBounded(workers, func() []T {
		return make([]T, 0, batchSize)
	})

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go runBatches(s, &wg, cur, buffers, batchSize, body)
	}
	wg.Wait()
}

// runBatches is the worker boundary for sequence work: it signals the barrier
// on every exit path and keeps pulling until the cursor runs dry.
func runBatches[T any](
	s *sched, wg *sync.WaitGroup, cur *cursor[T], buffers pool.Pool[[]T], batchSize int, body func(T),
) {
	defer wg.Done()
	s.inflight.Add(1)
	defer s.inflight.Add(-1)
	for processBatch(s, cur, buffers, batchSize, body) {
	}
}

// processBatch pulls one batch under the cursor lock and processes it outside
// the lock. It returns false once the sequence is exhausted. The rented
// buffer goes back to the pool on every exit path.
func processBatch[T any](
	s *sched, cur *cursor[T], buffers pool.Pool[[]T], batchSize int, body func(T),
) bool {
	buf := buffers.Get()
	defer func() { buffers.Put(buf[:0]) }()

	buf = cur.pull(buf, batchSize)
	if len(buf) == 0 {
		return false
	}
	for _, v := range buf {
		invokeItem(s, body, v)
	}
	s.items.Add(int64(len(buf)))
	s.batches.Add(1)
	s.batchLen.Record(float64(len(buf)))
	return true
}
