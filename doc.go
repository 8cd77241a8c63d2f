// Package parloop splits flat, CPU-bound loops across goroutines and returns
// once every iteration has run. It targets short-lived callers (frame loops,
// data pipelines) where the dispatch mechanism itself must stay cheap: no
// task queues, no state retained between calls, pooled batch buffers.
//
// Entry points
//   - For(from, to, body): partitions the index range [from, to) into one
//     contiguous chunk per worker, with no shared mutable state.
//   - ForEach(items, body): random-access collections; reduces to For over
//     the index space, so it needs no locking either.
//   - ForEachSeq(src, body): pull-based, single-pass sequences whose length
//     may be unknown; workers pull fixed-size batches from a shared cursor
//     under a mutex and process them outside the lock.
//   - ForEachChan(in, body): channel intake adapter over ForEachSeq.
//
// Defaults
// Unless overridden via options, a call uses:
//   - Parallelism: runtime.GOMAXPROCS(0)
//   - MaxWorkers: equal to parallelism
//   - BatchSize: derived from the size hint, or 64 when none exists
//   - FaultHandler: the standard logger
//   - Metrics: a no-op provider
//
// Scheduling
// When the total work is smaller than the effective worker count, the call
// degrades to plain sequential iteration on the calling goroutine; this is
// the only path with a deterministic visit order. Otherwise workers run
// concurrently and no cross-chunk or cross-batch ordering is guaranteed.
//
// Failure policy
// A panicking body is contained per item: the panic is wrapped in
// ErrBodyPanicked, handed to the configured FaultHandler, and the remaining
// items still run. The call returns normally; faults are observable only
// through the handler. There is no cancellation and no timeout: a call
// blocks until every dispatched worker has signaled completion.
package parloop
