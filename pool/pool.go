// Package pool provides small reusable-object pools used to recycle batch
// buffers between workers. Two implementations exist: a dynamic pool backed
// by sync.Pool, and a bounded pool that retains at most a fixed number of
// idle objects on a FIFO free list.
package pool

// Pool hands out reusable objects. Implementations are safe for concurrent
// use. Objects must be rented via Get and returned exactly once via Put;
// an object must not be used after it is returned.
type Pool[T any] interface {
	Get() T
	Put(T)
}
