package pool

import (
	"sync"

	"github.com/eapache/queue"
)

type bounded[T any] struct {
	mu       sync.Mutex
	idle     *queue.Queue
	capacity int
	newFn    func() T
}

// NewBounded returns a pool that keeps at most capacity idle objects on a
// FIFO free list. Get falls back to newFn when the list is empty; Put
// discards objects beyond capacity so retained memory stays bounded.
func NewBounded[T any](capacity int, newFn func() T) Pool[T] {
	return &bounded[T]{
		idle:     queue.New(),
		capacity: capacity,
		newFn:    newFn,
	}
}

func (b *bounded[T]) Get() T {
	b.mu.Lock()
	if b.idle.Length() > 0 {
		el := b.idle.Remove().(T)
		b.mu.Unlock()
		return el
	}
	b.mu.Unlock()
	return b.newFn()
}

func (b *bounded[T]) Put(el T) {
	b.mu.Lock()
	if b.idle.Length() < b.capacity {
		b.idle.Add(el)
	}
	b.mu.Unlock()
}
