package pool

import "sync"

type dynamic[T any] struct {
	p sync.Pool
}

// NewDynamic returns a pool that grows and shrinks with demand via sync.Pool.
// Idle objects may be dropped by the runtime at any GC cycle.
func NewDynamic[T any](newFn func() T) Pool[T] {
	return &dynamic[T]{
		p: sync.Pool{New: func() any { return newFn() }},
	}
}

func (d *dynamic[T]) Get() T {
	return d.p.Get().(T)
}

func (d *dynamic[T]) Put(el T) {
	d.p.Put(el)
}
