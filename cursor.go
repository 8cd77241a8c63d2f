package parloop

import "sync"

// cursor wraps a pull-based sequence behind a mutex. Exactly one worker at a
// time advances it, so every element is observed by exactly one worker. The
// lock spans only the pull step; callers process pulled elements after
// releasing it.
type cursor[T any] struct {
	mu   sync.Mutex
	next func() (T, bool)
	done bool
}

func newCursor[T any](next func() (T, bool)) *cursor[T] {
	return &cursor[T]{next: next}
}

// pull appends up to max elements onto buf and returns the extended slice.
// A short or empty result means the sequence is exhausted.
func (c *cursor[T]) pull(buf []T, max int) []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	for !c.done && len(buf) < max {
		v, ok := c.next()
		if !ok {
			c.done = true
			break
		}
		buf = append(buf, v)
	}
	return buf
}
