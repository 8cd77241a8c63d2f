package parloop

import "github.com/ygrebnov/errorc"

// ForEach applies body to every element of items concurrently. Slices are
// random access, so the call reduces to For over the index space and needs no
// locking. A nil or empty slice is a no-op.
func ForEach[T any](items []T, body func(T), opts ...Option) error {
	if body == nil {
		return errorc.With(ErrInvalidArgument, errorc.String("argument", "body"))
	}
	return For(0, len(items), func(i int) { body(items[i]) }, opts...)
}
