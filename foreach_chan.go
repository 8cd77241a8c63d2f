package parloop

import (
	"iter"

	"github.com/ygrebnov/errorc"
)

// ForEachChan applies body to every value received from in until the channel
// is closed. It adapts the channel into a pull sequence and delegates to
// ForEachSeq; the caller owns the channel and must close it for the call to
// return.
func ForEachChan[T any](in <-chan T, body func(T), opts ...Option) error {
	if in == nil {
		return errorc.With(ErrInvalidArgument, errorc.String("argument", "in"))
	}
	var src iter.Seq[T] = func(yield func(T) bool) {
		for v := range in {
			if !yield(v) {
				return
			}
		}
	}
	return ForEachSeq(src, body, opts...)
}
