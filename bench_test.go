package parloop

import (
	"sync/atomic"
	"testing"
)

func BenchmarkFor(b *testing.B) {
	var sink atomic.Int64
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = For(0, 1<<16, func(j int) {
			sink.Add(int64(j & 1))
		})
	}
}

func BenchmarkFor_SequentialBaseline(b *testing.B) {
	var sink atomic.Int64
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		for j := 0; j < 1<<16; j++ {
			sink.Add(int64(j & 1))
		}
	}
}

func BenchmarkForEachSeq(b *testing.B) {
	var sink atomic.Int64
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = ForEachSeq(genSeq(1<<14), func(v int) {
			sink.Add(int64(v & 1))
		}, WithSizeHint(1<<14))
	}
}
