package parloop

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestForEach_NilBody(t *testing.T) {
	err := ForEach([]int{1, 2, 3}, nil)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestForEach_NilSliceIsNoop(t *testing.T) {
	var calls atomic.Int64
	err := ForEach(nil, func(string) { calls.Add(1) })
	require.NoError(t, err)
	require.Zero(t, calls.Load())
}

func TestForEach_VisitsEveryElementExactlyOnce(t *testing.T) {
	items := make([]string, 0, 100)
	for i := 0; i < 100; i++ {
		items = append(items, string(rune('a'+i%26)))
	}

	var mu sync.Mutex
	counts := make(map[string]int)
	err := ForEach(items, func(s string) {
		mu.Lock()
		counts[s]++
		mu.Unlock()
	}, WithParallelism(4))
	require.NoError(t, err)

	want := make(map[string]int)
	for _, s := range items {
		want[s]++
	}
	require.Equal(t, want, counts)
}

func TestForEach_SmallSliceSequentialOrder(t *testing.T) {
	var visited []int
	err := ForEach([]int{7, 8, 9}, func(v int) { visited = append(visited, v) },
		WithParallelism(8))
	require.NoError(t, err)
	require.Equal(t, []int{7, 8, 9}, visited)
}

func TestForEach_FaultIsolation(t *testing.T) {
	items := make([]int, 64)
	for i := range items {
		items[i] = i
	}
	rec := newVisitRecorder()
	var faults atomic.Int64
	err := ForEach(items, func(v int) {
		if v == 10 {
			panic("bad element")
		}
		rec.record(v)
	}, WithParallelism(4), WithFaultHandler(func(error) { faults.Add(1) }))
	require.NoError(t, err)
	require.Len(t, rec.snapshot(), 63)
	require.EqualValues(t, 1, faults.Load())
}
