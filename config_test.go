package parloop

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()
	require.Equal(t, runtime.GOMAXPROCS(0), cfg.parallelism)
	require.Zero(t, cfg.maxWorkers)
	require.False(t, cfg.force)
	require.Zero(t, cfg.batchSize)
	require.Zero(t, cfg.sizeHint)
	require.NotNil(t, cfg.faults)
	require.NotNil(t, cfg.metrics)
}

func TestNewConfig_SkipsNilOptions(t *testing.T) {
	cfg, err := newConfig([]Option{nil, WithParallelism(3), nil})
	require.NoError(t, err)
	require.Equal(t, 3, cfg.parallelism)
}

func TestOptions_Validation(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
	}{
		{"WithParallelism zero", WithParallelism(0)},
		{"WithParallelism negative", WithParallelism(-1)},
		{"WithMaxWorkers zero", WithMaxWorkers(0)},
		{"WithBatchSize zero", WithBatchSize(0)},
		{"WithSizeHint negative", WithSizeHint(-1)},
		{"WithFaultHandler nil", WithFaultHandler(nil)},
		{"WithMetrics nil", WithMetrics(nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newConfig([]Option{tt.opt})
			require.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestConfig_EffectiveWorkers(t *testing.T) {
	tests := []struct {
		name        string
		parallelism int
		maxWorkers  int
		force       bool
		want        int
	}{
		{"default uses parallelism", 4, 0, false, 4},
		{"hint clamped to parallelism", 4, 8, false, 4},
		{"hint below parallelism wins", 8, 2, false, 2},
		{"forced hint exceeds parallelism", 2, 8, true, 8},
		{"forced without hint uses parallelism", 4, 0, true, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config{parallelism: tt.parallelism, maxWorkers: tt.maxWorkers, force: tt.force}
			require.Equal(t, tt.want, cfg.effectiveWorkers())
		})
	}
}

func TestConfig_BatchSizeFor(t *testing.T) {
	tests := []struct {
		name      string
		batchSize int
		sizeHint  int
		workers   int
		want      int
	}{
		{"explicit size wins", 7, 100_000, 4, 7},
		{"no hint falls back to default", 0, 0, 4, defaultBatchSize},
		{"hint sized to batches per worker", 0, 1600, 4, 100},
		{"large hint clamped to max", 0, 1_000_000, 4, maxBatchSize},
		{"small hint clamped to min", 0, 10, 4, minBatchSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config{batchSize: tt.batchSize, sizeHint: tt.sizeHint}
			require.Equal(t, tt.want, cfg.batchSizeFor(tt.workers))
		})
	}
}
