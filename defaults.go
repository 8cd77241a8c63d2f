package parloop

import (
	"runtime"

	"github.com/ygrebnov/parloop/metrics"
)

// Batch sizing for pull sequences. With a size hint, batches target
// batchesPerWorker lock acquisitions per worker so pull contention stays low
// without letting one worker starve the others on skewed workloads.
const (
	defaultBatchSize = 64
	minBatchSize     = 4
	maxBatchSize     = 512
	batchesPerWorker = 4
)

// defaultConfig centralizes default values for config.
// Every For/ForEach call starts from these before options are applied.
func defaultConfig() config {
	return config{
		parallelism: runtime.GOMAXPROCS(0),
		maxWorkers:  0, // use parallelism
		force:       false,
		batchSize:   0, // derive from size hint
		sizeHint:    0, // unknown
		faults:      logFaults,
		metrics:     metrics.NewNoopProvider(),
	}
}
