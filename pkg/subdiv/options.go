package subdiv

import (
	"runtime"

	"go.uber.org/zap"
)

// minChunk is the smallest number of items handed to one worker.
const minChunk = 1024

type options struct {
	workers  int
	logger   *zap.Logger
	minChunk int
}

func defaultOptions() options {
	return options{
		workers:  runtime.GOMAXPROCS(0),
		logger:   zap.NewNop(),
		minChunk: minChunk,
	}
}

// Option configures Step and Subdivide.
type Option func(*options)

// WithWorkers sets the number of goroutines used per phase.
// Values below 1 select runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = runtime.GOMAXPROCS(0)
		}
		o.workers = n
	}
}

// WithLogger sets the logger for per-iteration diagnostics.
// A nil logger disables logging.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.logger = l
	}
}

// withChunkSize overrides the minimum chunk size. Tests use it to force
// small meshes through the parallel path.
func withChunkSize(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = 1
		}
		o.minChunk = n
	}
}
