package progressive

import (
	"time"

	"github.com/plotstream/plotstream/src/chartdata"
)

// Options configures one load request. The zero value means "disabled, all
// defaults"; withDefaults fills unset fields without mutating the receiver.
type Options struct {
	// Enabled turns on chunked loading. Off means one synchronous pass.
	Enabled bool
	// ChunkSize is the number of points per chunk. Zero picks the default.
	ChunkSize int
	// InterChunkDelay is the cooperative pause between chunks, the only
	// point where other work (rendering, input) gets to run.
	InterChunkDelay time.Duration
}

const (
	defaultChunkSize       = 75
	defaultInterChunkDelay = 40 * time.Millisecond
)

// DefaultOptions returns the recognized defaults.
func DefaultOptions() Options {
	return Options{Enabled: false, ChunkSize: defaultChunkSize, InterChunkDelay: defaultInterChunkDelay}
}

// withDefaults merges unset fields with defaults and rejects invalid values.
// Pure: the receiver is copied, never mutated.
func (o Options) withDefaults() (Options, error) {
	if o.ChunkSize < 0 {
		return o, chartdata.ConfigErrorf("progressive.Load", "chunk size must be positive, got %d", o.ChunkSize)
	}
	if o.ChunkSize == 0 {
		o.ChunkSize = defaultChunkSize
	}
	if o.InterChunkDelay < 0 {
		return o, chartdata.ConfigErrorf("progressive.Load", "inter-chunk delay must be >= 0, got %s", o.InterChunkDelay)
	}
	return o, nil
}
