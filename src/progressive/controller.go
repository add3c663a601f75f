// Package progressive orchestrates chunked, cooperatively scheduled trace
// construction with progress reporting and stale-request discarding.
package progressive

import (
	"fmt"
	"sync"
	"time"

	"github.com/plotstream/plotstream/src/chartdata"
	"github.com/plotstream/plotstream/src/colorscale"
	"github.com/plotstream/plotstream/src/tracegen"
)

// State is the controller's lifecycle state.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateComplete
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateComplete:
		return "complete"
	case StateError:
		return "error"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// ChunkProgress describes one observed progress step. Recreated each chunk.
type ChunkProgress struct {
	Phase        string
	LoadedPoints int
	TotalPoints  int
	Percentage   float64
}

// ProgressFunc is invoked after every published chunk.
type ProgressFunc func(percentage float64, phase string, loadedPoints int)

// CompleteFunc is invoked once per successful load.
type CompleteFunc func(totalPoints int, stats chartdata.StatisticsSnapshot)

// Controller owns the published trace list, progress state and statistics
// snapshot. All published values are replaced wholesale under the mutex so
// readers always observe a fully formed snapshot.
//
// Overlapping Load calls supersede: each request captures a token from a
// monotonically increasing counter, and a goroutine whose token is no longer
// current publishes nothing, including its completion.
type Controller struct {
	synth *tracegen.Synthesizer

	mu       sync.Mutex
	token    uint64
	state    State
	phase    string
	traces   []tracegen.Trace
	progress ChunkProgress
	stats    *chartdata.StatisticsSnapshot
}

// NewController returns an idle controller synthesizing colors through scale.
// A zero scale falls back to the default preset.
func NewController(scale colorscale.Scale) *Controller {
	return &Controller{synth: tracegen.New(scale), state: StateIdle, phase: "Idle"}
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Phase returns the current human-readable phase label.
func (c *Controller) Phase() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// Traces returns the most recently published trace list. The slice is
// replaced wholesale on every update; callers must not mutate it.
func (c *Controller) Traces() []tracegen.Trace {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.traces
}

// Progress returns the most recent chunk progress.
func (c *Controller) Progress() ChunkProgress {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.progress
}

// Statistics returns the snapshot of the last completed load, or nil while
// none has completed since the last request began.
func (c *Controller) Statistics() *chartdata.StatisticsSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

// Load starts a new load request. Configuration errors surface synchronously;
// everything else is observable through the getters and callbacks. With
// chunking disabled the whole load runs before Load returns; with chunking
// enabled it runs on a background goroutine and Load returns immediately.
// A Load arriving while another is in flight supersedes it.
func (c *Controller) Load(series []chartdata.Series, opts Options, onProgress ProgressFunc, onComplete CompleteFunc) error {
	opts, err := opts.withDefaults()
	if err != nil {
		return err
	}

	cleaned := make([]chartdata.Series, len(series))
	for i, s := range series {
		cs, warnings := chartdata.ValidateSeries(s)
		for _, w := range warnings {
			chartdata.Warnf("%s", w)
		}
		cleaned[i] = cs
	}
	total := chartdata.TotalPointCount(cleaned)
	if total > chartdata.OversizedPointThreshold {
		chartdata.Warnf("load request carries %d points; chunked loading is strongly advised", total)
	}

	c.mu.Lock()
	c.token++
	tok := c.token
	c.state = StateLoading
	c.stats = nil
	c.phase = "Preparing load"
	c.progress = ChunkProgress{Phase: c.phase, TotalPoints: total}
	c.mu.Unlock()

	if !opts.Enabled {
		c.runDirect(cleaned, total, tok, onProgress, onComplete)
		return nil
	}
	go c.runChunked(cleaned, total, opts, tok, onProgress, onComplete)
	return nil
}

// runDirect synthesizes every series in one pass, no chunking.
func (c *Controller) runDirect(series []chartdata.Series, total int, tok uint64, onProgress ProgressFunc, onComplete CompleteFunc) {
	defer c.recoverLoad(tok)
	defer chartdata.TimeTrack(time.Now(), "direct load")
	counts := make([]int, len(series))
	for i, s := range series {
		counts[i] = len(s.Points)
	}
	traces, err := c.buildTraces(series, counts)
	if err != nil {
		c.fail(tok, err)
		return
	}
	phase := fmt.Sprintf("Loading %d points", total)
	if !c.publish(tok, traces, ChunkProgress{Phase: phase, LoadedPoints: total, TotalPoints: total, Percentage: pct(total, total)}) {
		return
	}
	if onProgress != nil {
		onProgress(pct(total, total), phase, total)
	}
	c.finish(series, total, tok, onComplete)
}

// runChunked walks series in order, chunk by chunk, publishing after each
// chunk and sleeping the inter-chunk delay before the next one.
func (c *Controller) runChunked(series []chartdata.Series, total int, opts Options, tok uint64, onProgress ProgressFunc, onComplete CompleteFunc) {
	defer c.recoverLoad(tok)
	defer chartdata.TimeTrack(time.Now(), "chunked load")
	counts := make([]int, len(series))
	loaded := 0
	if total == 0 {
		// nothing to chunk; still clear out any previously published traces
		c.publish(tok, nil, ChunkProgress{Phase: "Loading 0 points", Percentage: 100})
	}
	for si, s := range series {
		for off := 0; off < len(s.Points); off += opts.ChunkSize {
			end := off + opts.ChunkSize
			if end > len(s.Points) {
				end = len(s.Points)
			}
			counts[si] = end
			loaded += end - off
			traces, err := c.buildTraces(series, counts)
			if err != nil {
				c.fail(tok, err)
				return
			}
			phase := fmt.Sprintf("Loading %s (%d/%d points)", s.Name, loaded, total)
			p := ChunkProgress{Phase: phase, LoadedPoints: loaded, TotalPoints: total, Percentage: pct(loaded, total)}
			if !c.publish(tok, traces, p) {
				chartdata.Debugf("discarding stale chunk for %s (token %d)", s.Name, tok)
				return
			}
			if onProgress != nil {
				onProgress(p.Percentage, phase, loaded)
			}
			if loaded < total {
				time.Sleep(opts.InterChunkDelay)
			}
		}
	}
	c.finish(series, total, tok, onComplete)
}

// finish aggregates statistics, transitions to Complete and fires onComplete,
// unless the request has been superseded.
func (c *Controller) finish(series []chartdata.Series, total int, tok uint64, onComplete CompleteFunc) {
	stats := chartdata.Aggregate(series)
	phase := fmt.Sprintf("Loaded %d points", total)

	c.mu.Lock()
	if tok != c.token {
		c.mu.Unlock()
		chartdata.Debugf("discarding stale completion (token %d)", tok)
		return
	}
	c.state = StateComplete
	c.phase = phase
	c.stats = &stats
	c.progress = ChunkProgress{Phase: phase, LoadedPoints: total, TotalPoints: total, Percentage: pct(total, total)}
	c.mu.Unlock()

	chartdata.Infof("load complete: %d points across %d series", total, stats.SeriesCount)
	if onComplete != nil {
		onComplete(total, stats)
	}
}

// buildTraces synthesizes the trace set for the loaded prefix of each series.
// counts[i] is how many points of series i are loaded so far. Feature ranges
// come from the full series up front so color mapping stays stable while
// chunks are still arriving; the first visible color-mapped series in the
// collection carries the shared color bar.
func (c *Controller) buildTraces(series []chartdata.Series, counts []int) ([]tracegen.Trace, error) {
	colorBarIdx := -1
	for i, s := range series {
		if s.Visible && s.Marker.UseColorFeature {
			colorBarIdx = i
			break
		}
	}
	var out []tracegen.Trace
	for i, s := range series {
		n := counts[i]
		if n > len(s.Points) {
			n = len(s.Points)
		}
		fr := chartdata.ColorFeatureRange(s.Points)
		traces, err := c.synth.Synthesize(s, s.Points[:n], tracegen.Options{
			ColorBar:     i == colorBarIdx,
			FeatureRange: &fr,
		})
		if err != nil {
			return nil, err
		}
		out = append(out, traces...)
	}
	return out, nil
}

// publish replaces the published traces and progress, refusing stale tokens.
func (c *Controller) publish(tok uint64, traces []tracegen.Trace, p ChunkProgress) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if tok != c.token {
		return false
	}
	c.traces = traces
	c.progress = p
	c.phase = p.Phase
	return true
}

// fail transitions a current request to the Error state. Previously
// published traces stay in place so the chart never goes blank.
func (c *Controller) fail(tok uint64, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if tok != c.token {
		chartdata.Debugf("discarding stale failure (token %d): %v", tok, err)
		return
	}
	c.state = StateError
	c.phase = fmt.Sprintf("error: %v", err)
	chartdata.Errorf("load failed: %v", err)
}

// recoverLoad converts an unexpected panic during chunk processing into the
// Error state instead of crashing the caller.
func (c *Controller) recoverLoad(tok uint64) {
	if r := recover(); r != nil {
		c.fail(tok, fmt.Errorf("unexpected failure: %v", r))
	}
}

func pct(loaded, total int) float64 {
	if total == 0 {
		return 100
	}
	return float64(loaded) / float64(total) * 100
}
