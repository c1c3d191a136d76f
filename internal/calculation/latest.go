package calculation

import (
	"context"
	"sync"

	"github.com/wealthpath/wealth-calculator/internal/domain"
)

// Result is a completed background projection.
type Result struct {
	Submission uint64
	Input      domain.ProjectionInput
	Series     domain.ProjectionSeries
	Err        error
}

// LatestRunner runs projections in the background with last-submission-wins
// semantics: a newer submission cancels any in-flight one, and only the most
// recent submission's result is ever delivered.
type LatestRunner struct {
	project func(context.Context, domain.ProjectionInput) (domain.ProjectionSeries, error)
	logger  Logger

	mu     sync.Mutex
	seq    uint64
	cancel context.CancelFunc
	latest *Result
}

// NewLatestRunner creates a runner backed by engine.
func NewLatestRunner(engine *ProjectionEngine) *LatestRunner {
	return &LatestRunner{project: engine.Project, logger: orNop(engine.Logger)}
}

// Submit starts a projection and returns a channel that receives the whole
// result once, or is closed without a value if a newer submission supersedes it.
func (lr *LatestRunner) Submit(ctx context.Context, in domain.ProjectionInput) <-chan Result {
	out := make(chan Result, 1)

	lr.mu.Lock()
	lr.seq++
	seq := lr.seq
	if lr.cancel != nil {
		lr.cancel()
	}
	runCtx, cancel := context.WithCancel(ctx)
	lr.cancel = cancel
	lr.mu.Unlock()

	go func() {
		defer close(out)
		series, err := lr.project(runCtx, in)

		lr.mu.Lock()
		defer lr.mu.Unlock()
		if seq != lr.seq {
			lr.logger.Debugf("discarding stale projection #%d (latest is #%d)", seq, lr.seq)
			return
		}
		cancel()
		lr.cancel = nil

		res := Result{Submission: seq, Input: in, Series: series, Err: err}
		lr.latest = &res
		out <- res
	}()
	return out
}

// Latest returns the most recently delivered result.
func (lr *LatestRunner) Latest() (Result, bool) {
	lr.mu.Lock()
	defer lr.mu.Unlock()
	if lr.latest == nil {
		return Result{}, false
	}
	return *lr.latest, true
}
