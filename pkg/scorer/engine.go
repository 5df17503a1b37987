package scorer

import (
	"context"
	"log/slog"
	"sync"

	"github.com/toyinlola/clausecheck/pkg/interfaces"
)

// Engine scores batches of classified clauses.
type Engine struct {
	calibrate bool
}

// Option configures the Engine.
type Option func(*Engine)

// WithCalibration toggles confidence calibration. Enabled by default;
// disabling it scores clauses on the raw classifier confidence.
func WithCalibration(enabled bool) Option {
	return func(e *Engine) {
		e.calibrate = enabled
	}
}

// NewEngine creates a scoring engine with optional configuration.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{calibrate: true}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Analyze scores every clause in parallel, one goroutine per clause.
// Per-clause scoring is a pure function with no shared mutable state, so no
// ordering is required among clauses; results land at their originating
// index. Respects context cancellation: on cancel the partial results are
// returned along with the context error.
func (e *Engine) Analyze(ctx context.Context, clauses []interfaces.ClauseInput) ([]interfaces.RiskAssessment, error) {
	if len(clauses) == 0 {
		slog.Info("no clauses to score")
		return nil, nil
	}

	slog.Info("scoring clauses", "count", len(clauses))

	assessments := make([]interfaces.RiskAssessment, len(clauses))
	var wg sync.WaitGroup

	for i, clause := range clauses {
		wg.Add(1)
		go func(i int, clause interfaces.ClauseInput) {
			defer wg.Done()

			if ctx.Err() != nil {
				return
			}
			assessments[i] = e.ScoreClause(clause)
		}(i, clause)
	}

	// Wait for all clauses or context cancellation.
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		// All clauses scored.
	case <-ctx.Done():
		slog.Warn("scoring cancelled", "error", ctx.Err())
		<-done
		return assessments, ctx.Err()
	}

	return assessments, nil
}
