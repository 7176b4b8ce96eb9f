package matrix

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/simtools/wordsim/internal/progress"
	"github.com/simtools/wordsim/internal/wordlist"
)

// Engine runs the all-pairs comparison across a bounded worker pool.
type Engine struct {
	metric  *Metric
	workers int
}

// NewEngine builds an engine around a metric. workers <= 0 selects one
// worker per CPU; the work is CPU-bound so more buys nothing.
func NewEngine(metric *Metric, workers int) *Engine {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Engine{metric: metric, workers: workers}
}

// Workers returns the configured pool size.
func (e *Engine) Workers() int { return e.workers }

// Compute materializes the full N×N matrix. Row i scores columns j >= i and
// mirrors each score into (j, i), so the cell at (i, j) is written exactly
// once, by the row worker with the smaller index. The observer receives one
// increment per completed row. The only failure mode is context
// cancellation; every string pair has a defined score.
func (e *Engine) Compute(ctx context.Context, words wordlist.List, obs progress.Observer) (*Matrix, error) {
	if obs == nil {
		obs = progress.Nop{}
	}
	n := len(words)
	obs.Start(int64(n))
	defer obs.Finish()

	m := newMatrix(n)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)

	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			m.set(i, i, 1.0)
			for j := i + 1; j < n; j++ {
				s := e.score(words[i], words[j])
				m.set(i, j, s)
				m.set(j, i, s)
			}
			obs.Increment(1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return m, nil
}

// ScoreRow fills dst[j] with the score for (i, j) for every j > i, leaving
// other slots untouched. dst must have length >= len(words). This is the
// row primitive behind the streaming report path, which never holds more
// than one row per worker in memory.
func (e *Engine) ScoreRow(dst []float64, words wordlist.List, i int) {
	for j := i + 1; j < len(words); j++ {
		dst[j] = e.score(words[i], words[j])
	}
}

// score short-circuits identical normalized strings via their fingerprints
// before paying for the edit-distance computation.
func (e *Engine) score(a, b wordlist.Entry) float64 {
	if a.Fingerprint == b.Fingerprint && a.Normalized == b.Normalized {
		return 1.0
	}
	return e.metric.Similarity(a.Normalized, b.Normalized)
}
