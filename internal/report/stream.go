package report

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/simtools/wordsim/internal/matrix"
	"github.com/simtools/wordsim/internal/progress"
	"github.com/simtools/wordsim/internal/wordlist"
)

// Stream computes and filters row by row without materializing the N×N
// matrix: each worker scores one row into a pooled buffer, keeps the
// qualifying pairs, and discards the row. Memory is O(N) per worker instead
// of O(N²) total, which is what makes word lists near the upper input bound
// feasible. The result is unordered; callers sort it.
func Stream(ctx context.Context, e *matrix.Engine, words wordlist.List, minMatch float64, obs progress.Observer) ([]Pair, error) {
	if obs == nil {
		obs = progress.Nop{}
	}
	n := len(words)
	obs.Start(int64(n))
	defer obs.Finish()

	bufs := sync.Pool{New: func() any {
		b := make([]float64, n)
		return &b
	}}

	var mu sync.Mutex
	var pairs []Pair

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.Workers())
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			row := bufs.Get().(*[]float64)
			e.ScoreRow(*row, words, i)

			var local []Pair
			for j := i + 1; j < n; j++ {
				if s := (*row)[j]; s >= minMatch {
					local = append(local, Pair{
						Score: s,
						I:     i,
						J:     j,
						WordI: words[i].Original,
						WordJ: words[j].Original,
					})
				}
			}
			bufs.Put(row)

			if len(local) > 0 {
				mu.Lock()
				pairs = append(pairs, local...)
				mu.Unlock()
			}
			obs.Increment(1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return pairs, nil
}
