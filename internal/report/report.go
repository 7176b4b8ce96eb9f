// Package report filters the upper triangle of a similarity matrix against
// a threshold, orders the surviving pairs, and serializes them one per line:
//
//	Row 1: cat	Row 2: cot	Similarity: 66.67%
//
// Rows are 1-indexed in the output; internally everything is 0-indexed.
package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/simtools/wordsim/internal/matrix"
	"github.com/simtools/wordsim/internal/wordlist"
)

// Pair is a matching word pair with I < J. WordI and WordJ carry the
// original (pre-normalization) text.
type Pair struct {
	Score float64
	I     int
	J     int
	WordI string
	WordJ string
}

// Collect returns every pair (i, j) with i < j and m.At(i, j) >= minMatch.
// minMatch is a fraction: values <= 0 admit all pairs, values > 1 admit
// none. Out-of-range thresholds are deliberately not rejected here; the
// filter semantics make them well defined.
func Collect(m *matrix.Matrix, words wordlist.List, minMatch float64) []Pair {
	var pairs []Pair
	n := m.Dim()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if s := m.At(i, j); s >= minMatch {
				pairs = append(pairs, Pair{
					Score: s,
					I:     i,
					J:     j,
					WordI: words[i].Original,
					WordJ: words[j].Original,
				})
			}
		}
	}
	return pairs
}

// Sort orders pairs descending by score, breaking ties ascending by (I, J).
// The secondary key makes output byte-identical across runs and across
// worker counts.
func Sort(pairs []Pair) {
	sort.Slice(pairs, func(a, b int) bool {
		pa, pb := pairs[a], pairs[b]
		if pa.Score != pb.Score {
			return pa.Score > pb.Score
		}
		if pa.I != pb.I {
			return pa.I < pb.I
		}
		return pa.J < pb.J
	})
}

// Write serializes pairs to w, one tab-separated line each.
func Write(w io.Writer, pairs []Pair) error {
	bw := bufio.NewWriter(w)
	for _, p := range pairs {
		if _, err := fmt.Fprintf(bw, "Row %d: %s\tRow %d: %s\tSimilarity: %.2f%%\n",
			p.I+1, p.WordI, p.J+1, p.WordJ, p.Score*100); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// WriteFile creates path and writes the report into it. On failure the file
// may be left behind truncated; there is no atomic rename.
func WriteFile(path string, pairs []Pair) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output %s: %w", path, err)
	}
	if err := Write(f, pairs); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output %s: %w", path, err)
	}
	return nil
}
