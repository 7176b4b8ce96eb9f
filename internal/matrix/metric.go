package matrix

import (
	"fmt"

	"github.com/hbollon/go-edlib"
)

// Algorithm names a normalized similarity algorithm backed by go-edlib.
type Algorithm string

const (
	// Levenshtein is the default: 1 - editDistance/max(len1, len2).
	Levenshtein        Algorithm = "levenshtein"
	DamerauLevenshtein Algorithm = "damerau-levenshtein"
	Jaro               Algorithm = "jaro"
	JaroWinkler        Algorithm = "jaro-winkler"
	Cosine             Algorithm = "cosine"
)

var edlibAlgorithms = map[Algorithm]edlib.Algorithm{
	Levenshtein:        edlib.Levenshtein,
	DamerauLevenshtein: edlib.DamerauLevenshtein,
	Jaro:               edlib.Jaro,
	JaroWinkler:        edlib.JaroWinkler,
	Cosine:             edlib.Cosine,
}

// Metric scores string pairs in [0, 1]: 1 for identical strings, 0 for
// maximal dissimilarity. Inputs are expected to be normalized upstream;
// the metric itself is case-sensitive.
type Metric struct {
	name Algorithm
	alg  edlib.Algorithm
}

// NewMetric resolves an algorithm name. The empty name selects Levenshtein.
func NewMetric(name Algorithm) (*Metric, error) {
	if name == "" {
		name = Levenshtein
	}
	alg, ok := edlibAlgorithms[name]
	if !ok {
		return nil, fmt.Errorf("unknown similarity algorithm %q (valid: %s, %s, %s, %s, %s)",
			name, Levenshtein, DamerauLevenshtein, Jaro, JaroWinkler, Cosine)
	}
	return &Metric{name: name, alg: alg}, nil
}

// Name returns the resolved algorithm name.
func (m *Metric) Name() Algorithm { return m.name }

// Similarity scores a pair of strings. There is no error path: equal
// strings are exactly 1.0, a single empty side is 0.0, and everything else
// comes from the edlib algorithm selected at construction.
func (m *Metric) Similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	if a == "" || b == "" {
		return 0.0
	}
	score, err := edlib.StringsSimilarity(a, b, m.alg)
	if err != nil {
		// Unreachable for the algorithms accepted by NewMetric.
		return 0.0
	}
	return float64(score)
}
