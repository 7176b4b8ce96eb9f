// Package matrix computes the N×N similarity matrix over a word list. The
// computation is embarrassingly parallel: rows are independent, every cell
// has exactly one writer, and the only synchronization point is the final
// errgroup wait.
package matrix

// Matrix is a dense, symmetric N×N table of similarity scores in [0, 1]
// with an exact 1.0 diagonal. Cells live in a single flat slice.
type Matrix struct {
	n     int
	cells []float64
}

func newMatrix(n int) *Matrix {
	return &Matrix{n: n, cells: make([]float64, n*n)}
}

// Dim returns N.
func (m *Matrix) Dim() int { return m.n }

// At returns the score for the (i, j) pair.
func (m *Matrix) At(i, j int) float64 { return m.cells[i*m.n+j] }

func (m *Matrix) set(i, j int, v float64) { m.cells[i*m.n+j] = v }
