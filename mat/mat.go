package mat

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

var (
	ErrColMismatch = errors.New("column size mismatch")
	ErrRowMismatch = errors.New("row size mismatch")
)

// NewDenseFromArray builds a dense matrix from row major data.
func NewDenseFromArray(x [][]float64) (*mat.Dense, error) {
	m := len(x)

	n := -1
	for i, row := range x {
		if n >= 0 && len(row) != n {
			return nil, fmt.Errorf("at row %d, %w", i, ErrColMismatch)
		}
		if n < 0 {
			n = len(row)
		}
	}
	if n < 0 {
		n = 0
	}

	// flatten to row order
	data := make([]float64, 0, m*n)
	for _, row := range x {
		data = append(data, row...)
	}
	return mat.NewDense(m, n, data), nil
}

// NewDenseFromColumns builds a dense matrix where every input slice is one column.
func NewDenseFromColumns(cols ...[]float64) (*mat.Dense, error) {
	n := len(cols)

	m := -1
	for i, col := range cols {
		if m >= 0 && len(col) != m {
			return nil, fmt.Errorf("at column %d, %w", i, ErrRowMismatch)
		}
		if m < 0 {
			m = len(col)
		}
	}
	if m < 0 {
		m = 0
	}

	data := make([]float64, m*n)
	for j, col := range cols {
		for i, v := range col {
			data[i*n+j] = v
		}
	}
	return mat.NewDense(m, n, data), nil
}
