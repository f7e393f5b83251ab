package matrix

import (
	"errors"
	"fmt"
)

// ErrDimensionMismatch is returned by New when the value slice does not
// match the requested shape.
var ErrDimensionMismatch = errors.New("dimension mismatch")

// IndexError reports an out-of-range row or column access. Index misuse is
// a programmer error, so the accessors panic with it rather than return it.
type IndexError struct {
	Kind  string // "row" or "column"
	Index int
	Limit int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("matrix: %s index %d out of range [0,%d)", e.Kind, e.Index, e.Limit)
}

// Matrix is a rectangular grid of float64 values, stored row-major.
type Matrix struct {
	rows int
	cols int
	data []float64
}

// New builds a rows×cols matrix from values given in row-major order.
// The values are copied.
func New(rows, cols int, values []float64) (*Matrix, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: shape %dx%d, need at least 1x1", ErrDimensionMismatch, rows, cols)
	}
	if len(values) != rows*cols {
		return nil, fmt.Errorf("%w: %dx%d needs %d values, got %d",
			ErrDimensionMismatch, rows, cols, rows*cols, len(values))
	}
	data := make([]float64, len(values))
	copy(data, values)
	return &Matrix{rows: rows, cols: cols, data: data}, nil
}

func (m *Matrix) Rows() int { return m.rows }
func (m *Matrix) Cols() int { return m.cols }

func (m *Matrix) checkRow(r int) {
	if r < 0 || r >= m.rows {
		panic(&IndexError{Kind: "row", Index: r, Limit: m.rows})
	}
}

func (m *Matrix) checkCol(c int) {
	if c < 0 || c >= m.cols {
		panic(&IndexError{Kind: "column", Index: c, Limit: m.cols})
	}
}

// At returns the value at row r, column c.
func (m *Matrix) At(r, c int) float64 {
	m.checkRow(r)
	m.checkCol(c)
	return m.data[r*m.cols+c]
}

// Set stores v at row r, column c.
func (m *Matrix) Set(r, c int, v float64) {
	m.checkRow(r)
	m.checkCol(c)
	m.data[r*m.cols+c] = v
}

// SwapRows exchanges rows r1 and r2. Swapping a row with itself is a no-op.
func (m *Matrix) SwapRows(r1, r2 int) {
	m.checkRow(r1)
	m.checkRow(r2)
	if r1 == r2 {
		return
	}
	a := m.data[r1*m.cols : (r1+1)*m.cols]
	b := m.data[r2*m.cols : (r2+1)*m.cols]
	for c := range a {
		a[c], b[c] = b[c], a[c]
	}
}

// ScaleRow multiplies every entry of row r by factor. The factor is not
// validated; scaling by zero is a correctness error in the caller, not here.
func (m *Matrix) ScaleRow(r int, factor float64) {
	m.checkRow(r)
	row := m.data[r*m.cols : (r+1)*m.cols]
	for c := range row {
		row[c] *= factor
	}
}

// AddScaledRow adds factor times the source row to the target row.
func (m *Matrix) AddScaledRow(target, source int, factor float64) {
	m.checkRow(target)
	m.checkRow(source)
	dst := m.data[target*m.cols : (target+1)*m.cols]
	src := m.data[source*m.cols : (source+1)*m.cols]
	for c := range dst {
		dst[c] += factor * src[c]
	}
}

// Clone returns a deep copy.
func (m *Matrix) Clone() *Matrix {
	data := make([]float64, len(m.data))
	copy(data, m.data)
	return &Matrix{rows: m.rows, cols: m.cols, data: data}
}

// Row returns a copy of row r.
func (m *Matrix) Row(r int) []float64 {
	m.checkRow(r)
	row := make([]float64, m.cols)
	copy(row, m.data[r*m.cols:(r+1)*m.cols])
	return row
}

// Equal reports whether the two matrices have the same shape and bitwise
// identical entries.
func (m *Matrix) Equal(other *Matrix) bool {
	if m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for i := range m.data {
		if m.data[i] != other.data[i] {
			return false
		}
	}
	return true
}
