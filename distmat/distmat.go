// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package distmat provides a labelled square distance matrix. Self distances
// on the diagonal are held as NaN so that they never take part in distance
// comparisons.
package distmat

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

var (
	ErrEmpty          = errors.New("distmat: no labels")
	ErrNotSquare      = errors.New("distmat: non-square matrix")
	ErrLabelCount     = errors.New("distmat: label count does not match matrix dimension")
	ErrDuplicateLabel = errors.New("distmat: duplicate label")
)

// Matrix is a square matrix of distances indexed by a shared ordered set of
// unique labels. Matrix satisfies mat.Matrix.
type Matrix struct {
	labels []string
	index  map[string]int
	data   *mat.Dense
}

var _ mat.Matrix = (*Matrix)(nil)

// NewZero returns a Matrix over the given labels with all off-diagonal
// distances set to zero and an undefined diagonal.
func NewZero(labels []string) (*Matrix, error) {
	m, err := newMatrix(labels)
	if err != nil {
		return nil, err
	}
	m.data = mat.NewDense(len(labels), len(labels), nil)
	m.clearDiagonal()
	return m, nil
}

// New returns a Matrix over the given labels holding the values in rows.
// The rows must form a square matrix with one row per label. Diagonal values
// in rows are discarded.
func New(labels []string, rows [][]float64) (*Matrix, error) {
	m, err := newMatrix(labels)
	if err != nil {
		return nil, err
	}
	if len(rows) != len(labels) {
		return nil, fmt.Errorf("%w: %d labels for %d rows", ErrLabelCount, len(labels), len(rows))
	}
	n := len(labels)
	data := make([]float64, 0, n*n)
	for i, r := range rows {
		if len(r) != n {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrNotSquare, i, len(r), n)
		}
		data = append(data, r...)
	}
	m.data = mat.NewDense(n, n, data)
	m.clearDiagonal()
	return m, nil
}

// NewDense returns a Matrix over the given labels backed by a copy of d.
func NewDense(labels []string, d mat.Matrix) (*Matrix, error) {
	m, err := newMatrix(labels)
	if err != nil {
		return nil, err
	}
	r, c := d.Dims()
	if r != c {
		return nil, fmt.Errorf("%w: %d×%d", ErrNotSquare, r, c)
	}
	if r != len(labels) {
		return nil, fmt.Errorf("%w: %d labels for %d rows", ErrLabelCount, len(labels), r)
	}
	m.data = mat.DenseCopyOf(d)
	m.clearDiagonal()
	return m, nil
}

func newMatrix(labels []string) (*Matrix, error) {
	if len(labels) == 0 {
		return nil, ErrEmpty
	}
	index := make(map[string]int, len(labels))
	for i, l := range labels {
		if _, dup := index[l]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateLabel, l)
		}
		index[l] = i
	}
	return &Matrix{
		labels: append([]string(nil), labels...),
		index:  index,
	}, nil
}

func (m *Matrix) clearDiagonal() {
	for i := range m.labels {
		m.data.Set(i, i, math.NaN())
	}
}

// Len returns the number of labels in the matrix.
func (m *Matrix) Len() int { return len(m.labels) }

// Dims returns the dimensions of the matrix.
func (m *Matrix) Dims() (r, c int) { return len(m.labels), len(m.labels) }

// At returns the distance between the ith and jth labels. At(i, i) is NaN.
func (m *Matrix) At(i, j int) float64 { return m.data.At(i, j) }

// T returns the transpose of the matrix.
func (m *Matrix) T() mat.Matrix { return mat.Transpose{Matrix: m} }

// Set sets the distance from the ith to the jth label. Set is a no-op on the
// diagonal.
func (m *Matrix) Set(i, j int, v float64) {
	if i == j {
		return
	}
	m.data.Set(i, j, v)
}

// SetSym sets the distance between the ith and jth labels in both directions.
func (m *Matrix) SetSym(i, j int, v float64) {
	m.Set(i, j, v)
	m.Set(j, i, v)
}

// Label returns the ith label.
func (m *Matrix) Label(i int) string { return m.labels[i] }

// Labels returns a copy of the matrix labels in order.
func (m *Matrix) Labels() []string { return append([]string(nil), m.labels...) }

// Index returns the position of label l and whether it is present.
func (m *Matrix) Index(l string) (int, bool) {
	i, ok := m.index[l]
	return i, ok
}

// Distance returns the distance from label a to label b.
func (m *Matrix) Distance(a, b string) (float64, error) {
	i, ok := m.index[a]
	if !ok {
		return math.NaN(), fmt.Errorf("distmat: no label %q", a)
	}
	j, ok := m.index[b]
	if !ok {
		return math.NaN(), fmt.Errorf("distmat: no label %q", b)
	}
	return m.data.At(i, j), nil
}

// IsSymmetric returns whether every off-diagonal pair of distances is equal.
// Pairs where both values are NaN are considered equal.
func (m *Matrix) IsSymmetric() bool {
	for i := range m.labels {
		for j := i + 1; j < len(m.labels); j++ {
			a, b := m.data.At(i, j), m.data.At(j, i)
			if a != b && !(math.IsNaN(a) && math.IsNaN(b)) {
				return false
			}
		}
	}
	return true
}
