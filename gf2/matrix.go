//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package gf2

import (
	"fmt"

	"github.com/markkurossi/text/superscript"
)

// Matrix implements an N×M binary matrix. Row i is an M-bit word of
// type R and it is selected by bit i of an N-bit vector of type V.
// The matrix is immutable after creation.
type Matrix[V Word[V], R Word[R]] struct {
	n    int
	m    int
	rows []R
}

// NewMatrix creates a new n×m matrix from the rows. The function
// returns ErrWidth if n does not fit into V or m does not fit into R,
// ErrShape if the number of rows is not n, and ErrRowWidth if any row
// has bits set at positions >= m.
func NewMatrix[V Word[V], R Word[R]](n, m int, rows ...R) (
	*Matrix[V, R], error) {

	if err := checkShape[V, R](n, m); err != nil {
		return nil, err
	}
	if len(rows) != n {
		return nil, fmt.Errorf("%w: %d rows for %d-bit vector",
			ErrShape, len(rows), n)
	}
	for idx, row := range rows {
		if row.Mask(m) != row {
			return nil, fmt.Errorf("%w: row %d: %v exceeds %d bits",
				ErrRowWidth, idx, row, m)
		}
	}
	return &Matrix[V, R]{
		n:    n,
		m:    m,
		rows: append([]R(nil), rows...),
	}, nil
}

// Identity creates an n×n identity matrix.
func Identity[V Word[V]](n int) (*Matrix[V, V], error) {
	if err := checkShape[V, V](n, n); err != nil {
		return nil, err
	}
	rows := make([]V, n)
	for i := range rows {
		rows[i] = rows[i].SetBit(i)
	}
	return &Matrix[V, V]{
		n:    n,
		m:    n,
		rows: rows,
	}, nil
}

func checkShape[V Word[V], R Word[R]](n, m int) error {
	var v V
	var r R

	if n < 0 || n > v.Width() {
		return fmt.Errorf("%w: %d-bit vector in %d-bit word",
			ErrWidth, n, v.Width())
	}
	if m < 0 || m > r.Width() {
		return fmt.Errorf("%w: %d-bit row in %d-bit word",
			ErrWidth, m, r.Width())
	}
	return nil
}

// N returns the number of rows, which is the input vector bit count.
func (m *Matrix[V, R]) N() int {
	return m.n
}

// M returns the row bit count, which is the result vector bit count.
func (m *Matrix[V, R]) M() int {
	return m.m
}

// Len implements Rows.Len.
func (m *Matrix[V, R]) Len() int {
	return m.n
}

// Row implements Rows.Row.
func (m *Matrix[V, R]) Row(i int) R {
	return m.rows[i]
}

// Rows returns a copy of the matrix rows.
func (m *Matrix[V, R]) Rows() []R {
	return append([]R(nil), m.rows...)
}

// Mul computes the product vM. The bits of v at positions >= N are
// ignored.
func (m *Matrix[V, R]) Mul(v V) R {
	return accumRows[V, R](v, Slice[R](m.rows), m.n)
}

// MulAll appends the products vM for all vectors vs to dst and returns
// the extended slice.
func (m *Matrix[V, R]) MulAll(dst []R, vs []V) []R {
	for _, v := range vs {
		dst = append(dst, m.Mul(v))
	}
	return dst
}

// Transpose returns the M×N transpose of the matrix.
func (m *Matrix[V, R]) Transpose() *Matrix[R, V] {
	rows := make([]V, m.m)
	for i, row := range m.rows {
		for j := 0; j < m.m; j++ {
			if row.Bit(j) != 0 {
				rows[j] = rows[j].SetBit(i)
			}
		}
	}
	return &Matrix[R, V]{
		n:    m.m,
		m:    m.n,
		rows: rows,
	}
}

// Equal tests if the matrices have the same shape and rows. A nil
// matrix is not equal to any matrix.
func (m *Matrix[V, R]) Equal(o *Matrix[V, R]) bool {
	if m == nil || o == nil {
		return false
	}
	if m.n != o.n || m.m != o.m {
		return false
	}
	for i, row := range m.rows {
		if row != o.rows[i] {
			return false
		}
	}
	return true
}

func (m *Matrix[V, R]) String() string {
	return fmt.Sprintf("GF(2)%sˣ%s",
		superscript.Itoa(m.n), superscript.Itoa(m.m))
}
