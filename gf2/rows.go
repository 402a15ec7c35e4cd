//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package gf2

// Rows provides indexed access to matrix rows.
type Rows[R any] interface {
	// Len returns the number of rows.
	Len() int

	// Row returns row i, 0 <= i < Len().
	Row(i int) R
}

// Slice implements Rows for a slice of words.
type Slice[R any] []R

// Len implements Rows.Len.
func (s Slice[R]) Len() int {
	return len(s)
}

// Row implements Rows.Row.
func (s Slice[R]) Row(i int) R {
	return s[i]
}

// RowFunc implements Rows for N rows computed by F.
type RowFunc[R any] struct {
	N int
	F func(i int) R
}

// Len implements Rows.Len.
func (f RowFunc[R]) Len() int {
	return f.N
}

// Row implements Rows.Row.
func (f RowFunc[R]) Row(i int) R {
	return f.F(i)
}
