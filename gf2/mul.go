//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package gf2

import (
	"fmt"
)

// Mul computes the product vM of the vector v and the matrix whose
// rows are provided by rows. The vector has N = rows.Len() bits and
// its bits at positions >= N are ignored. Mul returns ErrShape if the
// matrix has more rows than v has bit positions.
func Mul[V Word[V], R Word[R]](v V, rows Rows[R]) (R, error) {
	n := rows.Len()
	if n > v.Width() {
		var zero R
		return zero, fmt.Errorf("%w: %d rows for %d-bit vector",
			ErrShape, n, v.Width())
	}
	return accumRows[V, R](v, rows, n), nil
}

// accumRows XORs together the first n rows that are selected by the
// set bits of v.
func accumRows[V Word[V], R Word[R]](v V, rows Rows[R], n int) R {
	var result R
	for i := 0; i < n; i++ {
		if v.Bit(i) != 0 {
			result = result.Xor(rows.Row(i))
		}
	}
	return result
}
