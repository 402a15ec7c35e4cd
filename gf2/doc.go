//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package gf2 implements vector-matrix multiplication over the binary
// field GF(2), where addition is XOR and multiplication is AND.
//
// Vectors and matrix rows are packed into fixed-width words. Bit i of
// the input vector, (v >> i) & 1, selects row i of the matrix and the
// product is the XOR of all selected rows:
//
//	result = 0
//	for i in 0..N:
//	    if bit_i(v) == 1:
//	        result ^= row[i]
//
// This takes N word operations instead of the N*M bit operations of
// the column-wise dot product definition.
//
// The word types W8, W16, W32, W64, and W128 implement the Word
// constraint and the same generic routines serve all of them. Rows
// are accessed through the Rows interface so that they can come from
// a slice, a Matrix, or a function:
//
//	m, err := gf2.NewMatrix[gf2.W8, gf2.W8](4, 3,
//	    0b101, 0b011, 0b110, 0b001)
//	if err != nil { ... }
//	r := m.Mul(0b0110) // 0b101
//
// The Code type implements the parity-check form where the matrix is
// given by its check rows and each output bit is the GF(2) dot
// product of the vector and one check row. It computes both the
// parity bits and systematic codewords.
//
// All functions are pure: they never modify their arguments and they
// are safe for concurrent use.
package gf2
