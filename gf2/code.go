//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package gf2

import (
	"fmt"
)

// Code implements a binary linear code in the parity-check form. The
// code has n message bits and k = len(checks) parity bits. Parity bit
// j is the GF(2) dot product of the message and check row j, and
// check row 0 produces the most significant parity bit. Codewords are
// systematic: the message occupies the bits above the k parity bits.
type Code[V Word[V], O Word[O]] struct {
	n      int
	checks []V
}

// NewCode creates a new code for n-bit messages of type V and
// codewords of type O. The function returns ErrWidth if the message
// does not fit into V or the n+k bit codeword does not fit into O, and
// ErrRowWidth if any check row has bits set at positions >= n.
func NewCode[V Word[V], O Word[O]](n int, checks ...V) (*Code[V, O], error) {
	k := len(checks)
	if err := checkShape[V, O](n, k); err != nil {
		return nil, err
	}
	var o O
	if n+k > o.Width() {
		return nil, fmt.Errorf("%w: %d+%d-bit codeword in %d-bit word",
			ErrWidth, n, k, o.Width())
	}
	for idx, check := range checks {
		if check.Mask(n) != check {
			return nil, fmt.Errorf("%w: check %d: %v exceeds %d bits",
				ErrRowWidth, idx, check, n)
		}
	}
	return &Code[V, O]{
		n:      n,
		checks: append([]V(nil), checks...),
	}, nil
}

// N returns the message bit count.
func (c *Code[V, O]) N() int {
	return c.n
}

// K returns the parity bit count.
func (c *Code[V, O]) K() int {
	return len(c.checks)
}

// Parity computes the k parity bits of the message v.
func (c *Code[V, O]) Parity(v V) O {
	var zero O
	return c.accumParity(v, zero)
}

// Encode computes the systematic codeword [ v | parity(v) ].
func (c *Code[V, O]) Encode(v V) O {
	return c.accumParity(v, convert[V, O](v, c.n))
}

// Message returns the message bits of the codeword cw.
func (c *Code[V, O]) Message(cw O) V {
	var v V
	k := len(c.checks)
	for i := 0; i < c.n; i++ {
		if cw.Bit(k+i) != 0 {
			v = v.SetBit(i)
		}
	}
	return v
}

// Syndrome computes the syndrome of the codeword cw. The syndrome is
// zero for valid codewords and otherwise it identifies the parity
// bits that do not match the message.
func (c *Code[V, O]) Syndrome(cw O) O {
	return c.Parity(c.Message(cw)).Xor(cw.Mask(len(c.checks)))
}

// Matrix returns the n×k matrix M for which vM equals Parity(v).
func (c *Code[V, O]) Matrix() *Matrix[V, O] {
	k := len(c.checks)
	rows := make([]O, c.n)
	for j, check := range c.checks {
		for i := 0; i < c.n; i++ {
			if check.Bit(i) != 0 {
				rows[i] = rows[i].SetBit(k - 1 - j)
			}
		}
	}
	return &Matrix[V, O]{
		n:    c.n,
		m:    k,
		rows: rows,
	}
}

// accumParity shifts the dot product of v and each check row into the
// least significant bit of the accumulator.
func (c *Code[V, O]) accumParity(v V, accum O) O {
	for _, check := range c.checks {
		accum = accum.Shl1()
		if v.And(check).Parity() != 0 {
			accum = accum.SetBit(0)
		}
	}
	return accum
}

// convert copies the n least significant bits of v into a word of
// type O.
func convert[V Word[V], O Word[O]](v V, n int) O {
	var o O
	for i := 0; i < n; i++ {
		if v.Bit(i) != 0 {
			o = o.SetBit(i)
		}
	}
	return o
}
