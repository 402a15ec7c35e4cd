//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package gf2

import (
	"fmt"
	"io"

	"github.com/markkurossi/binfield/env"
)

// Random creates a random n×m matrix. The rows are read from the
// configuration's entropy source.
func Random[V Word[V], R Word[R]](config *env.Config, n, m int) (
	*Matrix[V, R], error) {

	if err := checkShape[V, R](n, m); err != nil {
		return nil, err
	}
	rows := make([]R, n)
	if err := randomWords(config.GetRandom(), rows, m); err != nil {
		return nil, err
	}
	return &Matrix[V, R]{
		n:    n,
		m:    m,
		rows: rows,
	}, nil
}

// RandomCode creates a code with k random check rows for n-bit
// messages.
func RandomCode[V Word[V], O Word[O]](config *env.Config, n, k int) (
	*Code[V, O], error) {

	if k < 0 {
		return nil, fmt.Errorf("%w: %d check rows", ErrWidth, k)
	}
	checks := make([]V, k)
	if err := randomWords(config.GetRandom(), checks, n); err != nil {
		return nil, err
	}
	return NewCode[V, O](n, checks...)
}

// randomWords sets the words to random bits at positions 0..bits-1.
func randomWords[W Word[W]](rand io.Reader, words []W, bits int) error {
	if bits <= 0 {
		return nil
	}
	buf := make([]byte, (bits+7)/8)
	for idx := range words {
		if _, err := io.ReadFull(rand, buf); err != nil {
			return fmt.Errorf("gf2: random row %d: %w", idx, err)
		}
		var w W
		for i := 0; i < bits; i++ {
			if buf[i/8]&(1<<(i%8)) != 0 {
				w = w.SetBit(i)
			}
		}
		words[idx] = w
	}
	return nil
}
