//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package prg implements a deterministic pseudorandom byte stream for
// reproducible random matrices and codes.
package prg

import (
	"golang.org/x/crypto/chacha20"
)

// KeySize defines the seed size in bytes.
const KeySize = chacha20.KeySize

// PRG implements io.Reader returning the ChaCha20 keystream of the
// seed with a zero nonce. PRG is not safe for concurrent use.
type PRG struct {
	c *chacha20.Cipher
}

// New creates a new PRG from the seed. Seeds shorter than KeySize are
// repeated to fill the key.
func New(seed []byte) (*PRG, error) {
	key := make([]byte, KeySize)
	if len(seed) > 0 {
		for i := range key {
			key[i] = seed[i%len(seed)]
		}
	}
	var nonce [chacha20.NonceSize]byte
	c, err := chacha20.NewUnauthenticatedCipher(key, nonce[:])
	if err != nil {
		return nil, err
	}
	return &PRG{
		c: c,
	}, nil
}

// Read fills p with the next len(p) keystream bytes. It never fails.
func (prg *PRG) Read(p []byte) (int, error) {
	clear(p)
	prg.c.XORKeyStream(p, p)
	return len(p), nil
}
