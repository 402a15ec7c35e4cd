//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package gf2

import (
	"fmt"
	"math/bits"

	"github.com/markkurossi/binfield/pkg/math"
)

// Word defines a fixed-width packed GF(2) vector. Bit 0 is the least
// significant bit. The zero value of W is the zero vector.
type Word[W any] interface {
	comparable

	// Width returns the number of bit positions in the word.
	Width() int

	// Bit returns the value of bit i. Bits at positions >= Width()
	// are zero.
	Bit(i int) uint

	// SetBit returns a copy of the word with bit i set.
	SetBit(i int) W

	// Xor returns the GF(2) sum of the words.
	Xor(o W) W

	// And returns the elementwise GF(2) product of the words.
	And(o W) W

	// Parity returns the XOR of all bits of the word.
	Parity() uint

	// Shl1 returns the word shifted one position towards the most
	// significant bit.
	Shl1() W

	// Mask returns a copy of the word with bits at positions >= n
	// cleared.
	Mask(n int) W
}

// W8 implements an 8-bit word.
type W8 uint8

// W16 implements a 16-bit word.
type W16 uint16

// W32 implements a 32-bit word.
type W32 uint32

// W64 implements a 64-bit word.
type W64 uint64

// W128 implements a 128-bit word. D0 holds the most significant 64
// bits and D1 the least significant 64 bits.
type W128 struct {
	D0 uint64
	D1 uint64
}

func isWord[W Word[W]]() {}

var (
	_ = isWord[W8]
	_ = isWord[W16]
	_ = isWord[W32]
	_ = isWord[W64]
	_ = isWord[W128]
)

// Width implements Word.Width.
func (w W8) Width() int {
	return math.Bits8
}

// Bit implements Word.Bit.
func (w W8) Bit(i int) uint {
	return uint(w>>i) & 1
}

// SetBit implements Word.SetBit.
func (w W8) SetBit(i int) W8 {
	return w | 1<<i
}

// Xor implements Word.Xor.
func (w W8) Xor(o W8) W8 {
	return w ^ o
}

// And implements Word.And.
func (w W8) And(o W8) W8 {
	return w & o
}

// Parity implements Word.Parity.
func (w W8) Parity() uint {
	return uint(bits.OnesCount8(uint8(w)) & 1)
}

// Shl1 implements Word.Shl1.
func (w W8) Shl1() W8 {
	return w << 1
}

// Mask implements Word.Mask.
func (w W8) Mask(n int) W8 {
	return w & W8(math.LowMask(n))
}

// Width implements Word.Width.
func (w W16) Width() int {
	return math.Bits16
}

// Bit implements Word.Bit.
func (w W16) Bit(i int) uint {
	return uint(w>>i) & 1
}

// SetBit implements Word.SetBit.
func (w W16) SetBit(i int) W16 {
	return w | 1<<i
}

// Xor implements Word.Xor.
func (w W16) Xor(o W16) W16 {
	return w ^ o
}

// And implements Word.And.
func (w W16) And(o W16) W16 {
	return w & o
}

// Parity implements Word.Parity.
func (w W16) Parity() uint {
	return uint(bits.OnesCount16(uint16(w)) & 1)
}

// Shl1 implements Word.Shl1.
func (w W16) Shl1() W16 {
	return w << 1
}

// Mask implements Word.Mask.
func (w W16) Mask(n int) W16 {
	return w & W16(math.LowMask(n))
}

// Width implements Word.Width.
func (w W32) Width() int {
	return math.Bits32
}

// Bit implements Word.Bit.
func (w W32) Bit(i int) uint {
	return uint(w>>i) & 1
}

// SetBit implements Word.SetBit.
func (w W32) SetBit(i int) W32 {
	return w | 1<<i
}

// Xor implements Word.Xor.
func (w W32) Xor(o W32) W32 {
	return w ^ o
}

// And implements Word.And.
func (w W32) And(o W32) W32 {
	return w & o
}

// Parity implements Word.Parity.
func (w W32) Parity() uint {
	return uint(bits.OnesCount32(uint32(w)) & 1)
}

// Shl1 implements Word.Shl1.
func (w W32) Shl1() W32 {
	return w << 1
}

// Mask implements Word.Mask.
func (w W32) Mask(n int) W32 {
	return w & W32(math.LowMask(n))
}

// Width implements Word.Width.
func (w W64) Width() int {
	return math.Bits64
}

// Bit implements Word.Bit.
func (w W64) Bit(i int) uint {
	return uint(w>>i) & 1
}

// SetBit implements Word.SetBit.
func (w W64) SetBit(i int) W64 {
	return w | 1<<i
}

// Xor implements Word.Xor.
func (w W64) Xor(o W64) W64 {
	return w ^ o
}

// And implements Word.And.
func (w W64) And(o W64) W64 {
	return w & o
}

// Parity implements Word.Parity.
func (w W64) Parity() uint {
	return uint(bits.OnesCount64(uint64(w)) & 1)
}

// Shl1 implements Word.Shl1.
func (w W64) Shl1() W64 {
	return w << 1
}

// Mask implements Word.Mask.
func (w W64) Mask(n int) W64 {
	return w & W64(math.LowMask(n))
}

func (w W128) String() string {
	return fmt.Sprintf("%016x%016x", w.D0, w.D1)
}

// Width implements Word.Width.
func (w W128) Width() int {
	return math.Bits128
}

// Bit implements Word.Bit.
func (w W128) Bit(i int) uint {
	if i < 64 {
		return uint(w.D1>>i) & 1
	}
	return uint(w.D0>>(i-64)) & 1
}

// SetBit implements Word.SetBit.
func (w W128) SetBit(i int) W128 {
	if i < 64 {
		w.D1 |= 1 << i
	} else {
		w.D0 |= 1 << (i - 64)
	}
	return w
}

// Xor implements Word.Xor.
func (w W128) Xor(o W128) W128 {
	return W128{
		D0: w.D0 ^ o.D0,
		D1: w.D1 ^ o.D1,
	}
}

// And implements Word.And.
func (w W128) And(o W128) W128 {
	return W128{
		D0: w.D0 & o.D0,
		D1: w.D1 & o.D1,
	}
}

// Parity implements Word.Parity.
func (w W128) Parity() uint {
	return uint(bits.OnesCount64(w.D0^w.D1) & 1)
}

// Shl1 implements Word.Shl1.
func (w W128) Shl1() W128 {
	w.D0 <<= 1
	w.D0 |= w.D1 >> 63
	w.D1 <<= 1
	return w
}

// Mask implements Word.Mask.
func (w W128) Mask(n int) W128 {
	if n <= 64 {
		return W128{
			D1: w.D1 & math.LowMask(n),
		}
	}
	w.D0 &= math.LowMask(n - 64)
	return w
}
