// -*- go -*-
//
// Copyright (c) 2020-2026 Markku Rossi
//
// All rights reserved.
//

// Package math defines integer width constants and bit masks.
package math

const (
	MaxUint8  = 0xff
	MaxUint16 = 0xffff
	MaxUint32 = 0xffffffff
	MaxUint64 = 0xffffffffffffffff
)

// Native unsigned integer widths in bits.
const (
	Bits8   = 8
	Bits16  = 16
	Bits32  = 32
	Bits64  = 64
	Bits128 = 128
)

// LowMask returns a mask with the n least significant bits set. The
// mask is zero for n <= 0 and all ones for n >= 64.
func LowMask(n int) uint64 {
	if n <= 0 {
		return 0
	}
	if n >= Bits64 {
		return MaxUint64
	}
	return (uint64(1) << n) - 1
}
