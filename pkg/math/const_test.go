//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package math

import (
	"testing"
)

var lowMaskTests = []struct {
	n    int
	mask uint64
}{
	{-1, 0},
	{0, 0},
	{1, 0x1},
	{4, 0xf},
	{8, MaxUint8},
	{16, MaxUint16},
	{32, MaxUint32},
	{63, 0x7fffffffffffffff},
	{64, MaxUint64},
	{128, MaxUint64},
}

func TestLowMask(t *testing.T) {
	for idx, test := range lowMaskTests {
		if m := LowMask(test.n); m != test.mask {
			t.Errorf("test-%d: LowMask(%d)=%x, expected %x",
				idx, test.n, m, test.mask)
		}
	}
}
