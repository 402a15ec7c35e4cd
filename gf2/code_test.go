//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package gf2

import (
	"errors"
	"math/rand"
	"testing"
)

var example6x4 = []W32{
	0b1111,
	0b0010,
	0b1000,
	0b0101,
	0b0010,
	0b1010,
}

var hamming = []W16{
	0b11111110000,
	0b11110001110,
	0b11001101101,
	0b10101011011,
}

func TestCodeParity(t *testing.T) {
	code, err := NewCode[W32, W32](4, example6x4...)
	if err != nil {
		t.Fatal(err)
	}
	if p := code.Parity(0b1010); p != 0b011010 {
		t.Errorf("Parity(1010)=%06b, expected 011010", p)
	}
	if cw := code.Encode(0b1010); cw != 0b1010011010 {
		t.Errorf("Encode(1010)=%010b, expected 1010011010", cw)
	}

	code7, err := NewCode[W16, W16](7, 0b1010101, 0b0110011, 0b0001111)
	if err != nil {
		t.Fatal(err)
	}
	if p := code7.Parity(0b0110011); p != 0b000 {
		t.Errorf("Parity(0110011)=%03b, expected 000", p)
	}
	if p := code7.Parity(0b0110111); p != 0b101 {
		t.Errorf("Parity(0110111)=%03b, expected 101", p)
	}
}

var encodeTests = []struct {
	msg W16
	cw  W16
}{
	{0, 0},
	{0b11111111111, 0b11111111111_1111},
	{0b11111111101, 0b11111111101_1010},
}

func TestCodeEncode(t *testing.T) {
	code, err := NewCode[W16, W16](11, hamming...)
	if err != nil {
		t.Fatal(err)
	}
	if code.N() != 11 || code.K() != 4 {
		t.Fatalf("code shape n=%d, k=%d", code.N(), code.K())
	}
	for idx, test := range encodeTests {
		cw := code.Encode(test.msg)
		if cw != test.cw {
			t.Errorf("test-%d: Encode(%b)=%b, expected %b",
				idx, test.msg, cw, test.cw)
		}
		if m := code.Message(cw); m != test.msg {
			t.Errorf("test-%d: Message(%b)=%b, expected %b",
				idx, cw, m, test.msg)
		}
		if s := code.Syndrome(cw); s != 0 {
			t.Errorf("test-%d: Syndrome(%b)=%b", idx, cw, s)
		}
	}
}

func TestCodeSyndrome(t *testing.T) {
	code, err := NewCode[W16, W16](11, hamming...)
	if err != nil {
		t.Fatal(err)
	}
	columns := code.Matrix()
	cw := code.Encode(0b10110011100)

	// Errors in parity bits show up as themselves.
	for j := 0; j < code.K(); j++ {
		var e W16
		e = e.SetBit(j)
		if s := code.Syndrome(cw.Xor(e)); s != e {
			t.Errorf("parity error %d: syndrome %04b", j, s)
		}
	}
	// Errors in message bits produce the check matrix column.
	for i := 0; i < code.N(); i++ {
		var e W16
		e = e.SetBit(code.K() + i)
		if s := code.Syndrome(cw.Xor(e)); s != columns.Row(i) {
			t.Errorf("message error %d: syndrome %04b, expected %04b",
				i, s, columns.Row(i))
		}
	}
}

func TestCodeMatrix(t *testing.T) {
	config := testConfig(t, "code")
	code, err := RandomCode[W64, W128](config, 60, 50)
	if err != nil {
		t.Fatal(err)
	}
	m := code.Matrix()
	if m.N() != 60 || m.M() != 50 {
		t.Fatalf("matrix shape %dx%d", m.N(), m.M())
	}
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 200; i++ {
		v := randomWord[W64](rng, 60)
		if p, r := code.Parity(v), m.Mul(v); p != r {
			t.Fatalf("Parity(%x)=%v, Matrix().Mul()=%v", v, p, r)
		}
		cw := code.Encode(v)
		if s := code.Syndrome(cw); s != (W128{}) {
			t.Fatalf("Syndrome(Encode(%x))=%v", v, s)
		}
	}
}

func TestNewCodeErrors(t *testing.T) {
	if _, err := NewCode[W8, W16](9); !errors.Is(err, ErrWidth) {
		t.Errorf("9-bit message in W8: err=%v", err)
	}
	if _, err := NewCode[W16, W16](11, append(hamming, 0, 0)...); !errors.Is(err, ErrWidth) {
		t.Errorf("17-bit codeword in W16: err=%v", err)
	}
	if _, err := NewCode[W16, W16](10, hamming...); !errors.Is(err, ErrRowWidth) {
		t.Errorf("11-bit check for 10-bit message: err=%v", err)
	}
	if _, err := RandomCode[W16, W16](nil, 4, -1); !errors.Is(err, ErrWidth) {
		t.Errorf("negative check count: err=%v", err)
	}
}

func BenchmarkCodeEncode(b *testing.B) {
	code, err := NewCode[W16, W16](11, hamming...)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		code.Encode(0b10110011100)
	}
}
