//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package gf2_test

import (
	"fmt"
	"log"

	"github.com/markkurossi/binfield/env"
	"github.com/markkurossi/binfield/gf2"
	"github.com/markkurossi/binfield/prg"
)

func ExampleMul() {
	rows := gf2.Slice[gf2.W8]{0b101, 0b011, 0b110, 0b001}

	r, err := gf2.Mul(gf2.W8(0b0110), rows)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%03b\n", r)
	// Output: 101
}

func ExampleMatrix_Mul() {
	m, err := gf2.NewMatrix[gf2.W8, gf2.W8](4, 3, 0b101, 0b011, 0b110, 0b001)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%v: %03b\n", m, m.Mul(0b0110))
	// Output: GF(2)⁴ˣ³: 101
}

func ExampleCode_Encode() {
	code, err := gf2.NewCode[gf2.W32, gf2.W32](4,
		0b1111,
		0b0010,
		0b1000,
		0b0101,
		0b0010,
		0b1010)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%06b\n", code.Parity(0b1010))
	fmt.Printf("%010b\n", code.Encode(0b1010))
	// Output:
	// 011010
	// 1010011010
}

func ExampleRandom() {
	random := func() *gf2.Matrix[gf2.W64, gf2.W32] {
		rand, err := prg.New([]byte("example seed"))
		if err != nil {
			log.Fatal(err)
		}
		m, err := gf2.Random[gf2.W64, gf2.W32](&env.Config{Rand: rand}, 64, 32)
		if err != nil {
			log.Fatal(err)
		}
		return m
	}
	a := random()
	b := random()

	fmt.Printf("%v: equal=%v\n", a, a.Equal(b))
	// Output: GF(2)⁶⁴ˣ³²: equal=true
}
