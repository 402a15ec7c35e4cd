//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package gf2

import (
	"errors"
)

var (
	// ErrShape is returned when the number of matrix rows does not
	// match the vector bit count.
	ErrShape = errors.New("gf2: shape mismatch")

	// ErrWidth is returned when a bit count is negative or does not
	// fit into the word type.
	ErrWidth = errors.New("gf2: unsupported bit width")

	// ErrRowWidth is returned when a matrix row has bits set beyond
	// the declared row width.
	ErrRowWidth = errors.New("gf2: row wider than declared width")
)
