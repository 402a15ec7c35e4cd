//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

// Package env implements global environment for the binary field
// routines.
package env

import (
	"crypto/rand"
	"io"
)

// Config defines the global configuration for the binary field
// routines. The multiplication kernels are deterministic and do not
// consult it; it is used by operations that draw random matrices and
// codes. Config must not be modified after being passed to any
// function. It is safe for concurrent use as the functions do not
// modify it.
type Config struct {
	Rand io.Reader
}

// GetRandom returns the source of entropy for random matrix
// generation. If the configuration does not specify a source, it
// returns crypto/rand.Reader.
func (config *Config) GetRandom() io.Reader {
	if config != nil && config.Rand != nil {
		return config.Rand
	}
	return rand.Reader
}
