// Package random implements the virtual machine's random number source.
//
// A Generator runs in one of two modes. In native mode every value comes from
// an injected EntropySource and nothing is reproducible. In deterministic mode
// values come from a xoshiro128** core whose 128-bit state is expanded from a
// 32-bit seed, so the same seed yields the same sequence on every platform.
//
// SetSeed(0) selects native mode; any other seed selects deterministic mode.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
)

// NewSeed generates a nonzero deterministic-mode seed using crypto/rand.
//
// Callers that want a fresh sequence they can replay later draw a seed here,
// record it, and pass it to SetSeed.
func NewSeed() (uint32, error) {
	var b [4]byte
	for {
		if _, err := crand.Read(b[:]); err != nil {
			return 0, fmt.Errorf("read random seed: %w", err)
		}
		if seed := binary.LittleEndian.Uint32(b[:]); seed != 0 {
			return seed, nil
		}
	}
}

// readEntropy fills b from the operating system. A failing entropy source is
// fatal; there is no fallback.
func readEntropy(b []byte) {
	if _, err := crand.Read(b); err != nil {
		panic(fmt.Sprintf("read entropy: %v", err))
	}
}
