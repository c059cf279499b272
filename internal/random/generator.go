package random

import (
	"math/rand/v2"
	"sync"
)

// Mode selects where a Generator draws its values from.
type Mode int

const (
	// ModeNative draws from the injected EntropySource.
	ModeNative Mode = iota
	// ModeDeterministic draws from the seeded xoshiro128** state.
	ModeDeterministic
)

func (m Mode) String() string {
	switch m {
	case ModeNative:
		return "native"
	case ModeDeterministic:
		return "deterministic"
	default:
		return "unknown"
	}
}

// Generator is one VM's random number source. It is safe for concurrent use;
// each method call is atomic with respect to the others.
type Generator struct {
	mu     sync.Mutex
	mode   Mode
	state  State
	native EntropySource
}

var _ rand.Source = (*Generator)(nil)

// New returns a Generator in native mode with native already reseeded.
// A nil native source uses a SystemSource.
func New(native EntropySource) *Generator {
	if native == nil {
		native = &SystemSource{}
	}
	native.Reseed()
	return &Generator{mode: ModeNative, native: native}
}

// NewSeeded returns a Generator already switched to the given seed.
func NewSeeded(seed uint32, native EntropySource) *Generator {
	g := New(native)
	g.SetSeed(seed)
	return g
}

// SetSeed selects the mode. Zero switches to native mode and reseeds the
// native source; any other value switches to deterministic mode with a state
// expanded from seed. It returns the mode it selected.
func (g *Generator) SetSeed(seed uint32) Mode {
	g.mu.Lock()
	defer g.mu.Unlock()

	if seed == 0 {
		g.mode = ModeNative
		g.native.Reseed()
		return g.mode
	}
	g.mode = ModeDeterministic
	g.state = Expand(seed)
	return g.mode
}

// Mode reports the current mode.
func (g *Generator) Mode() Mode {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.mode
}

// Uint32 returns the next value in the range 0 to 2^32-1.
func (g *Generator) Uint32() uint32 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.next()
}

// Fill writes consecutive values into dst under a single lock, so the batch
// is an unbroken run of the sequence. It returns the mode the batch was drawn
// in.
func (g *Generator) Fill(dst []uint32) Mode {
	g.mu.Lock()
	defer g.mu.Unlock()
	for i := range dst {
		dst[i] = g.next()
	}
	return g.mode
}

// Uint64 joins two consecutive values, the first in the high word.
func (g *Generator) Uint64() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	hi := uint64(g.next())
	return hi<<32 | uint64(g.next())
}

// Range implements the VM random opcode. For n > 0 the result is in [0, n);
// for n < 0 it is in (n, 0]; for n == 0 it is any 32-bit value.
func (g *Generator) Range(n int32) int32 {
	value := g.Uint32()
	switch {
	case n > 0:
		return int32(value % uint32(n))
	case n < 0:
		return -int32(value % -uint32(n))
	default:
		return int32(value)
	}
}

func (g *Generator) next() uint32 {
	if g.mode == ModeNative {
		return g.native.Uint32()
	}
	return g.state.Next()
}
