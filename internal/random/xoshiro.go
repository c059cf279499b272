package random

import "math/bits"

// goldenGamma is the SplitMix32 stream increment.
const goldenGamma = 0x9E3779B9

// State is the 128-bit xoshiro128** state. A seeded state is never all zero.
type State [4]uint32

// Expand derives a full State from a 32-bit seed using SplitMix32.
// It runs once per reseed, not per output.
func Expand(seed uint32) State {
	var st State
	for i := range st {
		seed += goldenGamma
		s := seed
		s ^= s >> 15
		s *= 0x85EBCA6B
		s ^= s >> 13
		s *= 0xC2B2AE35
		s ^= s >> 16
		st[i] = s
	}
	return st
}

// Next returns the next xoshiro128** output and advances the state in place.
func (s *State) Next() uint32 {
	result := bits.RotateLeft32(s[1]*5, 7) * 9

	t := s[1] << 9

	s[2] ^= s[0]
	s[3] ^= s[1]
	s[1] ^= s[2]
	s[0] ^= s[3]

	s[2] ^= t

	s[3] = bits.RotateLeft32(s[3], 11)

	return result
}

// IsZero reports whether the state is the generator's fixed point.
func (s State) IsZero() bool {
	return s[0]|s[1]|s[2]|s[3] == 0
}
