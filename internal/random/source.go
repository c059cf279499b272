package random

import (
	"encoding/binary"
	"math/rand/v2"
	"strings"
	"time"

	apperrors "github.com/louisbranch/glulxrand/internal/platform/errors"
)

// EntropySource is the platform randomness used in native mode.
//
// Reseed is only called when native mode is (re)selected; it takes no seed
// because native output is not meant to be reproducible.
type EntropySource interface {
	Reseed()
	Uint32() uint32
}

// Names accepted by SourceByName.
const (
	SourceSystem = "system"
	SourceOS     = "os"
	SourceClock  = "clock"
)

// SourceByName resolves a configured entropy source. An empty name selects
// the system source.
func SourceByName(name string) (EntropySource, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", SourceSystem:
		return &SystemSource{}, nil
	case SourceOS:
		return OSSource{}, nil
	case SourceClock:
		return &ClockSource{}, nil
	default:
		return nil, apperrors.WithMetadata(
			apperrors.CodeRandomUnknownSource,
			"unknown entropy source "+name,
			map[string]string{"Source": name},
		)
	}
}

// SystemSource is a ChaCha8 stream keyed from the operating system on every
// Reseed. It is the default native source.
type SystemSource struct {
	rng *rand.ChaCha8
}

// Reseed rekeys the stream from crypto/rand.
func (s *SystemSource) Reseed() {
	var key [32]byte
	readEntropy(key[:])
	s.rng = rand.NewChaCha8(key)
}

// Uint32 returns the high half of the next ChaCha8 word.
func (s *SystemSource) Uint32() uint32 {
	if s.rng == nil {
		s.Reseed()
	}
	return uint32(s.rng.Uint64() >> 32)
}

// OSSource reads every value directly from crypto/rand. It has no state to
// reseed.
type OSSource struct{}

// Reseed is a no-op.
func (OSSource) Reseed() {}

// Uint32 reads four bytes of operating system entropy.
func (OSSource) Uint32() uint32 {
	var b [4]byte
	readEntropy(b[:])
	return binary.LittleEndian.Uint32(b[:])
}

// ClockSource runs the xoshiro128** core seeded from the wall clock.
//
// It exists for hosts without a usable entropy device. It is never selected
// implicitly: output is predictable to anyone who knows the reseed time.
type ClockSource struct {
	// Now overrides the clock; nil uses time.Now.
	Now func() time.Time

	state  State
	seeded bool
}

// Reseed expands the current time into a fresh state.
func (c *ClockSource) Reseed() {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	nanos := uint64(now().UnixNano())
	c.state = Expand(uint32(nanos) ^ uint32(nanos>>32))
	c.seeded = true
}

// Uint32 returns the next clock-seeded output.
func (c *ClockSource) Uint32() uint32 {
	if !c.seeded {
		c.Reseed()
	}
	return c.state.Next()
}
