package random

import (
	"errors"
	"testing"
	"time"

	apperrors "github.com/louisbranch/glulxrand/internal/platform/errors"
)

func TestSourceByName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"", "*random.SystemSource"},
		{"system", "*random.SystemSource"},
		{" OS ", "random.OSSource"},
		{"Clock", "*random.ClockSource"},
	}
	for _, tc := range tests {
		source, err := SourceByName(tc.name)
		if err != nil {
			t.Fatalf("SourceByName(%q): %v", tc.name, err)
		}
		if got := typeName(source); got != tc.want {
			t.Fatalf("SourceByName(%q) = %s, want %s", tc.name, got, tc.want)
		}
	}
}

func TestSourceByNameRejectsUnknown(t *testing.T) {
	_, err := SourceByName("dev-random")
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, apperrors.New(apperrors.CodeRandomUnknownSource, "")) {
		t.Fatalf("expected unknown source code, got %v", err)
	}
}

func TestSystemSourceReseedChangesStream(t *testing.T) {
	var s SystemSource
	first := []uint32{s.Uint32(), s.Uint32(), s.Uint32(), s.Uint32()}
	s.Reseed()
	second := []uint32{s.Uint32(), s.Uint32(), s.Uint32(), s.Uint32()}

	same := true
	for i := range first {
		if first[i] != second[i] {
			same = false
		}
	}
	if same {
		t.Fatal("reseeded system source repeated its stream")
	}
}

func TestOSSourceProducesVaryingValues(t *testing.T) {
	var s OSSource
	s.Reseed()
	seen := map[uint32]struct{}{}
	for i := 0; i < 8; i++ {
		seen[s.Uint32()] = struct{}{}
	}
	if len(seen) < 2 {
		t.Fatal("expected varying OS entropy")
	}
}

func TestClockSourceFollowsClock(t *testing.T) {
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return at }

	a := &ClockSource{Now: clock}
	b := &ClockSource{Now: clock}
	a.Reseed()
	for i := 0; i < 16; i++ {
		if x, y := a.Uint32(), b.Uint32(); x != y {
			t.Fatalf("output %d differs for identical clocks", i)
		}
	}

	nanos := uint64(at.UnixNano())
	ref := Expand(uint32(nanos) ^ uint32(nanos>>32))
	c := &ClockSource{Now: clock}
	if got, want := c.Uint32(), ref.Next(); got != want {
		t.Fatalf("clock output = %#08x, want %#08x", got, want)
	}
}

func TestGeneratorWithClockSourceIsNative(t *testing.T) {
	at := time.Unix(1700000000, 0)
	g := New(&ClockSource{Now: func() time.Time { return at }})
	if g.Mode() != ModeNative {
		t.Fatalf("mode = %s, want native", g.Mode())
	}
	g.Uint32()
}

func TestNewSeedIsNonzero(t *testing.T) {
	for i := 0; i < 32; i++ {
		seed, err := NewSeed()
		if err != nil {
			t.Fatalf("new seed: %v", err)
		}
		if seed == 0 {
			t.Fatal("expected nonzero seed")
		}
	}
}

func typeName(v any) string {
	switch v.(type) {
	case *SystemSource:
		return "*random.SystemSource"
	case OSSource:
		return "random.OSSource"
	case *ClockSource:
		return "*random.ClockSource"
	default:
		return "unknown"
	}
}
