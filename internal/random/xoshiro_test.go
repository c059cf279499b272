package random

import "testing"

func TestExpandSeedOne(t *testing.T) {
	want := State{0x06b5233e, 0x92fd57be, 0xb86df9a0, 0x36a5e8e4}
	if got := Expand(1); got != want {
		t.Fatalf("Expand(1) = %#08x, want %#08x", got, want)
	}
}

func TestNextFromSeedOne(t *testing.T) {
	st := Expand(1)

	if got := st.Next(); got != 0x443636e7 {
		t.Fatalf("first output = %#08x, want 0x443636e7", got)
	}
	wantState := State{0xa2ed9c64, 0x2c258d20, 0x4477a69e, 0xc5fad522}
	if st != wantState {
		t.Fatalf("state after first step = %#08x, want %#08x", st, wantState)
	}

	for i, want := range []uint32{0x4ce753de, 0xd9a8ad4a, 0x2550aade, 0xd5910424} {
		if got := st.Next(); got != want {
			t.Fatalf("output %d = %#08x, want %#08x", i+2, got, want)
		}
	}
}

func TestNextReferenceVectors(t *testing.T) {
	tests := []struct {
		name  string
		seed  uint32
		state State
		first uint32
	}{
		{"seed 12345", 12345, State{0xaff5bef1, 0xc92d48b2, 0x1178884a, 0x78d981b1}, 0x7ae3a926},
		{"max seed", 0xFFFFFFFF, State{0x035dc067, 0x25232587, 0x5091a980, 0x0cf8a385}, 0x96cc60bc},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			st := Expand(tc.seed)
			if st != tc.state {
				t.Fatalf("Expand(%d) = %#08x, want %#08x", tc.seed, st, tc.state)
			}
			if got := st.Next(); got != tc.first {
				t.Fatalf("first output = %#08x, want %#08x", got, tc.first)
			}
		})
	}
}

func TestNextTenThousandthOutput(t *testing.T) {
	st := Expand(12345)
	var got uint32
	for i := 0; i < 10000; i++ {
		got = st.Next()
	}
	if got != 0x761afb8b {
		t.Fatalf("output 10000 = %#08x, want 0x761afb8b", got)
	}
}

func TestNextNeverReachesZeroState(t *testing.T) {
	seeds := []uint32{1, 2, 3, 0x9E3779B9, 12345, 0x7FFFFFFF, 0x80000000, 0xFFFFFFFE, 0xFFFFFFFF}
	for _, seed := range seeds {
		st := Expand(seed)
		if st.IsZero() {
			t.Fatalf("Expand(%#x) produced the zero state", seed)
		}
		for step := 0; step < 1<<16; step++ {
			st.Next()
			if st.IsZero() {
				t.Fatalf("seed %#x collapsed to zero state after %d steps", seed, step+1)
			}
		}
	}
}

func TestZeroStateIsFixedPoint(t *testing.T) {
	var st State
	if got := st.Next(); got != 0 {
		t.Fatalf("zero state output = %d, want 0", got)
	}
	if !st.IsZero() {
		t.Fatal("zero state should stay zero")
	}
}

func TestDistinctSeedsDivergeOnFirstOutput(t *testing.T) {
	seen := make(map[uint32]uint32, 4096)
	for seed := uint32(1); seed <= 4096; seed++ {
		st := Expand(seed)
		first := st.Next()
		if prev, ok := seen[first]; ok {
			t.Fatalf("seeds %d and %d share first output %#08x", prev, seed, first)
		}
		seen[first] = seed
	}
}
