package host

import (
	"math"
	"strconv"
	"sync"

	apperrors "github.com/louisbranch/glulxrand/internal/platform/errors"
)

// ErrOutOfMemory is returned when an allocation would exceed the arena limit.
var ErrOutOfMemory = apperrors.New(apperrors.CodeHostOutOfMemory, "arena limit exceeded")

// Arena hands out byte blocks against a fixed budget. Blocks are identified by
// their first byte, so a reslice of a live block still refers to it.
type Arena struct {
	mu    sync.Mutex
	limit uint64
	inUse uint64
	live  map[*byte]uint64
}

// NewArena returns an arena that allows at most limit bytes in use. A limit of
// zero or less allows up to math.MaxUint32 bytes.
func NewArena(limit int) *Arena {
	l := uint64(math.MaxUint32)
	if limit > 0 {
		l = uint64(limit)
	}
	return &Arena{limit: l, live: make(map[*byte]uint64)}
}

// InUse reports the bytes currently allocated.
func (a *Arena) InUse() uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.inUse
}

// Alloc returns a zeroed block of n bytes.
func (a *Arena) Alloc(n uint32) ([]byte, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.reserve(0, n); err != nil {
		return nil, err
	}
	return a.track(n), nil
}

// Resize changes the length of block to n bytes, keeping the common prefix and
// zeroing any growth. On failure the original block is returned untouched
// along with the error; it is never freed or partially resized. A block the
// arena does not own is copied into a fresh allocation.
func (a *Arena) Resize(block []byte, n uint32) ([]byte, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	key, old, owned := a.lookup(block)
	if err := a.reserve(old, n); err != nil {
		return block, err
	}
	if owned {
		delete(a.live, key)
	}
	resized := a.track(n)
	copy(resized, block)
	return resized, nil
}

// Free returns block's bytes to the budget. Blocks the arena does not own,
// including ones already freed, are ignored. The caller must not use block
// afterwards.
func (a *Arena) Free(block []byte) {
	a.mu.Lock()
	defer a.mu.Unlock()
	key, size, owned := a.lookup(block)
	if !owned {
		return
	}
	delete(a.live, key)
	a.inUse -= size
}

// track allocates and records a block of n bytes. Capacity is at least one so
// empty blocks still have an identity. Callers hold a.mu.
func (a *Arena) track(n uint32) []byte {
	block := make([]byte, n, max(n, 1))
	a.live[&block[:1][0]] = uint64(n)
	return block
}

// lookup reports the recorded size of block if the arena owns it.
func (a *Arena) lookup(block []byte) (*byte, uint64, bool) {
	if cap(block) == 0 {
		return nil, 0, false
	}
	key := &block[:1][0]
	size, ok := a.live[key]
	return key, size, ok
}

// reserve swaps old bytes of budget for n. Callers hold a.mu.
func (a *Arena) reserve(old uint64, n uint32) error {
	next := a.inUse - old + uint64(n)
	if next > a.limit {
		return apperrors.WrapWithMetadata(
			apperrors.CodeHostOutOfMemory,
			"allocate "+strconv.FormatUint(uint64(n), 10)+" bytes",
			map[string]string{"Requested": strconv.FormatUint(uint64(n), 10)},
			ErrOutOfMemory,
		)
	}
	a.inUse = next
	return nil
}
