package host

import (
	"fmt"
	"sort"

	apperrors "github.com/louisbranch/glulxrand/internal/platform/errors"
)

// SortRecords sorts count records of size bytes each, stored back to back at
// the start of buf, using cmp as the ordering. The sort is not stable.
func SortRecords(buf []byte, count, size int, cmp func(a, b []byte) int) error {
	if count < 0 || size < 0 {
		return apperrors.New(apperrors.CodeHostInvalidRecords, fmt.Sprintf("negative record layout %d x %d", count, size))
	}
	if cmp == nil {
		return apperrors.New(apperrors.CodeHostInvalidRecords, "comparison function is required")
	}
	if size > 0 && count > len(buf)/size {
		return apperrors.New(apperrors.CodeHostInvalidRecords, fmt.Sprintf("buffer of %d bytes cannot hold %d records of %d bytes", len(buf), count, size))
	}
	if count < 2 || size == 0 {
		return nil
	}
	sort.Sort(records{buf: buf[:count*size], size: size, cmp: cmp, tmp: make([]byte, size)})
	return nil
}

type records struct {
	buf  []byte
	size int
	cmp  func(a, b []byte) int
	tmp  []byte
}

func (r records) Len() int { return len(r.buf) / r.size }

func (r records) Less(i, j int) bool { return r.cmp(r.at(i), r.at(j)) < 0 }

func (r records) Swap(i, j int) {
	a, b := r.at(i), r.at(j)
	copy(r.tmp, a)
	copy(a, b)
	copy(b, r.tmp)
}

func (r records) at(i int) []byte {
	return r.buf[i*r.size : (i+1)*r.size : (i+1)*r.size]
}
