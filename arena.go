package strstack

import (
	"slices"
	"unsafe"
)

// byteArena is a single contiguous bump buffer holding the concatenated
// payload of every pushed string, with no padding or separators. Logical
// length is len(buf), capacity is cap(buf). Growth is geometric and
// reallocates; reset keeps the buffer for reuse.
type byteArena struct {
	buf []byte
}

func newByteArena(capacity int) byteArena {
	if capacity < 0 {
		capacity = 0
	}
	return byteArena{buf: make([]byte, 0, capacity)}
}

// reserve ensures at least n spare bytes of capacity without changing the
// logical length.
func (a *byteArena) reserve(n int) {
	if n <= 0 {
		return
	}
	a.buf = slices.Grow(a.buf, n)
}

// appendBytes copies b to the end of the logical region and returns the
// offset the copy begins at.
func (a *byteArena) appendBytes(b []byte) int {
	start := len(a.buf)
	a.buf = append(a.buf, b...)
	return start
}

// appendString is appendBytes for a string source, avoiding a conversion.
func (a *byteArena) appendString(s string) int {
	start := len(a.buf)
	a.buf = append(a.buf, s...)
	return start
}

// view returns a zero-copy string over [start, start+n). The caller must
// guarantee start+n <= len(a.buf); the offset table enforces this, so no
// bounds are rechecked here.
func (a *byteArena) view(start, n int) string {
	if n == 0 {
		return ""
	}
	return unsafe.String(&a.buf[start], n)
}

// reset drops the logical length to zero. Capacity and the underlying
// buffer are retained; old bytes stay in place until overwritten.
func (a *byteArena) reset() {
	a.buf = a.buf[:0]
}

// truncate rolls the logical length back to n bytes.
func (a *byteArena) truncate(n int) {
	a.buf = a.buf[:n]
}

func (a *byteArena) len() int { return len(a.buf) }

func (a *byteArena) cap() int { return cap(a.buf) }
