package strstack

import (
	"errors"
	"fmt"
	"strings"
)

// ErrOutOfRange is returned by Get when a handle does not name a currently
// live string, either because it was never issued or because a Clear
// invalidated it.
var ErrOutOfRange = errors.New("strstack: handle out of range")

// Stack is a bump-style arena for small immutable strings. Pushed strings
// are stored back-to-back in one contiguous buffer and addressed by the
// integer handle Push returns; all of them are released together by Clear.
// Not goroutine-safe by default. Use SafeStack for concurrent access.
type Stack struct {
	data byteArena
	ends offsetTable
}

// New creates an empty Stack with no pre-allocated capacity.
func New() *Stack {
	return NewWithCapacity(0, 0)
}

// NewWithCapacity creates an empty Stack able to hold bytes payload bytes
// and strings entries before its first reallocation.
func NewWithCapacity(bytes, strings int) *Stack {
	return &Stack{
		data: newByteArena(bytes),
		ends: newOffsetTable(strings),
	}
}

// Push copies text onto the stack and returns its handle. Handles are
// dense: the nth push since the last Clear returns n-1. Amortized
// O(len(text)).
func (s *Stack) Push(text string) int {
	start := s.data.appendString(text)
	return s.ends.push(start, len(text))
}

// Get returns the string stored under handle i, or ErrOutOfRange when i
// does not name a live string. The result is a view into the stack's
// buffer; see the package documentation for its lifetime.
func (s *Stack) Get(i int) (string, error) {
	sp, ok := s.ends.at(i)
	if !ok {
		return "", ErrOutOfRange
	}
	return s.data.view(sp.start, sp.n), nil
}

// At is the indexing form of Get for callers that know the handle is live.
// It panics on an invalid handle.
func (s *Stack) At(i int) string {
	sp, ok := s.ends.at(i)
	if !ok {
		panic(fmt.Sprintf("strstack: handle %d out of range [0, %d)", i, s.ends.len()))
	}
	return s.data.view(sp.start, sp.n)
}

// Len returns the number of strings currently held.
func (s *Stack) Len() int {
	return s.ends.len()
}

// ByteLen returns the total payload bytes currently stored.
func (s *Stack) ByteLen() int {
	return s.data.len()
}

// IsEmpty reports whether the stack holds no strings.
func (s *Stack) IsEmpty() bool {
	return s.ends.len() == 0
}

// Clear removes all strings in O(1), retaining allocated capacity for
// reuse. Every previously issued handle and view is invalid afterwards;
// stale handles fail with ErrOutOfRange on Get.
func (s *Stack) Clear() {
	s.data.reset()
	s.ends.reset()
}

// String renders the live strings as a quoted list, for debugging.
func (s *Stack) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i := range s.ends.len() {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%q", s.At(i))
	}
	b.WriteByte(']')
	return b.String()
}
