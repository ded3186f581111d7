package strstack

import (
	"io"
	"iter"
	"sync"
)

// SafeStack is a mutex-protected wrapper around Stack for concurrent access.
// All operations are thread-safe but come with the overhead of locking.
//
// Views returned by Get and At are subject to the same invalidation rules as
// Stack's: a Clear that races with the use of an already returned view is a
// caller error the lock cannot prevent. The in-place Writer is not offered
// here because it spans multiple calls; use Push, Pushf, or Consume instead.
type SafeStack struct {
	mu sync.RWMutex
	s  *Stack
}

// NewSafeStack creates a thread-safe stack pre-sized like NewWithCapacity.
func NewSafeStack(bytes, strings int) *SafeStack {
	return &SafeStack{s: NewWithCapacity(bytes, strings)}
}

// Push thread-safely copies text onto the stack and returns its handle.
func (ss *SafeStack) Push(text string) int {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return ss.s.Push(text)
}

// Pushf thread-safely formats into the stack and returns the new handle.
func (ss *SafeStack) Pushf(format string, args ...any) int {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return ss.s.Pushf(format, args...)
}

// Consume thread-safely reads r until EOF into the stack as one string.
func (ss *SafeStack) Consume(r io.Reader) (int, error) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return ss.s.Consume(r)
}

// PushAll thread-safely pushes every string produced by seq, in order, as
// one atomic batch.
func (ss *SafeStack) PushAll(seq iter.Seq[string]) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	ss.s.PushAll(seq)
}

// Get thread-safely returns the string stored under handle i.
func (ss *SafeStack) Get(i int) (string, error) {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	return ss.s.Get(i)
}

// At thread-safely returns the string under handle i, panicking when i is
// not live.
func (ss *SafeStack) At(i int) string {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	return ss.s.At(i)
}

// Len thread-safely returns the number of strings currently held.
func (ss *SafeStack) Len() int {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	return ss.s.Len()
}

// ByteLen thread-safely returns the total payload bytes currently stored.
func (ss *SafeStack) ByteLen() int {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	return ss.s.ByteLen()
}

// IsEmpty thread-safely reports whether the stack holds no strings.
func (ss *SafeStack) IsEmpty() bool {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	return ss.s.IsEmpty()
}

// Clear thread-safely removes all strings, retaining capacity.
func (ss *SafeStack) Clear() {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	ss.s.Clear()
}

// Strings returns the live strings in push order as a freshly allocated
// slice of views, taken under the read lock. Iterators are not offered on
// SafeStack because the lock cannot be held across a caller's loop body.
func (ss *SafeStack) Strings() []string {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	out := make([]string, 0, ss.s.Len())
	for v := range ss.s.Values() {
		out = append(out, v)
	}
	return out
}
