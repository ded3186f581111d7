// Package strstack implements a bump-style string arena for Go.
//
// # Overview
//
// A string stack is a fast allocation strategy for code that produces many
// short-lived strings in a batch: all payload bytes live back-to-back in one
// contiguous buffer, each pushed string is addressed by a small integer
// handle, and the whole batch is released at once in O(1). This is
// particularly useful for:
//
//   - Tokenizers and parsers that materialize many small lexemes
//   - Log and message formatters building transient lines
//   - Reducing garbage collection pressure from per-string allocations
//   - Any batch pattern where strings are discarded together
//
// # Basic Usage
//
//	s := strstack.New()
//
//	first := s.Push("one")
//	second := s.Push("two")
//
//	fmt.Println(s.At(first), s.At(second)) // one two
//
//	// Reset for reuse (O(1), capacity retained)
//	s.Clear()
//
// Strings can also be built in place, with no intermediate allocation:
//
//	idx := s.Pushf("user=%s id=%d", name, id)
//
// # Thread Safety
//
// Stack is not thread-safe; it assumes a single exclusive owner. For
// concurrent access, use SafeStack:
//
//	ss := strstack.NewSafeStack(0, 0)
//	idx := ss.Push("shared")
//
// # Memory Layout
//
// All payload bytes are stored contiguously in one growable buffer with no
// padding or separators; an offset table records one (start, length) span
// per string in push order. The handle returned by Push is the string's
// position in that table. The buffer grows geometrically, so a sequence of
// pushes costs amortized O(1) per byte.
//
// # View Lifetime
//
// Get, At, and iteration return views into the backing buffer rather than
// copies. A growth reallocation does not invalidate views already handed
// out (the previous buffer remains reachable through them and its bytes are
// never rewritten), but Clear logically invalidates every outstanding view
// and handle: subsequent pushes recycle the buffer in place. Do not use a
// view or handle obtained before a Clear after it. Use strings.Clone to
// detach a view that must outlive the stack.
//
// # Important Notes
//
//   - No individual deallocation - strings die together on Clear
//   - Pushed strings are immutable; handles are plain ints, densely 0..Len-1
//   - Clear retains all allocated capacity for reuse
//   - Stale handles fail with ErrOutOfRange on Get, never return garbage
//
// # Introspection
//
// The stack exposes its capacity and usage for monitoring and for verifying
// capacity retention across Clear:
//
//	m := s.Metrics()
//	fmt.Printf("strings: %d, bytes: %d/%d\n", m.Strings, m.Bytes, m.ByteCapacity)
package strstack
