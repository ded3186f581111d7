package strstack

import (
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

// ErrInvalidUTF8 is returned by Consume when the reader's bytes are not
// valid UTF-8.
var ErrInvalidUTF8 = errors.New("strstack: invalid UTF-8")

// consumeChunk is the minimum spare capacity reserved per read in Consume.
const consumeChunk = 512

// Writer accumulates one string in place at the top of the stack, avoiding
// any allocation outside the arena. Obtain one with Stack.Writer, write
// into it, then call Finish to seal the bytes as a single new string, or
// Discard to roll them back. At most one unfinished Writer may exist per
// Stack; interleaving Push, Clear, or another Writer with an unfinished one
// corrupts the entry being built.
type Writer struct {
	s     *Stack
	start int
	done  bool
}

// Writer returns a Writer that builds one string in place on the stack.
func (s *Stack) Writer() *Writer {
	return &Writer{s: s, start: s.data.len()}
}

// Write appends p to the string being built. It never fails.
func (w *Writer) Write(p []byte) (int, error) {
	w.s.data.appendBytes(p)
	return len(p), nil
}

// WriteString appends str to the string being built.
func (w *Writer) WriteString(str string) (int, error) {
	w.s.data.appendString(str)
	return len(str), nil
}

// WriteByte appends a single byte.
func (w *Writer) WriteByte(c byte) error {
	w.s.data.buf = append(w.s.data.buf, c)
	return nil
}

// WriteRune appends the UTF-8 encoding of r.
func (w *Writer) WriteRune(r rune) (int, error) {
	before := w.s.data.len()
	w.s.data.buf = utf8.AppendRune(w.s.data.buf, r)
	return w.s.data.len() - before, nil
}

// Finish seals the accumulated bytes as one new string and returns its
// handle. The Writer must not be used afterwards.
func (w *Writer) Finish() int {
	if w.done {
		panic("strstack: Finish on a finished Writer")
	}
	w.done = true
	return w.s.ends.push(w.start, w.s.data.len()-w.start)
}

// Discard rolls the stack back to the Writer's start, dropping everything
// written so far. The Writer must not be used afterwards.
func (w *Writer) Discard() {
	if w.done {
		panic("strstack: Discard on a finished Writer")
	}
	w.done = true
	w.s.data.truncate(w.start)
}

// Pushf formats directly into the stack's buffer and seals the result as
// one new string, returning its handle. Equivalent to
// Push(fmt.Sprintf(format, args...)) without the intermediate allocation.
func (s *Stack) Pushf(format string, args ...any) int {
	start := s.data.len()
	s.data.buf = fmt.Appendf(s.data.buf, format, args...)
	return s.ends.push(start, s.data.len()-start)
}

// Consume reads r until EOF directly into the stack and seals the bytes as
// one new string, returning its handle. The bytes must be valid UTF-8; on
// malformed input it returns ErrInvalidUTF8, and on a read error it returns
// that error. In both failure cases the stack is rolled back and nothing is
// stored.
func (s *Stack) Consume(r io.Reader) (int, error) {
	start := s.data.len()
	for {
		s.data.reserve(consumeChunk)
		buf := s.data.buf
		n, err := r.Read(buf[len(buf):cap(buf)])
		s.data.buf = buf[:len(buf)+n]
		if err == io.EOF {
			break
		}
		if err != nil {
			s.data.truncate(start)
			return 0, err
		}
	}
	if !utf8.Valid(s.data.buf[start:]) {
		s.data.truncate(start)
		return 0, ErrInvalidUTF8
	}
	return s.ends.push(start, s.data.len()-start), nil
}
