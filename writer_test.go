package strstack

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterBuildsInPlace(t *testing.T) {
	s := New()
	s.Push("before")

	w := s.Writer()
	n, err := w.WriteString("Hello")
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	require.NoError(t, w.WriteByte(' '))
	n, err = w.Write([]byte("World"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	n, err = w.WriteRune('!')
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	h := w.Finish()
	assert.Equal(t, 1, h)
	assert.Equal(t, "Hello World!", s.At(h))
	assert.Equal(t, "before", s.At(0))
}

func TestWriterMultiByteRune(t *testing.T) {
	s := New()
	w := s.Writer()
	n, err := w.WriteRune('界')
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, "界", s.At(w.Finish()))
}

func TestWriterDiscard(t *testing.T) {
	s := New()
	s.Push("keep")
	bytesBefore := s.ByteLen()

	w := s.Writer()
	w.WriteString("scratch work")
	w.Discard()

	assert.Equal(t, 1, s.Len())
	assert.Equal(t, bytesBefore, s.ByteLen())

	// The stack is fully usable after a discard.
	h := s.Push("next")
	assert.Equal(t, "next", s.At(h))
	assert.Equal(t, "keep", s.At(0))
}

func TestWriterMisusePanics(t *testing.T) {
	s := New()

	w := s.Writer()
	w.WriteString("x")
	w.Finish()
	assert.Panics(t, func() { w.Finish() })
	assert.Panics(t, func() { w.Discard() })

	w = s.Writer()
	w.Discard()
	assert.Panics(t, func() { w.Finish() })
}

func TestPushf(t *testing.T) {
	s := New()

	h := s.Pushf("%s=%d", "answer", 42)
	assert.Equal(t, 0, h)
	assert.Equal(t, "answer=42", s.At(h))

	h = s.Pushf("")
	assert.Equal(t, "", s.At(h))
	assert.Equal(t, 9, s.ByteLen())
}

func TestConsume(t *testing.T) {
	s := New()
	s.Push("before")

	h, err := s.Consume(strings.NewReader("testing"))
	require.NoError(t, err)
	assert.Equal(t, 1, h)
	assert.Equal(t, "testing", s.At(h))
	assert.Equal(t, "before", s.At(0))
}

func TestConsumeLargeInput(t *testing.T) {
	s := New()
	in := strings.Repeat("0123456789", 1000) // several read chunks

	h, err := s.Consume(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, in, s.At(h))
	assert.Equal(t, len(in), s.ByteLen())
}

func TestConsumeInvalidUTF8(t *testing.T) {
	s := New()
	s.Push("keep")
	bytesBefore := s.ByteLen()

	_, err := s.Consume(strings.NewReader("ok\xff\xfe"))
	assert.ErrorIs(t, err, ErrInvalidUTF8)
	assert.Equal(t, 1, s.Len(), "nothing may be stored on failure")
	assert.Equal(t, bytesBefore, s.ByteLen(), "stack must roll back on failure")
}

func TestConsumeReadError(t *testing.T) {
	s := New()
	boom := errors.New("boom")

	_, err := s.Consume(iotest.ErrReader(boom))
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 0, s.ByteLen())
}
