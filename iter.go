package strstack

import "iter"

// Values returns an iterator over the stored strings in push order. The
// sequence is finite and restartable: every range over it starts from the
// first live string and reflects the stack's state as it runs.
func (s *Stack) Values() iter.Seq[string] {
	return func(yield func(string) bool) {
		for i := 0; i < s.ends.len(); i++ {
			sp := s.ends.spans[i]
			if !yield(s.data.view(sp.start, sp.n)) {
				return
			}
		}
	}
}

// All returns an iterator over (handle, string) pairs in push order.
func (s *Stack) All() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for i := 0; i < s.ends.len(); i++ {
			sp := s.ends.spans[i]
			if !yield(i, s.data.view(sp.start, sp.n)) {
				return
			}
		}
	}
}

// PushAll pushes every string produced by seq, in order.
func (s *Stack) PushAll(seq iter.Seq[string]) {
	for v := range seq {
		s.Push(v)
	}
}

// Collect builds a new Stack holding the strings produced by seq.
func Collect(seq iter.Seq[string]) *Stack {
	s := New()
	s.PushAll(seq)
	return s
}
