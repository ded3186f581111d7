package strstack

// Cap returns the byte capacity of the backing buffer. It never decreases
// on Clear, which makes capacity retention observable.
func (s *Stack) Cap() int {
	return s.data.cap()
}

// EntryCap returns the number of strings the offset table can hold before
// reallocating.
func (s *Stack) EntryCap() int {
	return s.ends.cap()
}

// Utilization returns the ratio of stored bytes to byte capacity (0.0 to 1.0).
// Returns 0.0 if the stack has no capacity.
func (s *Stack) Utilization() float64 {
	c := s.Cap()
	if c == 0 {
		return 0
	}
	return float64(s.ByteLen()) / float64(c)
}

// Metrics returns a snapshot of stack statistics.
func (s *Stack) Metrics() StackMetrics {
	return StackMetrics{
		Strings:       s.Len(),
		Bytes:         s.ByteLen(),
		ByteCapacity:  s.Cap(),
		EntryCapacity: s.EntryCap(),
		Utilization:   s.Utilization(),
	}
}

// StackMetrics contains statistical information about a Stack.
type StackMetrics struct {
	Strings       int     // Strings currently held
	Bytes         int     // Payload bytes currently stored
	ByteCapacity  int     // Byte capacity of the backing buffer
	EntryCapacity int     // Offset-table capacity, in entries
	Utilization   float64 // Ratio of stored bytes to byte capacity (0.0-1.0)
}

// Thread-safe metrics for SafeStack

// Cap thread-safely returns the byte capacity of the backing buffer.
func (ss *SafeStack) Cap() int {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	return ss.s.Cap()
}

// EntryCap thread-safely returns the offset-table capacity.
func (ss *SafeStack) EntryCap() int {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	return ss.s.EntryCap()
}

// Utilization thread-safely returns the ratio of stored bytes to capacity.
func (ss *SafeStack) Utilization() float64 {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	return ss.s.Utilization()
}

// Metrics thread-safely returns a snapshot of stack statistics.
func (ss *SafeStack) Metrics() StackMetrics {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	return ss.s.Metrics()
}
