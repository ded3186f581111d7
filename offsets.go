package strstack

// span describes the half-open byte range [start, start+n) of one pushed
// string within the byte arena. Spans are immutable once created, never
// overlap, and appear in the arena in handle order.
type span struct {
	start int
	n     int
}

// offsetTable is the append-only sequence of spans, one per pushed string,
// in insertion order. An entry's position in the table is the handle handed
// to callers; entries are only ever appended or cleared en masse.
type offsetTable struct {
	spans []span
}

func newOffsetTable(capacity int) offsetTable {
	if capacity < 0 {
		capacity = 0
	}
	return offsetTable{spans: make([]span, 0, capacity)}
}

// push appends a new entry and returns its handle.
func (t *offsetTable) push(start, n int) int {
	t.spans = append(t.spans, span{start: start, n: n})
	return len(t.spans) - 1
}

// at returns the span for handle i, or ok=false when i does not name a
// live entry.
func (t *offsetTable) at(i int) (span, bool) {
	if i < 0 || i >= len(t.spans) {
		return span{}, false
	}
	return t.spans[i], true
}

func (t *offsetTable) len() int { return len(t.spans) }

// reset truncates to zero entries, retaining backing capacity.
func (t *offsetTable) reset() {
	t.spans = t.spans[:0]
}

func (t *offsetTable) cap() int { return cap(t.spans) }
