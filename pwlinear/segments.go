package pwlinear

// SegmentCursor walks the segments of a function front to back: one segment
// per pair of consecutive breakpoints, so at least one in total. A cursor is
// single use; build a new one for every traversal.
type SegmentCursor[T Float] struct {
	points []Point[T]
	idx    int
}

// Segments returns a fresh cursor over the function's segments.
func (fn *Function[T]) Segments() *SegmentCursor[T] {
	return newSegmentCursor(fn.points)
}

func newSegmentCursor[T Float](points []Point[T]) *SegmentCursor[T] {
	return &SegmentCursor[T]{points: points}
}

// Peek returns the current segment without consuming it.
func (sc *SegmentCursor[T]) Peek() (Line[T], bool) {
	if sc.idx+1 >= len(sc.points) {
		return Line[T]{}, false
	}

	return NewLine(sc.points[sc.idx], sc.points[sc.idx+1]), true
}

// Advance moves the cursor past the current segment.
func (sc *SegmentCursor[T]) Advance() {
	if sc.idx+1 < len(sc.points) {
		sc.idx++
	}
}

// Next consumes and returns the current segment.
func (sc *SegmentCursor[T]) Next() (Line[T], bool) {
	seg, ok := sc.Peek()
	if ok {
		sc.Advance()
	}

	return seg, ok
}
