package pwlinear

import "container/heap"

// lessStrict orders coordinates for the merge heap and the leader scan.
// Pairs that cannot be ordered, such as NaN against anything, compare equal.
func lessStrict[T Float](a, b T) bool {
	return a < b
}

type segmentEnd[T Float] struct {
	x   T
	idx int
}

// endHeap is a min heap over E with an injected comparator.
type endHeap[E any] struct {
	items []E
	less  func(a, b E) bool
}

func (h *endHeap[E]) Len() int           { return len(h.items) }
func (h *endHeap[E]) Less(i, j int) bool { return h.less(h.items[i], h.items[j]) }
func (h *endHeap[E]) Swap(i, j int)      { h.items[i], h.items[j] = h.items[j], h.items[i] }

func (h *endHeap[E]) Push(v interface{}) {
	h.items = append(h.items, v.(E))
}

func (h *endHeap[E]) Pop() interface{} {
	old := h.items
	v := old[len(old)-1]
	h.items = old[:len(old)-1]

	return v
}

type mergeState int

const (
	mergeUninitialized mergeState = iota
	mergeStreaming
	mergeExhausted
)

// MergeIter yields the joint breakpoints of several functions in strictly
// ascending x order: one item per distinct breakpoint x across all inputs,
// carrying every function's interpolated value at that x.
//
// The iteration is lazy, finite and single use. The input functions are only
// borrowed; independent merges over the same functions may run concurrently.
type MergeIter[T Float] struct {
	cursors []*SegmentCursor[T]
	heap    *endHeap[segmentEnd[T]]
	state   mergeState
}

// Merge builds a joint breakpoint iterator over fns. At least one function
// must be given and all of them must share the same domain.
//
// Iterating costs O(k log(k) n) for k functions of n breakpoints each.
func Merge[T Float](fns ...*Function[T]) (*MergeIter[T], error) {
	if len(fns) == 0 {
		return nil, ErrNoFunctions
	}

	for idx := 1; idx < len(fns); idx++ {
		if !fns[idx-1].SameDomain(fns[idx]) {
			return nil, ErrDomainMismatch
		}
	}

	cursors := make([]*SegmentCursor[T], 0, len(fns))
	for _, fn := range fns {
		cursors = append(cursors, fn.Segments())
	}

	return &MergeIter[T]{
		cursors: cursors,
		heap: &endHeap[segmentEnd[T]]{
			less: func(a, b segmentEnd[T]) bool {
				return lessStrict(a.x, b.x)
			},
		},
	}, nil
}

// Next pulls the next joint breakpoint, or returns ok=false once all
// cursors are exhausted. A finished iterator keeps returning ok=false.
func (it *MergeIter[T]) Next() (JointPoint[T], bool) {
	switch it.state {
	case mergeUninitialized:
		return it.start(), true
	case mergeStreaming:
		if it.heap.Len() == 0 {
			it.state = mergeExhausted

			return JointPoint[T]{}, false
		}

		return it.step(), true
	default:
		return JointPoint[T]{}, false
	}
}

// start seeds the heap with every cursor's first segment end and emits the
// joint point at the shared domain start.
func (it *MergeIter[T]) start() JointPoint[T] {
	it.state = mergeStreaming

	values := make([]T, len(it.cursors))

	for idx, cur := range it.cursors {
		seg, _ := cur.Peek()
		heap.Push(it.heap, segmentEnd[T]{x: seg.End.X, idx: idx})
		values[idx] = seg.Start.Y
	}

	first, _ := it.cursors[0].Peek()

	return JointPoint[T]{X: first.Start.X, Values: values}
}

func (it *MergeIter[T]) step() JointPoint[T] {
	x := it.heap.items[0].x

	values := make([]T, len(it.cursors))
	for idx, cur := range it.cursors {
		seg, _ := cur.Peek()
		values[idx] = seg.YAtX(x)
	}

	// every cursor whose segment ends here moves on together
	for it.heap.Len() > 0 && it.heap.items[0].x == x {
		top, _ := heap.Pop(it.heap).(segmentEnd[T])

		cur := it.cursors[top.idx]
		cur.Advance()

		if seg, ok := cur.Peek(); ok {
			heap.Push(it.heap, segmentEnd[T]{x: seg.End.X, idx: top.idx})
		}
	}

	return JointPoint[T]{X: x, Values: values}
}
