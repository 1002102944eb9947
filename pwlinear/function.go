package pwlinear

import (
	"sort"

	"github.com/sgostarter/i/commerr"
	"github.com/spf13/cast"
)

// Function is a continuous piecewise linear function, stored as its ordered
// breakpoints and linear between consecutive ones.
//
// Every live Function has at least two breakpoints with strictly increasing
// x values, and is immutable: all operations return new instances.
type Function[T Float] struct {
	points []Point[T]
}

func New[T Float](points []Point[T]) (*Function[T], error) {
	if len(points) < 2 {
		return nil, ErrTooFewPoints
	}

	for idx := 1; idx < len(points); idx++ {
		if !(points[idx-1].X < points[idx].X) {
			return nil, ErrUnorderedPoints
		}
	}

	ps := make([]Point[T], len(points))
	copy(ps, points)

	return &Function[T]{points: ps}, nil
}

func FromPairs[T Float](pairs [][2]T) (*Function[T], error) {
	points := make([]Point[T], 0, len(pairs))
	for _, pair := range pairs {
		points = append(points, Point[T]{X: pair[0], Y: pair[1]})
	}

	return New(points)
}

// FromValues builds a function from loosely typed coordinate lists, such as
// numbers decoded from yaml or json.
func FromValues(xs, ys []interface{}) (*Function[float64], error) {
	if len(xs) != len(ys) {
		return nil, commerr.ErrInvalidArgument
	}

	points := make([]Point[float64], 0, len(xs))

	for idx := range xs {
		x, err := cast.ToFloat64E(xs[idx])
		if err != nil {
			return nil, err
		}

		y, err := cast.ToFloat64E(ys[idx])
		if err != nil {
			return nil, err
		}

		points = append(points, Point[float64]{X: x, Y: y})
	}

	return New(points)
}

// Constant returns the function with the given domain that is value
// everywhere.
func Constant[T Float](domain Domain[T], value T) (*Function[T], error) {
	if !(domain.Start < domain.End) {
		return nil, ErrBadDomain
	}

	return &Function[T]{points: []Point[T]{
		{X: domain.Start, Y: value},
		{X: domain.End, Y: value},
	}}, nil
}

// Points returns a copy of the breakpoints.
func (fn *Function[T]) Points() []Point[T] {
	points := make([]Point[T], len(fn.points))
	copy(points, fn.points)

	return points
}

func (fn *Function[T]) Domain() Domain[T] {
	return Domain[T]{Start: fn.points[0].X, End: fn.points[len(fn.points)-1].X}
}

func (fn *Function[T]) SameDomain(other *Function[T]) bool {
	return fn.Domain().Equal(other.Domain())
}

// SegmentAtX returns the segment ((x1, y1), (x2, y2)) with x1 <= x <= x2,
// or ok=false when x is outside the domain.
func (fn *Function[T]) SegmentAtX(x T) (Line[T], bool) {
	if !(x >= fn.points[0].X) || !(x <= fn.points[len(fn.points)-1].X) {
		return Line[T]{}, false
	}

	idx := sort.Search(len(fn.points), func(i int) bool {
		return fn.points[i].X >= x
	})

	if idx == 0 {
		idx = 1
	}

	return NewLine(fn.points[idx-1], fn.points[idx]), true
}

// YAtX evaluates the function, or returns ok=false when x is outside the
// domain. No extrapolation happens.
func (fn *Function[T]) YAtX(x T) (T, bool) {
	seg, ok := fn.SegmentAtX(x)
	if !ok {
		var zero T

		return zero, false
	}

	return seg.YAtX(x), true
}

// ShrinkDomain restricts the function to the given sub domain, which must
// lie inside the current one.
func (fn *Function[T]) ShrinkDomain(to Domain[T]) (*Function[T], error) {
	domain := fn.Domain()
	if domain.Equal(to) {
		return fn.clone(), nil
	}

	if !(to.Start < to.End) {
		return nil, ErrBadDomain
	}

	if !domain.Covers(to) {
		return nil, ErrNotSubDomain
	}

	points := make([]Point[T], 0, len(fn.points))

	cur := newSegmentCursor(fn.points)

	for {
		seg, ok := cur.Next()
		if !ok {
			break
		}

		restricted, ok := lineInDomain(seg, to)
		if !ok {
			continue
		}

		// seg.Start.X was the previous segment's end; if it sits at or
		// before the new start, that end point was never emitted
		if seg.Start.X <= to.Start {
			points = append(points, restricted.Start)
		}

		points = append(points, restricted.End)
	}

	return New(points)
}

// ExpandDomain extends the function to the given super domain, adding at
// most one point per side according to strategy.
func (fn *Function[T]) ExpandDomain(to Domain[T], strategy ExtendStrategy) (*Function[T], error) {
	domain := fn.Domain()
	if domain.Equal(to) {
		return fn.clone(), nil
	}

	if !to.Covers(domain) {
		return nil, ErrNotSubDomain
	}

	points := make([]Point[T], 0, len(fn.points)+2)

	if fn.points[0].X > to.Start {
		switch strategy {
		case ExtendValue:
			points = append(points, Point[T]{X: to.Start, Y: fn.points[0].Y}, fn.points[0])
		default:
			points = append(points, Point[T]{
				X: to.Start,
				Y: NewLine(fn.points[0], fn.points[1]).YAtX(to.Start),
			})
		}
	} else {
		points = append(points, fn.points[0])
	}

	last := len(fn.points) - 1
	points = append(points, fn.points[1:last]...)

	if fn.points[last].X < to.End {
		switch strategy {
		case ExtendValue:
			points = append(points, fn.points[last], Point[T]{X: to.End, Y: fn.points[last].Y})
		default:
			points = append(points, Point[T]{
				X: to.End,
				Y: NewLine(fn.points[last-1], fn.points[last]).YAtX(to.End),
			})
		}
	} else {
		points = append(points, fn.points[last])
	}

	return New(points)
}

// Neg returns -f. The x values are unchanged, so no re-validation is needed.
func (fn *Function[T]) Neg() *Function[T] {
	points := make([]Point[T], len(fn.points))
	for idx, p := range fn.points {
		points[idx] = Point[T]{X: p.X, Y: -p.Y}
	}

	return &Function[T]{points: points}
}

// Integrate returns the integral over the whole domain, as the trapezoid
// sum over the segments.
func (fn *Function[T]) Integrate() T {
	var total T

	cur := newSegmentCursor(fn.points)

	for {
		seg, ok := cur.Next()
		if !ok {
			break
		}

		total += (seg.End.X - seg.Start.X) * (seg.Start.Y + seg.End.Y) / 2
	}

	return total
}

func (fn *Function[T]) clone() *Function[T] {
	return &Function[T]{points: fn.Points()}
}

// lineInDomain restricts l to domain, or returns ok=false when the
// intersection is empty or a single point.
func lineInDomain[T Float](l Line[T], domain Domain[T]) (Line[T], bool) {
	if l.End.X <= domain.Start || l.Start.X >= domain.End {
		return Line[T]{}, false
	}

	left := l.Start
	if l.Start.X < domain.Start {
		left = Point[T]{X: domain.Start, Y: l.YAtX(domain.Start)}
	}

	right := l.End
	if l.End.X > domain.End {
		right = Point[T]{X: domain.End, Y: l.YAtX(domain.End)}
	}

	return NewLine(left, right), true
}
