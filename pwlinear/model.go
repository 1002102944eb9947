package pwlinear

// Float is the coordinate type constraint for all functions in this package.
type Float interface {
	~float32 | ~float64
}

type Point[T Float] struct {
	X T `json:"x" yaml:"x"`
	Y T `json:"y" yaml:"y"`
}

// Line is the segment between two breakpoints. It is a view, never stored.
type Line[T Float] struct {
	Start Point[T]
	End   Point[T]
}

func NewLine[T Float](start, end Point[T]) Line[T] {
	return Line[T]{Start: start, End: end}
}

func (l Line[T]) Slope() T {
	return (l.End.Y - l.Start.Y) / (l.End.X - l.Start.X)
}

func (l Line[T]) YAtX(x T) T {
	return l.Start.Y + (x-l.Start.X)*l.Slope()
}

// Domain is the closed x interval a function is defined on.
type Domain[T Float] struct {
	Start T `json:"start" yaml:"start"`
	End   T `json:"end" yaml:"end"`
}

func (d Domain[T]) Equal(o Domain[T]) bool {
	return d.Start == o.Start && d.End == o.End
}

// Covers reports whether o lies inside d.
func (d Domain[T]) Covers(o Domain[T]) bool {
	return d.Start <= o.Start && d.End >= o.End
}

// JointPoint is one item of a merge: an x that is a breakpoint of at least
// one merged function, and every function's value at that x.
type JointPoint[T Float] struct {
	X      T
	Values []T
}

// ExtendStrategy controls how ExpandDomain synthesizes the added edge value.
type ExtendStrategy int

const (
	// ExtendSegment extrapolates the boundary segment's slope.
	ExtendSegment ExtendStrategy = iota
	// ExtendValue holds the boundary value constant.
	ExtendValue
)
