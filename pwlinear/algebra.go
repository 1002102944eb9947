package pwlinear

// Add returns f+g. Both functions must share the same domain.
func Add[T Float](f, g *Function[T]) (*Function[T], error) {
	return Sum(f, g)
}

// Sum returns the elementwise sum of all fns, which must share the same
// domain. One k-way merge is cheaper than folding Add by a factor of
// k/log(k).
func Sum[T Float](fns ...*Function[T]) (*Function[T], error) {
	it, err := Merge(fns...)
	if err != nil {
		return nil, err
	}

	points := make([]Point[T], 0)

	for {
		jp, ok := it.Next()
		if !ok {
			break
		}

		var y T
		for _, v := range jp.Values {
			y += v
		}

		points = append(points, Point[T]{X: jp.X, Y: y})
	}

	// merge output keeps the input x values, already strictly increasing
	return &Function[T]{points: points}, nil
}

// Max returns the pointwise maximum of f and g, which must share the same
// domain. The result may have breakpoints present in neither input: wherever
// the larger function changes between two joint breakpoints, the crossing
// point of the two segments is inserted.
func Max[T Float](f, g *Function[T]) (*Function[T], error) {
	it, err := Merge(f, g)
	if err != nil {
		return nil, err
	}

	jp, _ := it.Next()
	leader := argmax(jp.Values)

	points := []Point[T]{{X: jp.X, Y: jp.Values[leader]}}

	prevLeader := leader
	prevX := jp.X
	prevValues := jp.Values

	for {
		jp, ok := it.Next()
		if !ok {
			break
		}

		leader = argmax(jp.Values)

		if leader != prevLeader {
			cross := lineIntersect(
				NewLine(Point[T]{X: prevX, Y: prevValues[0]}, Point[T]{X: jp.X, Y: jp.Values[0]}),
				NewLine(Point[T]{X: prevX, Y: prevValues[1]}, Point[T]{X: jp.X, Y: jp.Values[1]}),
			)

			// the leader label can flip on exact ties without a real
			// crossing; only a strictly interior intersection counts
			if cross.X > prevX && cross.X < jp.X {
				points = append(points, cross)
			}
		}

		points = append(points, Point[T]{X: jp.X, Y: jp.Values[leader]})

		prevLeader = leader
		prevX = jp.X
		prevValues = jp.Values
	}

	return &Function[T]{points: points}, nil
}

// Min returns the pointwise minimum of f and g, as -max(-f, -g).
func Min[T Float](f, g *Function[T]) (*Function[T], error) {
	m, err := Max(f.Neg(), g.Neg())
	if err != nil {
		return nil, err
	}

	return m.Neg(), nil
}

// Abs returns |f|, as max(f, -f).
func Abs[T Float](f *Function[T]) *Function[T] {
	m, _ := Max(f, f.Neg())

	return m
}

// argmax returns the index of the first maximal value.
func argmax[T Float](values []T) int {
	best := 0

	for idx := 1; idx < len(values); idx++ {
		if lessStrict(values[best], values[idx]) {
			best = idx
		}
	}

	return best
}

// lineIntersect returns the intersection of the infinite extensions of l1
// and l2, from their slopes and y intercepts.
func lineIntersect[T Float](l1, l2 Line[T]) Point[T] {
	b1 := l1.Start.Y - l1.Start.X*l1.Slope()
	b2 := l2.Start.Y - l2.Start.X*l2.Slope()

	x := (b2 - b1) / (l1.Slope() - l2.Slope())

	return Point[T]{X: x, Y: l1.YAtX(x)}
}
