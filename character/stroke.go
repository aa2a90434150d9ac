package character

// Stroke is one continuous pen-down gesture. Points are kept in
// sampling order.
type Stroke struct {
	points []Point
}

// NewStroke returns a stroke holding first followed by rest.
func NewStroke(first Point, rest ...Point) *Stroke {
	points := make([]Point, 0, len(rest)+1)
	points = append(points, first)
	points = append(points, rest...)
	return &Stroke{points: points}
}

// AppendPoint adds p at the end. Timestamps are not checked for order.
func (s *Stroke) AppendPoint(p Point) {
	s.points = append(s.points, p)
}

// Len returns the number of points
func (s *Stroke) Len() int {
	return len(s.points)
}

// Point returns the i-th point
func (s *Stroke) Point(i int) Point {
	return s.points[i]
}

// Points returns a copy of the points
func (s *Stroke) Points() []Point {
	out := make([]Point, len(s.points))
	copy(out, s.points)
	return out
}

// Duration is the time between the first and the last point. ok is
// false when either of them has no timestamp.
func (s *Stroke) Duration() (d int64, ok bool) {
	if len(s.points) == 0 {
		return 0, false
	}
	first, last := s.points[0].Timestamp, s.points[len(s.points)-1].Timestamp
	if !first.Valid || !last.Valid {
		return 0, false
	}
	return last.Int64 - first.Int64, true
}

// Equal reports whether both strokes hold equal points in the same order.
func (s *Stroke) Equal(o *Stroke) bool {
	if len(s.points) != len(o.points) {
		return false
	}
	for i := range s.points {
		if s.points[i] != o.points[i] {
			return false
		}
	}
	return true
}

func (s *Stroke) clone() *Stroke {
	return &Stroke{points: s.Points()}
}

func (s *Stroke) transform(f func(Point) Point) *Stroke {
	out := &Stroke{points: make([]Point, len(s.points))}
	for i, p := range s.points {
		out.points[i] = f(p)
	}
	return out
}
