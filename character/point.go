package character

import (
	"fmt"
	"strings"
)

// NullFloat64 is a float64 that may be absent.
type NullFloat64 struct {
	Float64 float64
	Valid   bool
}

// NullInt64 is an int64 that may be absent.
type NullInt64 struct {
	Int64 int64
	Valid bool
}

// Float64 returns a present NullFloat64
func Float64(v float64) NullFloat64 {
	return NullFloat64{Float64: v, Valid: true}
}

// Int64 returns a present NullInt64
func Int64(v int64) NullInt64 {
	return NullInt64{Int64: v, Valid: true}
}

// Point is one sampled pen position. Pressure, tilt and timestamp are
// only set when the capture device reported them.
type Point struct {
	X, Y int

	Pressure NullFloat64
	XTilt    NullFloat64
	YTilt    NullFloat64

	// Timestamp in milliseconds
	Timestamp NullInt64
}

// Pt returns a point with coordinates only
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Resize scales the coordinates, truncating towards zero.
func (p Point) Resize(xrate, yrate float64) Point {
	p.X = int(float64(p.X) * xrate)
	p.Y = int(float64(p.Y) * yrate)
	return p
}

// MoveRel translates the coordinates.
func (p Point) MoveRel(dx, dy int) Point {
	p.X += dx
	p.Y += dy
	return p
}

func (p Point) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "(%d,%d", p.X, p.Y)
	if p.Pressure.Valid {
		fmt.Fprintf(&b, " p=%g", p.Pressure.Float64)
	}
	if p.XTilt.Valid {
		fmt.Fprintf(&b, " xt=%g", p.XTilt.Float64)
	}
	if p.YTilt.Valid {
		fmt.Fprintf(&b, " yt=%g", p.YTilt.Float64)
	}
	if p.Timestamp.Valid {
		fmt.Fprintf(&b, " t=%d", p.Timestamp.Int64)
	}
	b.WriteByte(')')
	return b.String()
}
