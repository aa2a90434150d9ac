package character

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Default canvas size. Writings captured on a different canvas must
// set their own size.
const (
	DefaultWidth  = 1000
	DefaultHeight = 1000
)

// Box is an axis-aligned rectangle.
type Box struct {
	X, Y          int
	Width, Height int
}

// Coord is a bare (x, y) pair.
type Coord struct {
	X, Y int
}

// Writing is the ordered set of strokes of one glyph together with the
// size of the canvas they were captured on.
type Writing struct {
	width   int
	height  int
	strokes []*Stroke
}

// NewWriting returns an empty writing on the default canvas
func NewWriting() *Writing {
	return &Writing{width: DefaultWidth, height: DefaultHeight}
}

// NewWritingSize returns an empty writing on a width x height canvas.
func NewWritingSize(width, height int) (*Writing, error) {
	if err := checkDimension("width", width); err != nil {
		return nil, err
	}
	if err := checkDimension("height", height); err != nil {
		return nil, err
	}
	return &Writing{width: width, height: height}, nil
}

func checkDimension(name string, v int) error {
	if v <= 0 {
		return errors.Wrapf(ErrInvalidValue, "%s must be positive, got %d", name, v)
	}
	return nil
}

func (w *Writing) Width() int {
	return w.width
}

func (w *Writing) Height() int {
	return w.height
}

func (w *Writing) SetWidth(width int) error {
	if err := checkDimension("width", width); err != nil {
		return err
	}
	w.width = width
	return nil
}

func (w *Writing) SetHeight(height int) error {
	if err := checkDimension("height", height); err != nil {
		return err
	}
	w.height = height
	return nil
}

// NStrokes returns the number of strokes
func (w *Writing) NStrokes() int {
	return len(w.strokes)
}

// Strokes returns copies of the strokes in drawing order.
func (w *Writing) Strokes() []*Stroke {
	out := make([]*Stroke, len(w.strokes))
	for i, s := range w.strokes {
		out[i] = s.clone()
	}
	return out
}

// Coords returns the coordinates of every stroke, dropping pen dynamics.
func (w *Writing) Coords() [][]Coord {
	out := make([][]Coord, len(w.strokes))
	for i, s := range w.strokes {
		cs := make([]Coord, len(s.points))
		for j, p := range s.points {
			cs[j] = Coord{p.X, p.Y}
		}
		out[i] = cs
	}
	return out
}

// BeginStroke opens a new stroke starting at p.
func (w *Writing) BeginStroke(p Point) {
	w.strokes = append(w.strokes, NewStroke(p))
}

// ExtendCurrentStroke appends p to the last stroke. It fails with
// ErrInvalidState if no stroke has been begun.
func (w *Writing) ExtendCurrentStroke(p Point) error {
	if len(w.strokes) == 0 {
		return errors.Wrap(ErrInvalidState, "no stroke to extend")
	}
	w.strokes[len(w.strokes)-1].AppendPoint(p)
	return nil
}

// MoveTo begins a stroke at (x, y)
func (w *Writing) MoveTo(x, y int) {
	w.BeginStroke(Pt(x, y))
}

// LineTo extends the current stroke to (x, y)
func (w *Writing) LineTo(x, y int) error {
	return w.ExtendCurrentStroke(Pt(x, y))
}

// AppendStroke appends a copy of s. Empty strokes are rejected.
func (w *Writing) AppendStroke(s *Stroke) error {
	if s == nil || s.Len() == 0 {
		return errors.Wrap(ErrInvalidValue, "stroke has no points")
	}
	w.strokes = append(w.strokes, s.clone())
	return nil
}

// RemoveLastStroke drops the last stroke, if any.
func (w *Writing) RemoveLastStroke() {
	if len(w.strokes) > 0 {
		w.strokes[len(w.strokes)-1] = nil
		w.strokes = w.strokes[:len(w.strokes)-1]
	}
}

// Clear removes all strokes
func (w *Writing) Clear() {
	w.strokes = nil
}

// Duration is the time from the first point of the first stroke to the
// last point of the last stroke.
func (w *Writing) Duration() (int64, bool) {
	if len(w.strokes) == 0 {
		return 0, false
	}
	first := w.strokes[0].points[0].Timestamp
	lastStroke := w.strokes[len(w.strokes)-1]
	last := lastStroke.points[len(lastStroke.points)-1].Timestamp
	if !first.Valid || !last.Valid {
		return 0, false
	}
	return last.Int64 - first.Int64, true
}

// BoundingBox returns the smallest box holding every point. A writing
// without points yields the zero Box.
func (w *Writing) BoundingBox() Box {
	var (
		xmin, ymin, xmax, ymax int
		seen                   bool
	)
	for _, s := range w.strokes {
		for _, p := range s.points {
			if !seen {
				xmin, xmax = p.X, p.X
				ymin, ymax = p.Y, p.Y
				seen = true
				continue
			}
			xmin = min(xmin, p.X)
			xmax = max(xmax, p.X)
			ymin = min(ymin, p.Y)
			ymax = max(ymax, p.Y)
		}
	}
	if !seen {
		return Box{}
	}
	return Box{X: xmin, Y: ymin, Width: xmax - xmin, Height: ymax - ymin}
}

// Resize returns a new writing with every point scaled by xrate, yrate.
func (w *Writing) Resize(xrate, yrate float64) *Writing {
	return w.transform(func(p Point) Point {
		return p.Resize(xrate, yrate)
	})
}

// MoveRel returns a new writing with every point translated by dx, dy.
func (w *Writing) MoveRel(dx, dy int) *Writing {
	return w.transform(func(p Point) Point {
		return p.MoveRel(dx, dy)
	})
}

func (w *Writing) transform(f func(Point) Point) *Writing {
	out := &Writing{
		width:   w.width,
		height:  w.height,
		strokes: make([]*Stroke, len(w.strokes)),
	}
	for i, s := range w.strokes {
		out.strokes[i] = s.transform(f)
	}
	return out
}

// Copy returns a deep copy
func (w *Writing) Copy() *Writing {
	return w.transform(func(p Point) Point { return p })
}

// Equal compares the stroke sequences. Canvas sizes are not compared.
func (w *Writing) Equal(o *Writing) bool {
	if len(w.strokes) != len(o.strokes) {
		return false
	}
	for i := range w.strokes {
		if !w.strokes[i].Equal(o.strokes[i]) {
			return false
		}
	}
	return true
}

func (w *Writing) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%dx%d [", w.width, w.height)
	for i, s := range w.strokes {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('[')
		for j, p := range s.points {
			if j > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(p.String())
		}
		b.WriteByte(']')
	}
	b.WriteByte(']')
	return b.String()
}
