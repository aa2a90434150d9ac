package character

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	w := NewWriting()
	w.MoveTo(0, 0)
	require.NoError(t, w.LineTo(200, 200))

	n := w.Normalize()
	assert.Equal(t, [][]Coord{{{150, 150}, {850, 850}}}, n.Coords())

	box := n.BoundingBox()
	assert.Equal(t, 700, box.Width)
	assert.Equal(t, 700, box.Height)
	assert.Equal(t, w.Width(), n.Width())
	assert.Equal(t, w.Height(), n.Height())

	// the source is left alone
	assert.Equal(t, [][]Coord{{{0, 0}, {200, 200}}}, w.Coords())
}

func TestNormalizeCappedScale(t *testing.T) {
	w := NewWriting()
	w.MoveTo(0, 0)
	require.NoError(t, w.LineTo(100, 200))

	// x would need a factor of 7, it is capped at 5
	n := w.Normalize()
	assert.Equal(t, [][]Coord{{{250, 150}, {750, 850}}}, n.Coords())
	assert.Equal(t, Box{X: 250, Y: 150, Width: 500, Height: 700}, n.BoundingBox())
}

func TestNormalizeHorizontalStroke(t *testing.T) {
	w := NewWriting()
	w.MoveTo(100, 500)
	require.NoError(t, w.LineTo(300, 500))

	n := w.Normalize()
	// x is scaled to the full proportion, y hits the cap
	assert.Equal(t, [][]Coord{{{150, 500}, {850, 500}}}, n.Coords())
	assert.Equal(t, Box{X: 150, Y: 500, Width: 700, Height: 0}, n.BoundingBox())
}

func TestNormalizeClampedAxis(t *testing.T) {
	w := NewWriting()
	w.MoveTo(10, 0)
	require.NoError(t, w.LineTo(10, 200))
	require.NoError(t, w.LineTo(12, 100))

	n := w.Normalize()
	box := n.BoundingBox()
	assert.Equal(t, 700, box.Height)
	assert.Equal(t, 2*ProportionMax, float64(box.Width))
	assert.Equal(t, Box{X: 495, Y: 150, Width: 10, Height: 700}, box)
}

func TestNormalizeBothAxesCapped(t *testing.T) {
	w := NewWriting()
	w.MoveTo(10, 0)
	require.NoError(t, w.LineTo(10, 100))
	require.NoError(t, w.LineTo(12, 50))

	n := w.Normalize()
	assert.Equal(t, Box{X: 495, Y: 250, Width: 10, Height: 500}, n.BoundingBox())
}

func TestNormalizeSinglePoint(t *testing.T) {
	w := NewWriting()
	w.MoveTo(3, 4)

	n := w.Normalize()
	assert.Equal(t, [][]Coord{{{500, 500}}}, n.Coords())
}

func TestNormalizeEmpty(t *testing.T) {
	n := NewWriting().Normalize()
	assert.Equal(t, 0, n.NStrokes())
}

func TestNormalizeCustomCanvas(t *testing.T) {
	w, err := NewWritingSize(200, 100)
	require.NoError(t, err)
	w.MoveTo(0, 0)
	require.NoError(t, w.LineTo(10, 10))

	n := w.NormalizeWith(NormalizeOptions{Proportion: 0.5, ProportionMax: 20})
	assert.Equal(t, Box{X: 50, Y: 25, Width: 100, Height: 50}, n.BoundingBox())
	assert.Equal(t, 200, n.Width())
}

func TestFloorDiv(t *testing.T) {
	assert.Equal(t, 2, floorDiv(5, 2))
	assert.Equal(t, -3, floorDiv(-5, 2))
	assert.Equal(t, -2, floorDiv(-4, 2))
	assert.Equal(t, 0, floorDiv(0, 2))
}
