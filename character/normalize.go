package character

const (
	// Proportion of the canvas a normalized writing spans on each axis.
	Proportion = 0.7
	// ProportionMax caps the scale factor so thin strokes do not blow up.
	ProportionMax = 5.0
)

// NormalizeOptions tunes Writing.NormalizeWith.
type NormalizeOptions struct {
	Proportion    float64
	ProportionMax float64
}

// DefaultNormalizeOptions returns the options used by Normalize
func DefaultNormalizeOptions() NormalizeOptions {
	return NormalizeOptions{Proportion: Proportion, ProportionMax: ProportionMax}
}

// Normalize scales the writing so it spans Proportion of the canvas on
// each axis and centers it. The axes are scaled independently.
func (w *Writing) Normalize() *Writing {
	return w.NormalizeWith(DefaultNormalizeOptions())
}

// NormalizeWith is Normalize with explicit proportions.
func (w *Writing) NormalizeWith(opts NormalizeOptions) *Writing {
	box := w.BoundingBox()

	width, height := box.Width, box.Height
	if width == 0 {
		width = 1
	}
	if height == 0 {
		height = 1
	}

	xrate := float64(w.width) * opts.Proportion / float64(width)
	yrate := float64(w.height) * opts.Proportion / float64(height)

	// a single horizontal stroke has almost no height
	if xrate > opts.ProportionMax {
		xrate = opts.ProportionMax
	}
	if yrate > opts.ProportionMax {
		yrate = opts.ProportionMax
	}

	resized := w.Resize(xrate, yrate)
	box = resized.BoundingBox()

	dx := floorDiv(w.width-box.Width, 2) - box.X
	dy := floorDiv(w.height-box.Height, 2) - box.Y

	return resized.MoveRel(dx, dy)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
