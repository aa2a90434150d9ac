// Package mirror reads and writes the JSON form of a character. Pressure
// and tilt keep their full precision, as in the markup form.
package mirror

import (
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/juruen/tegaki/character"
)

// Marshal returns the JSON document of c
func Marshal(c *character.Character) ([]byte, error) {
	return json.Marshal(FromCharacter(c))
}

// FromCharacter builds the document model of c
func FromCharacter(c *character.Character) *Document {
	doc := &Document{}
	if label, ok := c.Label(); ok {
		doc.Label = &label
	}
	doc.Writing = fromWriting(c.Writing())
	return doc
}

func fromWriting(w *character.Writing) Writing {
	out := Writing{
		Width:   w.Width(),
		Height:  w.Height(),
		Strokes: make([]Stroke, 0, w.NStrokes()),
	}
	for _, s := range w.Strokes() {
		stroke := Stroke{Points: make([]Point, 0, s.Len())}
		for _, p := range s.Points() {
			stroke.Points = append(stroke.Points, fromPoint(p))
		}
		out.Strokes = append(out.Strokes, stroke)
	}
	return out
}

func fromPoint(p character.Point) Point {
	x, y := p.X, p.Y
	out := Point{X: &x, Y: &y}
	out.Pressure = floatPtr(p.Pressure)
	out.XTilt = floatPtr(p.XTilt)
	out.YTilt = floatPtr(p.YTilt)
	if p.Timestamp.Valid {
		ts := p.Timestamp.Int64
		out.Timestamp = &ts
	}
	return out
}

func floatPtr(v character.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

// Unmarshal parses a JSON document. A zero or missing width or height
// is rejected like in the markup form.
func Unmarshal(data []byte) (*character.Character, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, character.NewParseError(0, "", err)
	}
	return doc.Character()
}

// Character converts the document model to a character
func (doc *Document) Character() (*character.Character, error) {
	c := character.New()
	if doc.Label != nil {
		c.SetLabel(*doc.Label)
	}

	w, err := character.NewWritingSize(doc.Writing.Width, doc.Writing.Height)
	if err != nil {
		return nil, character.NewParseError(0, "writing", err)
	}
	for i, s := range doc.Writing.Strokes {
		if len(s.Points) == 0 {
			return nil, character.NewParseError(0, "strokes",
				errors.Wrapf(character.ErrInvalidValue, "stroke %d has no points", i))
		}
		for j, p := range s.Points {
			pt, err := p.point()
			if err != nil {
				return nil, character.NewParseError(0, "points",
					errors.Wrapf(err, "stroke %d point %d", i, j))
			}
			if j == 0 {
				w.BeginStroke(pt)
				continue
			}
			if err := w.ExtendCurrentStroke(pt); err != nil {
				return nil, err
			}
		}
	}
	if err := c.SetWriting(w); err != nil {
		return nil, err
	}
	return c, nil
}

func (p Point) point() (character.Point, error) {
	if p.X == nil || p.Y == nil {
		return character.Point{}, errors.New("missing coordinate")
	}
	out := character.Point{X: *p.X, Y: *p.Y}
	if p.Pressure != nil {
		out.Pressure = character.Float64(*p.Pressure)
	}
	if p.XTilt != nil {
		out.XTilt = character.Float64(*p.XTilt)
	}
	if p.YTilt != nil {
		out.YTilt = character.Float64(*p.YTilt)
	}
	if p.Timestamp != nil {
		out.Timestamp = character.Int64(*p.Timestamp)
	}
	return out, nil
}
