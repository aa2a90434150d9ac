// Package character models a handwritten glyph: a label and the pen
// strokes that draw it.
//
// A Writing is built stroke by stroke:
//
//	w := character.NewWriting()
//	w.BeginStroke(character.Pt(0, 0))
//	w.ExtendCurrentStroke(character.Pt(5, 5))
//
// Resize, MoveRel and Normalize never modify their receiver. None of the
// types here are safe for concurrent mutation.
package character

import (
	"fmt"

	"github.com/pkg/errors"
)

// Character is a label paired with its writing.
type Character struct {
	label    string
	hasLabel bool
	writing  *Writing
}

// New returns a character without label and with an empty writing.
func New() *Character {
	return &Character{writing: NewWriting()}
}

// Label returns the label and whether one is set.
func (c *Character) Label() (string, bool) {
	return c.label, c.hasLabel
}

func (c *Character) SetLabel(label string) {
	c.label = label
	c.hasLabel = true
}

// ClearLabel makes the label absent
func (c *Character) ClearLabel() {
	c.label = ""
	c.hasLabel = false
}

// Writing returns the writing owned by c. Changes to it change c.
func (c *Character) Writing() *Writing {
	return c.writing
}

// SetWriting replaces the writing with a copy of w.
func (c *Character) SetWriting(w *Writing) error {
	if w == nil {
		return errors.Wrap(ErrInvalidValue, "nil writing")
	}
	c.writing = w.Copy()
	return nil
}

// Equal reports whether both characters have the same label and equal
// writings.
func (c *Character) Equal(o *Character) bool {
	if c.hasLabel != o.hasLabel || c.label != o.label {
		return false
	}
	return c.writing.Equal(o.writing)
}

func (c *Character) String() string {
	label := "<none>"
	if c.hasLabel {
		label = fmt.Sprintf("%q", c.label)
	}
	return fmt.Sprintf("%s %s", label, c.writing)
}
