package markup

import (
	"bytes"
	"encoding/xml"
	"io"
	"strconv"

	"github.com/juruen/tegaki/character"
)

// Header is the XML declaration written at the top of every document
const Header = `<?xml version="1.0" encoding="UTF-8"?>`

const indent = "  "

// Marshal returns the markup document of c
func Marshal(c *character.Character) ([]byte, error) {
	w := new(writer)
	w.writeCharacter(c)
	return w.Bytes(), nil
}

// MarshalWriting returns the width, height and strokes elements of w,
// without a document header.
func MarshalWriting(wr *character.Writing) []byte {
	w := new(writer)
	w.writeWriting(wr, 0)
	return w.Bytes()
}

// MarshalStroke returns a single stroke element
func MarshalStroke(s *character.Stroke) []byte {
	w := new(writer)
	w.writeStroke(s, 0)
	return w.Bytes()
}

// MarshalPoint returns a single point element
func MarshalPoint(p character.Point) []byte {
	w := new(writer)
	w.writePoint(p, 0)
	return w.Bytes()
}

// Encoder writes markup documents to an output stream.
type Encoder struct {
	w io.Writer
}

func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode writes the document of c
func (e *Encoder) Encode(c *character.Character) error {
	data, err := Marshal(c)
	if err != nil {
		return err
	}
	_, err = e.w.Write(data)
	return err
}

type writer struct {
	b bytes.Buffer
}

func (w *writer) Bytes() []byte {
	return w.b.Bytes()
}

func (w *writer) writeIndent(depth int) {
	for i := 0; i < depth; i++ {
		w.b.WriteString(indent)
	}
}

func (w *writer) writeCharacter(c *character.Character) {
	w.b.WriteString(Header)
	w.b.WriteByte('\n')
	w.b.WriteString("<" + elemCharacter + ">\n")

	if label, ok := c.Label(); ok {
		w.writeIndent(1)
		w.b.WriteString("<" + elemLabel + ">")
		// bytes.Buffer writes never fail
		_ = xml.EscapeText(&w.b, []byte(label))
		w.b.WriteString("</" + elemLabel + ">\n")
	}

	w.writeWriting(c.Writing(), 1)
	w.b.WriteString("</" + elemCharacter + ">")
}

func (w *writer) writeNumber(depth int, name string, n int) {
	w.writeIndent(depth)
	w.b.WriteString("<" + name + ">")
	w.b.WriteString(strconv.Itoa(n))
	w.b.WriteString("</" + name + ">\n")
}

func (w *writer) writeWriting(wr *character.Writing, depth int) {
	w.writeNumber(depth, elemWidth, wr.Width())
	w.writeNumber(depth, elemHeight, wr.Height())

	w.writeIndent(depth)
	w.b.WriteString("<" + elemStrokes + ">\n")
	for _, s := range wr.Strokes() {
		w.writeStroke(s, depth+1)
	}
	w.writeIndent(depth)
	w.b.WriteString("</" + elemStrokes + ">\n")
}

func (w *writer) writeStroke(s *character.Stroke, depth int) {
	w.writeIndent(depth)
	w.b.WriteString("<" + elemStroke + ">\n")
	for _, p := range s.Points() {
		w.writePoint(p, depth+1)
	}
	w.writeIndent(depth)
	w.b.WriteString("</" + elemStroke + ">\n")
}

func (w *writer) writePoint(p character.Point, depth int) {
	w.writeIndent(depth)
	w.b.WriteString("<" + elemPoint)

	w.writeAttr(attrX, strconv.Itoa(p.X))
	w.writeAttr(attrY, strconv.Itoa(p.Y))
	w.writeFloatAttr(attrPressure, p.Pressure)
	w.writeFloatAttr(attrXTilt, p.XTilt)
	w.writeFloatAttr(attrYTilt, p.YTilt)
	if p.Timestamp.Valid {
		w.writeAttr(attrTimestamp, strconv.FormatInt(p.Timestamp.Int64, 10))
	}

	w.b.WriteString(" />\n")
}

func (w *writer) writeFloatAttr(name string, v character.NullFloat64) {
	if v.Valid {
		w.writeAttr(name, strconv.FormatFloat(v.Float64, 'g', -1, 64))
	}
}

func (w *writer) writeAttr(name, value string) {
	w.b.WriteByte(' ')
	w.b.WriteString(name)
	w.b.WriteString(`="`)
	w.b.WriteString(value)
	w.b.WriteByte('"')
}
