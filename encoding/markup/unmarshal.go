package markup

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/pkg/errors"
	"golang.org/x/text/encoding/ianaindex"

	"github.com/juruen/tegaki/character"
	"github.com/juruen/tegaki/log"
)

// Unmarshal parses a markup document. On error no character is returned.
func Unmarshal(data []byte) (*character.Character, error) {
	return NewDecoder(bytes.NewReader(data)).Decode()
}

// Decoder reads one markup document from an input stream.
type Decoder struct {
	d *xml.Decoder
}

func NewDecoder(r io.Reader) *Decoder {
	d := xml.NewDecoder(r)
	d.CharsetReader = charsetReader
	return &Decoder{d: d}
}

// Decode reads tokens until the root element is closed and returns the
// character it describes. Input after the root element is not read.
func (dec *Decoder) Decode() (*character.Character, error) {
	p := &parser{
		d:     dec.d,
		stack: arraystack.New(),
		char:  character.New(),
	}
	c, err := p.run()
	if err != nil {
		return nil, err
	}
	return c, nil
}

func charsetReader(label string, input io.Reader) (io.Reader, error) {
	enc, err := ianaindex.IANA.Encoding(label)
	if err != nil {
		return nil, err
	}
	if enc == nil {
		return nil, fmt.Errorf("unsupported charset %q", label)
	}
	return enc.NewDecoder().Reader(input), nil
}

// parser is the state of one parse. The state stack holds one entry per
// open recognized element; the top entry is the current state.
type parser struct {
	d     *xml.Decoder
	stack *arraystack.Stack
	text  strings.Builder

	// points of the stroke element being read
	stroke []character.Point

	char *character.Character
}

func (p *parser) current() state {
	v, ok := p.stack.Peek()
	if !ok {
		return stateIdle
	}
	return v.(state)
}

func (p *parser) run() (*character.Character, error) {
	for {
		tok, err := p.d.Token()
		if err == io.EOF {
			return nil, p.errorf("", "unexpected end of document in %s", p.current())
		}
		if err != nil {
			return nil, character.NewParseError(p.d.InputOffset(), "", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if err := p.startElement(t); err != nil {
				return nil, err
			}
		case xml.EndElement:
			done, err := p.endElement(t)
			if err != nil {
				return nil, err
			}
			if done {
				return p.char, nil
			}
		case xml.CharData:
			switch p.current() {
			case stateLabel, stateWidth, stateHeight:
				p.text.Write(t)
			}
		}
	}
}

func (p *parser) startElement(t xml.StartElement) error {
	name := t.Name.Local
	cur := p.current()

	next, ok := transitions[cur][name]
	if !ok {
		if known[name] {
			return p.errorf(name, "unexpected element in %s", cur)
		}
		log.Trace.Printf("markup: skipping unknown element <%s> in %s", name, cur)
		return p.skip(name)
	}

	switch next {
	case stateLabel, stateWidth, stateHeight:
		p.text.Reset()
	case stateStroke:
		p.stroke = nil
	case statePoint:
		pt, err := p.point(t)
		if err != nil {
			return err
		}
		p.stroke = append(p.stroke, pt)
		return p.skip(name)
	}

	p.stack.Push(next)
	return nil
}

func (p *parser) endElement(t xml.EndElement) (done bool, err error) {
	name := t.Name.Local
	v, ok := p.stack.Pop()
	if !ok {
		return false, p.errorf(name, "unbalanced end element")
	}

	w := p.char.Writing()
	switch v.(state) {
	case stateLabel:
		p.char.SetLabel(p.text.String())
	case stateWidth:
		n, err := p.dimension(name)
		if err != nil {
			return false, err
		}
		if err := w.SetWidth(n); err != nil {
			return false, p.wrap(name, err)
		}
	case stateHeight:
		n, err := p.dimension(name)
		if err != nil {
			return false, err
		}
		if err := w.SetHeight(n); err != nil {
			return false, p.wrap(name, err)
		}
	case stateStroke:
		if len(p.stroke) == 0 {
			return false, p.wrap(name, errors.Wrap(character.ErrInvalidValue, "stroke has no points"))
		}
		if err := w.AppendStroke(character.NewStroke(p.stroke[0], p.stroke[1:]...)); err != nil {
			return false, p.wrap(name, err)
		}
		p.stroke = nil
	case stateCharacter:
		return true, nil
	}
	return false, nil
}

func (p *parser) dimension(name string) (int, error) {
	s := strings.TrimSpace(p.text.String())
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, p.wrap(name, errors.Wrapf(err, "invalid %s %q", name, s))
	}
	return n, nil
}

func (p *parser) point(t xml.StartElement) (character.Point, error) {
	var (
		pt         character.Point
		hasX, hasY bool
		err        error
	)
	for _, a := range t.Attr {
		v := strings.TrimSpace(a.Value)
		switch a.Name.Local {
		case attrX:
			pt.X, err = strconv.Atoi(v)
			hasX = true
		case attrY:
			pt.Y, err = strconv.Atoi(v)
			hasY = true
		case attrPressure:
			pt.Pressure, err = parseFloat(v)
		case attrXTilt:
			pt.XTilt, err = parseFloat(v)
		case attrYTilt:
			pt.YTilt, err = parseFloat(v)
		case attrTimestamp:
			var n int64
			n, err = strconv.ParseInt(v, 10, 64)
			pt.Timestamp = character.Int64(n)
		}
		if err != nil {
			return pt, p.wrap(elemPoint, errors.Wrapf(err, "invalid attribute %s=%q", a.Name.Local, a.Value))
		}
	}
	if !hasX || !hasY {
		return pt, p.errorf(elemPoint, "missing coordinate attribute")
	}
	return pt, nil
}

func parseFloat(s string) (character.NullFloat64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return character.NullFloat64{}, err
	}
	return character.Float64(f), nil
}

func (p *parser) skip(name string) error {
	if err := p.d.Skip(); err != nil {
		return p.wrap(name, err)
	}
	return nil
}

func (p *parser) wrap(element string, err error) error {
	return character.NewParseError(p.d.InputOffset(), element, err)
}

func (p *parser) errorf(element, format string, args ...interface{}) error {
	return p.wrap(element, errors.Errorf(format, args...))
}
