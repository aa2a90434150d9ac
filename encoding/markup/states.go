// Package markup reads and writes the XML form of a character:
//
//	<?xml version="1.0" encoding="UTF-8"?>
//	<character>
//	  <utf8>A</utf8>
//	  <width>1000</width>
//	  <height>1000</height>
//	  <strokes>
//	    <stroke>
//	      <point x="0" y="0" pressure="0.5" timestamp="0" />
//	    </stroke>
//	  </strokes>
//	</character>
//
// Unknown elements are skipped when reading.
package markup

const (
	elemCharacter = "character"
	elemLabel     = "utf8"
	elemWidth     = "width"
	elemHeight    = "height"
	elemStrokes   = "strokes"
	elemStroke    = "stroke"
	elemPoint     = "point"
)

const (
	attrX         = "x"
	attrY         = "y"
	attrPressure  = "pressure"
	attrXTilt     = "xtilt"
	attrYTilt     = "ytilt"
	attrTimestamp = "timestamp"
)

type state int

const (
	stateIdle state = iota
	stateCharacter
	stateLabel
	stateWidth
	stateHeight
	stateStrokes
	stateStroke
	// point elements are consumed on entry and never become current
	statePoint
)

func (s state) String() string {
	switch s {
	case stateIdle:
		return "document"
	case stateCharacter:
		return "<" + elemCharacter + ">"
	case stateLabel:
		return "<" + elemLabel + ">"
	case stateWidth:
		return "<" + elemWidth + ">"
	case stateHeight:
		return "<" + elemHeight + ">"
	case stateStrokes:
		return "<" + elemStrokes + ">"
	case stateStroke:
		return "<" + elemStroke + ">"
	case statePoint:
		return "<" + elemPoint + ">"
	default:
		return "unknown"
	}
}

// transitions maps the current state and the name of a starting element
// to the state it enters.
var transitions = map[state]map[string]state{
	stateIdle: {
		elemCharacter: stateCharacter,
	},
	stateCharacter: {
		elemLabel:   stateLabel,
		elemWidth:   stateWidth,
		elemHeight:  stateHeight,
		elemStrokes: stateStrokes,
	},
	stateStrokes: {
		elemStroke: stateStroke,
	},
	stateStroke: {
		elemPoint: statePoint,
	},
}

// known elements are rejected outside of their place in transitions;
// anything else is skipped.
var known = map[string]bool{
	elemCharacter: true,
	elemLabel:     true,
	elemWidth:     true,
	elemHeight:    true,
	elemStrokes:   true,
	elemStroke:    true,
	elemPoint:     true,
}
