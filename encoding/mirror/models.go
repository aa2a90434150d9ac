package mirror

// Document is the top level object
type Document struct {
	Label   *string `json:"utf8,omitempty"`
	Writing Writing `json:"writing"`
}

// Writing holds the canvas size and the strokes
type Writing struct {
	Width   int      `json:"width"`
	Height  int      `json:"height"`
	Strokes []Stroke `json:"strokes"`
}

// Stroke represents a single stroke
type Stroke struct {
	Points []Point `json:"points"`
}

// Point only carries the keys whose values are present. X and Y are
// required when decoding.
type Point struct {
	X         *int     `json:"x"`
	Y         *int     `json:"y"`
	Pressure  *float64 `json:"pressure,omitempty"`
	XTilt     *float64 `json:"xtilt,omitempty"`
	YTilt     *float64 `json:"ytilt,omitempty"`
	Timestamp *int64   `json:"timestamp,omitempty"`
}
