package domain

// Drawing surface bounds shared by the line parser and the renderer.
const (
	MinCoordinate = 0
	MaxCoordinate = 4000
)

// Segment is a single drawable line with two endpoints and a colour.
type Segment struct {
	X1    float64 `json:"x1"`
	Y1    float64 `json:"y1"`
	X2    float64 `json:"x2"`
	Y2    float64 `json:"y2"`
	Color string  `json:"color,omitempty"`
	Key   int     `json:"key"`
}

// InBounds reports whether a coordinate lies on the drawing surface.
func InBounds(v float64) bool {
	return v >= MinCoordinate && v <= MaxCoordinate
}

// CloneSegments returns a copy of the provided slice. A nil input yields an
// empty, non-nil slice so JSON encodes it as [].
func CloneSegments(src []Segment) []Segment {
	out := make([]Segment, len(src))
	copy(out, src)
	return out
}
