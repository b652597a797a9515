package render

import "github.com/vanshika/campusdraw/internal/domain"

// Options controls how the drawing surface is rendered.
type Options struct {
	// Size of the surface in map units. Defaults to the coordinate bound.
	Size float64
	// Scale maps map units to PNG pixels.
	Scale float64
	// StrokeWidth in map units.
	StrokeWidth float64
	// DefaultColor is used for segments without a usable colour.
	DefaultColor string
	// Background fills the PNG and sits behind the SVG lines. Empty means transparent.
	Background string
}

// DefaultOptions returns the settings used by the web pages.
func DefaultOptions() Options {
	return Options{
		Size:         domain.MaxCoordinate,
		Scale:        0.25,
		StrokeWidth:  15,
		DefaultColor: "black",
		Background:   "white",
	}
}

func (o Options) normalized() Options {
	def := DefaultOptions()
	if o.Size <= 0 {
		o.Size = def.Size
	}
	if o.Scale <= 0 {
		o.Scale = def.Scale
	}
	if o.StrokeWidth <= 0 {
		o.StrokeWidth = def.StrokeWidth
	}
	if o.DefaultColor == "" {
		o.DefaultColor = def.DefaultColor
	}
	return o
}
