package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"

	"github.com/vanshika/campusdraw/internal/domain"
)

// Raster draws the segments into an RGBA image.
func Raster(segments []domain.Segment, opts Options) *image.RGBA {
	opts = opts.normalized()
	side := int(math.Ceil(opts.Size * opts.Scale))
	if side < 1 {
		side = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, side, side))
	if bg, ok := ParseColor(opts.Background); ok {
		draw.Draw(dst, dst.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	}

	fallback, ok := ParseColor(opts.DefaultColor)
	if !ok {
		fallback = color.RGBA{A: 0xff}
	}
	half := math.Max(opts.StrokeWidth*opts.Scale/2, 0.5)

	z := vector.NewRasterizer(side, side)
	for _, seg := range segments {
		c, ok := ParseColor(seg.Color)
		if !ok {
			c = fallback
		}
		z.Reset(side, side)
		strokeSegment(z, seg, opts.Scale, half)
		z.Draw(dst, dst.Bounds(), image.NewUniform(c), image.Point{})
	}
	return dst
}

// PNG encodes the raster of the segments to w.
func PNG(w io.Writer, segments []domain.Segment, opts Options) error {
	if err := png.Encode(w, Raster(segments, opts)); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// strokeSegment adds a rectangle of half-width half around the segment. A zero
// length segment becomes a square dot.
func strokeSegment(z *vector.Rasterizer, seg domain.Segment, scale, half float64) {
	x1, y1 := seg.X1*scale, seg.Y1*scale
	x2, y2 := seg.X2*scale, seg.Y2*scale

	dx, dy := x2-x1, y2-y1
	length := math.Hypot(dx, dy)
	var nx, ny, ex, ey float64
	if length == 0 {
		nx, ny = 0, half
		ex, ey = half, 0
	} else {
		nx, ny = -dy/length*half, dx/length*half
		ex, ey = dx/length*half, dy/length*half
	}

	z.MoveTo(float32(x1-ex+nx), float32(y1-ey+ny))
	z.LineTo(float32(x2+ex+nx), float32(y2+ey+ny))
	z.LineTo(float32(x2+ex-nx), float32(y2+ey-ny))
	z.LineTo(float32(x1-ex-nx), float32(y1-ey-ny))
	z.ClosePath()
}
