package render

import (
	"bytes"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/vanshika/campusdraw/internal/domain"
)

func TestSVGDrawsOneLinePerSegment(t *testing.T) {
	segments := []domain.Segment{
		{X1: 10, Y1: 10, X2: 20, Y2: 20, Color: "red", Key: 0},
		{X1: 0, Y1: 0, X2: 4000, Y2: 4000, Color: "#00ff00", Key: 1},
	}
	out := SVG(segments, DefaultOptions())

	if got := strings.Count(out, "<line"); got != 2 {
		t.Fatalf("expected 2 lines, got %d in %s", got, out)
	}
	for _, want := range []string{`x1="10"`, `y2="4000"`, `stroke="red"`, `stroke="#00ff00"`} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %s in %s", want, out)
		}
	}
}

func TestSVGEmptyList(t *testing.T) {
	out := SVG(nil, Options{})
	if !strings.HasPrefix(out, "<svg") || !strings.HasSuffix(out, "</svg>") {
		t.Fatalf("expected an svg element, got %s", out)
	}
	if strings.Contains(out, "<line") {
		t.Fatalf("expected no lines, got %s", out)
	}
}

func TestSVGDropsUnsafeColours(t *testing.T) {
	segments := []domain.Segment{{X1: 1, Y1: 1, X2: 2, Y2: 2, Color: `red"><script>alert(1)</script>`}}
	out := SVG(segments, DefaultOptions())

	if strings.Contains(out, "<script") || strings.Contains(out, "alert(1)") {
		t.Fatalf("unsafe markup leaked into %s", out)
	}
	if strings.Count(out, "<line") != 1 {
		t.Fatalf("expected the line to survive without its colour, got %s", out)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
		ok   bool
	}{
		{in: "red", want: color.RGBA{R: 0xff, A: 0xff}, ok: true},
		{in: "Blue", want: color.RGBA{B: 0xff, A: 0xff}, ok: true},
		{in: "#0f0", want: color.RGBA{G: 0xff, A: 0xff}, ok: true},
		{in: "#102030", want: color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}, ok: true},
		{in: "notacolour", ok: false},
		{in: "#12", ok: false},
		{in: "", ok: false},
	}
	for _, tt := range tests {
		got, ok := ParseColor(tt.in)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("ParseColor(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestRasterPaintsSegmentColour(t *testing.T) {
	opts := Options{Size: 100, Scale: 1, StrokeWidth: 4, Background: "white"}
	img := Raster([]domain.Segment{{X1: 10, Y1: 50, X2: 90, Y2: 50, Color: "red"}}, opts)

	if img.Bounds().Dx() != 100 {
		t.Fatalf("expected 100px wide image, got %d", img.Bounds().Dx())
	}
	if got := img.RGBAAt(50, 50); got != (color.RGBA{R: 0xff, A: 0xff}) {
		t.Fatalf("expected red on the line, got %v", got)
	}
	if got := img.RGBAAt(50, 10); got != (color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}) {
		t.Fatalf("expected white background, got %v", got)
	}
}

func TestPNGEncodesEmptySurface(t *testing.T) {
	var buf bytes.Buffer
	if err := PNG(&buf, nil, Options{Size: 40, Scale: 1}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	if img.Bounds().Dx() != 40 || img.Bounds().Dy() != 40 {
		t.Fatalf("unexpected bounds %v", img.Bounds())
	}
}
