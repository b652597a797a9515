package render

import (
	"image/color"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

var colorPattern = regexp.MustCompile(`^(#[0-9a-fA-F]{3}|#[0-9a-fA-F]{6}|[a-zA-Z]+)$`)

// ParseColor resolves a CSS colour name or #rgb/#rrggbb value.
func ParseColor(raw string) (color.RGBA, bool) {
	name := strings.ToLower(strings.TrimSpace(raw))
	if name == "" {
		return color.RGBA{}, false
	}
	if c, ok := colornames.Map[name]; ok {
		return c, true
	}
	if !strings.HasPrefix(name, "#") {
		return color.RGBA{}, false
	}

	hex := name[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, false
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, true
}

func strokeFor(raw, fallback string) string {
	if colorPattern.MatchString(raw) {
		return raw
	}
	return fallback
}
