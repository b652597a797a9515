// Package render draws segment lists. It has no validation or network logic
// and tolerates an empty list.
package render

import (
	"fmt"
	"html"
	"strconv"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/vanshika/campusdraw/internal/domain"
)

var (
	svgPolicyOnce sync.Once
	svgPolicy     *bluemonday.Policy
)

// SVG renders the segments as an inline <svg> element.
func SVG(segments []domain.Segment, opts Options) string {
	opts = opts.normalized()
	size := formatNumber(opts.Size)

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" class="draw-surface" role="img">`, size, size)
	if bg := strokeFor(opts.Background, ""); bg != "" {
		fmt.Fprintf(&b, `<rect x="0" y="0" width="%s" height="%s" fill="%s"></rect>`, size, size, bg)
	}
	fmt.Fprintf(&b, `<g stroke="%s" stroke-width="%s" stroke-linecap="round">`,
		html.EscapeString(strokeFor(opts.DefaultColor, "black")), formatNumber(opts.StrokeWidth))
	for _, seg := range segments {
		fmt.Fprintf(&b, `<line x1="%s" y1="%s" x2="%s" y2="%s"`,
			formatNumber(seg.X1), formatNumber(seg.Y1), formatNumber(seg.X2), formatNumber(seg.Y2))
		if seg.Color != "" {
			fmt.Fprintf(&b, ` stroke="%s"`, html.EscapeString(seg.Color))
		}
		b.WriteString(`></line>`)
	}
	b.WriteString(`</g></svg>`)

	return sanitizer().Sanitize(b.String())
}

func sanitizer() *bluemonday.Policy {
	svgPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("svg", "g", "line", "rect")
		policy.AllowAttrs("xmlns", "viewBox", "class", "role").OnElements("svg")
		policy.AllowAttrs("stroke").Matching(colorPattern).OnElements("g", "line")
		policy.AllowAttrs("fill").Matching(colorPattern).OnElements("rect")
		policy.AllowAttrs("stroke-width", "stroke-linecap").OnElements("g")
		policy.AllowAttrs("x1", "y1", "x2", "y2").Matching(bluemonday.Number).OnElements("line")
		policy.AllowAttrs("x", "y", "width", "height").Matching(bluemonday.Number).OnElements("rect")
		svgPolicy = policy
	})
	return svgPolicy
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
