package server

import (
	"embed"
	"fmt"
	"io"
	"io/fs"

	"github.com/flosch/pongo2/v6"
)

//go:embed templates/*.html
var templateFiles embed.FS

var pageNames = []string{"index.html", "lines.html", "campus.html"}

// Templates holds the parsed page templates.
type Templates struct {
	pages map[string]*pongo2.Template
}

// LoadTemplates parses every page template from the embedded filesystem.
func LoadTemplates() (*Templates, error) {
	sub, err := fs.Sub(templateFiles, "templates")
	if err != nil {
		return nil, fmt.Errorf("templates: sub fs: %w", err)
	}
	set := pongo2.NewSet("campusdraw", pongo2.NewFSLoader(sub))

	pages := make(map[string]*pongo2.Template, len(pageNames))
	for _, name := range pageNames {
		tpl, err := set.FromFile(name)
		if err != nil {
			return nil, fmt.Errorf("templates: parse %s: %w", name, err)
		}
		pages[name] = tpl
	}
	return &Templates{pages: pages}, nil
}

// Render executes the named page into w.
func (t *Templates) Render(w io.Writer, name string, data pongo2.Context) error {
	tpl, ok := t.pages[name]
	if !ok {
		return fmt.Errorf("templates: unknown page %q", name)
	}
	if data == nil {
		data = pongo2.Context{}
	}
	if _, ok := data["alerts"]; !ok {
		data["alerts"] = []string{}
	}
	return tpl.ExecuteWriter(data, w)
}
