package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/vanshika/campusdraw/internal/domain"
	"github.com/vanshika/campusdraw/internal/render"
)

// Surface writes the current render list somewhere the user can look at it.
type Surface interface {
	Draw(segments []domain.Segment) error
}

// FileSurface writes an SVG or PNG file, chosen by the file extension.
type FileSurface struct {
	Path    string
	Options render.Options
}

func (s FileSurface) Draw(segments []domain.Segment) (err error) {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	file, err := os.Create(s.Path)
	if err != nil {
		return fmt.Errorf("open %s: %w", s.Path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", s.Path, cerr)
		}
	}()

	if strings.EqualFold(filepath.Ext(s.Path), ".png") {
		return render.PNG(file, segments, s.Options)
	}
	_, err = io.WriteString(file, render.SVG(segments, s.Options))
	return err
}

// ListSurface prints one row per segment.
type ListSurface struct {
	Out io.Writer
}

func (s ListSurface) Draw(segments []domain.Segment) error {
	if len(segments) == 0 {
		_, err := fmt.Fprintln(s.Out, "(nothing to draw)")
		return err
	}
	for _, seg := range segments {
		color := seg.Color
		if color == "" {
			color = "-"
		}
		if _, err := fmt.Fprintf(s.Out, "%3d  (%g, %g) -> (%g, %g)  %s\n", seg.Key, seg.X1, seg.Y1, seg.X2, seg.Y2, color); err != nil {
			return err
		}
	}
	return nil
}

// Surfaces draws on every surface in turn.
type Surfaces []Surface

func (s Surfaces) Draw(segments []domain.Segment) error {
	for _, surface := range s {
		if err := surface.Draw(segments); err != nil {
			return err
		}
	}
	return nil
}
