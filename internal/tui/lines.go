package tui

import (
	"context"
	"errors"

	"github.com/vanshika/campusdraw/internal/lines"
	"github.com/vanshika/campusdraw/internal/service"
)

// Lines menu entries.
const (
	MenuEdit = "Edit lines"
)

var linesMenu = []string{MenuEdit, MenuDraw, MenuClear, MenuQuit}

// LinesForm is the terminal rendition of the line-drawing form.
type LinesForm struct {
	Driver  PromptDriver
	Session *service.LinesSession
	Surface Surface

	text string
}

// Run loops over the menu until Quit or interrupt.
func (f *LinesForm) Run(ctx context.Context) error {
	for {
		idx, err := f.Driver.Select(ctx, SelectConfig{Message: "Edges", Options: linesMenu})
		if err != nil {
			if errors.Is(err, ErrAborted) {
				return nil
			}
			return err
		}
		if idx < 0 || idx >= len(linesMenu) {
			continue
		}

		switch linesMenu[idx] {
		case MenuEdit:
			text, err := f.Driver.TextArea(ctx, TextAreaConfig{
				Message: "Lines (x1 y1 x2 y2 color)",
				Default: f.text,
				Help:    "One line per row, coordinates between 0 and 4000.",
			})
			if err != nil && !errors.Is(err, ErrAborted) {
				return err
			}
			if err == nil {
				f.text = text
			}
		case MenuDraw:
			segments := f.Session.Draw(f.text)
			if len(segments) > 0 {
				// Rejected text is kept as typed so it can be corrected.
				f.text = lines.Format(segments)
			}
			if err := f.Surface.Draw(segments); err != nil {
				return err
			}
		case MenuClear:
			f.text = ""
			f.Session.Clear()
			if err := f.Surface.Draw(f.Session.Snapshot().Segments); err != nil {
				return err
			}
		case MenuQuit:
			return nil
		}
	}
}
