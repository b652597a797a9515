package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/vanshika/campusdraw/internal/service"
)

// Campus menu entries.
const (
	MenuStart = "Choose start"
	MenuEnd   = "Choose end"
	MenuDraw  = "Draw"
	MenuClear = "Clear"
	MenuQuit  = "Quit"
)

var campusMenu = []string{MenuStart, MenuEnd, MenuDraw, MenuClear, MenuQuit}

// CampusForm is the terminal rendition of the campus path form.
type CampusForm struct {
	Driver  PromptDriver
	Session *service.CampusSession
	Surface Surface
}

// Run mounts the session and loops over the menu until Quit or interrupt.
func (f *CampusForm) Run(ctx context.Context) error {
	f.Session.Mount(ctx)

	for {
		view := f.Session.Snapshot()
		idx, err := f.Driver.Select(ctx, SelectConfig{
			Message: fmt.Sprintf("start: %s  end: %s", orDash(view.Start), orDash(view.End)),
			Options: campusMenu,
		})
		if err != nil {
			if errors.Is(err, ErrAborted) {
				return nil
			}
			return err
		}
		if idx < 0 || idx >= len(campusMenu) {
			continue
		}

		switch campusMenu[idx] {
		case MenuStart:
			if name, ok, err := f.chooseBuilding(ctx, "Choose first building", view.Start); err != nil {
				return err
			} else if ok {
				f.Session.SelectStart(name)
			}
		case MenuEnd:
			if name, ok, err := f.chooseBuilding(ctx, "Choose second building", view.End); err != nil {
				return err
			} else if ok {
				f.Session.SelectEnd(name)
			}
		case MenuDraw:
			f.Session.Draw(ctx)
			if err := f.Surface.Draw(f.Session.Snapshot().Segments); err != nil {
				return err
			}
		case MenuClear:
			f.Session.Clear()
			if err := f.Surface.Draw(f.Session.Snapshot().Segments); err != nil {
				return err
			}
		case MenuQuit:
			return nil
		}
	}
}

func (f *CampusForm) chooseBuilding(ctx context.Context, message, current string) (string, bool, error) {
	buildings := f.Session.Snapshot().Buildings
	if len(buildings) == 0 {
		return "", false, nil
	}

	options := make([]string, len(buildings))
	def := -1
	for i, b := range buildings {
		options[i] = fmt.Sprintf("%s (%s)", b.LongName, b.ShortName)
		if b.ShortName == current {
			def = i
		}
	}

	idx, err := f.Driver.Select(ctx, SelectConfig{
		Message:      message,
		Options:      options,
		DefaultIndex: def,
		PageSize:     15,
	})
	if err != nil {
		if errors.Is(err, ErrAborted) {
			return "", false, nil
		}
		return "", false, err
	}
	if idx < 0 || idx >= len(buildings) {
		return "", false, nil
	}
	return buildings[idx].ShortName, true, nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
