package server

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/flosch/pongo2/v6"

	"github.com/vanshika/campusdraw/internal/lines"
	"github.com/vanshika/campusdraw/internal/notify"
	"github.com/vanshika/campusdraw/internal/render"
	"github.com/vanshika/campusdraw/internal/service"
)

const (
	actionDraw  = "draw"
	actionClear = "clear"
)

// PageHandlers serves the two HTML front ends. The line form is stateless;
// the campus form keeps one session per visitor.
type PageHandlers struct {
	logger    *slog.Logger
	templates *Templates
	surface   render.Options
	campus    *campusSessions
}

// NewPageHandlers constructs the page handlers.
func NewPageHandlers(logger *slog.Logger, source service.PathSource, templates *Templates) *PageHandlers {
	h := &PageHandlers{
		logger:    logger,
		templates: templates,
		surface:   render.DefaultOptions(),
	}
	h.campus = newCampusSessions(func(n notify.Notifier) *service.CampusSession {
		return service.NewCampusSession(source, notify.Tee(n, notify.LogNotifier{Logger: logger}))
	})
	return h
}

func (h *PageHandlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}
	h.renderPage(w, "index.html", pongo2.Context{})
}

func (h *PageHandlers) handleLines(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodPost {
		methodNotAllowed(w, http.MethodGet, http.MethodPost)
		return
	}

	rec := notify.NewRecorder()
	session := service.NewLinesSession(rec)
	input := r.FormValue("input")

	if r.FormValue("action") == actionClear {
		session.Clear()
	} else if input != "" {
		session.Draw(input)
	}

	view := session.Snapshot()
	h.renderPage(w, "lines.html", pongo2.Context{
		"alerts":   rec.Alerts(),
		"input":    view.Input,
		"segments": view.Segments,
		"surface":  render.SVG(view.Segments, h.surface),
	})
}

func (h *PageHandlers) handleLinesPNG(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}

	segments, err := lines.Validate(r.URL.Query().Get("input"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var buf bytes.Buffer
	if err := render.PNG(&buf, segments, h.surface); err != nil {
		h.logger.Error("render png failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to render image")
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func (h *PageHandlers) handleCampus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodPost {
		methodNotAllowed(w, http.MethodGet, http.MethodPost)
		return
	}

	visit, fresh := h.campus.visit(w, r)
	session := visit.session
	action := r.FormValue("action")

	// The directory is fetched when the session starts. A failed fetch is
	// retried on a plain page view, never as a side effect of Draw or Clear.
	if fresh || (action == "" && len(session.Snapshot().Buildings) == 0) {
		session.Mount(r.Context())
	}

	switch action {
	case actionClear:
		session.Clear()
	default:
		session.SelectStart(r.FormValue("start"))
		session.SelectEnd(r.FormValue("end"))
		if action == actionDraw {
			session.Draw(r.Context())
		}
	}

	view := session.Snapshot()
	h.renderPage(w, "campus.html", pongo2.Context{
		"alerts":    visit.alerts.Drain(),
		"buildings": view.Buildings,
		"start":     view.Start,
		"end":       view.End,
		"segments":  view.Segments,
		"cost":      view.Cost,
		"surface":   render.SVG(view.Segments, h.surface),
	})
}

func (h *PageHandlers) renderPage(w http.ResponseWriter, name string, data pongo2.Context) {
	var buf bytes.Buffer
	if err := h.templates.Render(&buf, name, data); err != nil {
		h.logger.Error("render page failed", "page", name, "error", err)
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
