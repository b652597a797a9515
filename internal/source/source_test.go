package source

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/vanshika/campusdraw/internal/config"
	"github.com/vanshika/campusdraw/internal/graph"
	"github.com/vanshika/campusdraw/internal/logging"
)

func TestOpenHTTPSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/building-names" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"CSE":"Paul G. Allen Center"}`))
	}))
	defer srv.Close()

	cfg := config.Defaults()
	cfg.Upstream.BaseURL = srv.URL
	cfg.Upstream.Validate = true

	src, err := Open(context.Background(), logging.Discard(), cfg)
	if err != nil {
		t.Fatalf("expected source, got %v", err)
	}
	defer src.Close(context.Background())

	names, err := src.BuildingNames(context.Background())
	if err != nil {
		t.Fatalf("expected names, got %v", err)
	}
	if len(names) != 1 || names[0].ShortName != "CSE" {
		t.Fatalf("unexpected names %+v", names)
	}
	if err := src.Probe(context.Background()); err != nil {
		t.Fatalf("expected probe to pass, got %v", err)
	}
}

func TestOpenGraphRequiresURI(t *testing.T) {
	cfg := config.Defaults()
	cfg.Upstream.PathSource = config.SourceGraph

	_, err := Open(context.Background(), logging.Discard(), cfg)
	if !errors.Is(err, graph.ErrMissingURI) {
		t.Fatalf("expected ErrMissingURI, got %v", err)
	}
}

func TestOpenUnknownSource(t *testing.T) {
	cfg := config.Defaults()
	cfg.Upstream.PathSource = "carrier-pigeon"

	if _, err := Open(context.Background(), logging.Discard(), cfg); err == nil {
		t.Fatalf("expected error for unknown source")
	}
}

func TestOpenGraphRejectsUnsupportedScheme(t *testing.T) {
	_, err := OpenGraph(context.Background(), logging.Discard(), config.GraphConfig{URI: "ftp://graph.invalid:7687"})
	if err == nil {
		t.Fatalf("expected driver creation to fail")
	}
}
