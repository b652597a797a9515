package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"CONFIG_FILE", "SERVER_HOST", "SERVER_PORT", "SERVER_ALLOWED_ORIGINS", "UPSTREAM_TIMEOUT",
		"PATH_SOURCE", "UPSTREAM_BASE_URL", "UPSTREAM_VALIDATE", "GRAPH_URI", "LOG_LEVEL", "LOG_FORMAT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if diff := cmp.Diff(Defaults(), cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
	if cfg.Upstream.Timeout != 0 {
		t.Fatalf("upstream requests must be unbounded by default")
	}
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("UPSTREAM_BASE_URL", "http://paths.internal:4567")
	t.Setenv("UPSTREAM_TIMEOUT", "3s")
	t.Setenv("UPSTREAM_VALIDATE", "true")
	t.Setenv("SERVER_ALLOWED_ORIGINS", "http://a.test, ,http://b.test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.HTTP.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.HTTP.Port)
	}
	if cfg.Upstream.BaseURL != "http://paths.internal:4567" || cfg.Upstream.Timeout != 3*time.Second || !cfg.Upstream.Validate {
		t.Errorf("unexpected upstream config %+v", cfg.Upstream)
	}
	if diff := cmp.Diff([]string{"http://a.test", "http://b.test"}, cfg.HTTP.AllowedOrigins()); diff != "" {
		t.Errorf("origins mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := map[string]map[string]string{
		"port":        {"SERVER_PORT": "70000"},
		"timeout":     {"UPSTREAM_TIMEOUT": "soon"},
		"source":      {"PATH_SOURCE": "carrier-pigeon"},
		"graph uri":   {"PATH_SOURCE": "graph"},
		"neg timeout": {"UPSTREAM_TIMEOUT": "-1s"},
	}
	for name, env := range tests {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range env {
				t.Setenv(k, v)
			}
			if _, err := Load(); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestLoadYAMLFileThenEnvironment(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "campusdraw.yaml")
	doc := `
http:
  port: 7000
upstream:
  pathSource: graph
  timeout: 5s
graph:
  uri: bolt://localhost:7687
logging:
  format: json
`
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("LOG_FORMAT", "text")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.HTTP.Port != 7000 || cfg.Upstream.PathSource != SourceGraph || cfg.Graph.URI != "bolt://localhost:7687" {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.Upstream.Timeout != 5*time.Second {
		t.Errorf("expected 5s timeout, got %s", cfg.Upstream.Timeout)
	}
	if cfg.Logging.Format != "text" {
		t.Errorf("environment should win over the file, got %s", cfg.Logging.Format)
	}
	if cfg.HTTP.Host != defaultHost {
		t.Errorf("keys missing from the file should keep defaults, got %s", cfg.HTTP.Host)
	}
}

func TestLoadFileRejectsUnknownKeys(t *testing.T) {
	if _, err := parseYAML([]byte("htp:\n  port: 1\n"), Defaults()); err == nil {
		t.Fatalf("expected error for unknown key")
	}
}
