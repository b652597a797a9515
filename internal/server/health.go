package server

import (
	"context"
)

// HealthService defines behaviour for readiness probes.
type HealthService interface {
	Probe(ctx context.Context) error
}

// Prober is implemented by the path sources: the HTTP client asks the server
// for its directory and the graph repository verifies connectivity.
type Prober interface {
	Probe(ctx context.Context) error
}

// PathSourceHealth reports the path source as the readiness of the front end.
type PathSourceHealth struct {
	Source Prober
}

// Probe implements the HealthService interface.
func (h PathSourceHealth) Probe(ctx context.Context) error {
	if h.Source == nil {
		return nil
	}
	return h.Source.Probe(ctx)
}
