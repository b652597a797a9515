// Package source opens the configured path source for the binaries.
package source

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vanshika/campusdraw/internal/config"
	"github.com/vanshika/campusdraw/internal/graph"
	"github.com/vanshika/campusdraw/internal/pathclient"
	"github.com/vanshika/campusdraw/internal/repository"
	"github.com/vanshika/campusdraw/internal/service"
)

// Source is a path source that can be probed and released.
type Source interface {
	service.PathSource
	Probe(ctx context.Context) error
	Close(ctx context.Context) error
}

// Open builds the source named by cfg.Upstream.PathSource.
func Open(ctx context.Context, logger *slog.Logger, cfg config.Config) (Source, error) {
	switch cfg.Upstream.PathSource {
	case config.SourceGraph:
		client, err := OpenGraph(ctx, logger, cfg.Graph)
		if err != nil {
			return nil, err
		}
		return graphSource{Campus: repository.New(client), client: client}, nil
	case config.SourceHTTP, "":
		return openHTTP(ctx, logger, cfg.Upstream)
	default:
		return nil, fmt.Errorf("unknown path source %q", cfg.Upstream.PathSource)
	}
}

// OpenGraph connects to Neo4j. The client verifies connectivity on creation.
func OpenGraph(ctx context.Context, logger *slog.Logger, cfg config.GraphConfig) (graph.Client, error) {
	if cfg.URI == "" {
		return nil, graph.ErrMissingURI
	}
	client, err := graph.NewNeo4jClient(ctx, graph.Options{
		URI:            cfg.URI,
		Database:       cfg.Database,
		Username:       cfg.Username,
		Password:       cfg.Password,
		MaxConnections: cfg.MaxConnections,
	})
	if err != nil {
		return nil, err
	}
	logger.Info("connected to graph", "uri", cfg.URI, "database", cfg.Database)
	return client, nil
}

func openHTTP(ctx context.Context, logger *slog.Logger, cfg config.UpstreamConfig) (Source, error) {
	opts := pathclient.Options{
		BaseURL: cfg.BaseURL,
		Timeout: cfg.Timeout,
	}
	if cfg.Validate {
		contract, err := pathclient.LoadContract(ctx)
		if err != nil {
			return nil, fmt.Errorf("load upstream contract: %w", err)
		}
		opts.Contract = contract
	}
	client, err := pathclient.New(opts)
	if err != nil {
		return nil, err
	}
	logger.Info("using path server", "base_url", cfg.BaseURL, "validate", cfg.Validate, "timeout", cfg.Timeout.String())
	return httpSource{Client: client}, nil
}

type httpSource struct {
	*pathclient.Client
}

func (httpSource) Close(context.Context) error { return nil }

type graphSource struct {
	*repository.Campus
	client graph.Client
}

func (s graphSource) Close(ctx context.Context) error {
	return s.client.Close(ctx)
}
