// Package pathclient talks to the external campus path-finding server.
package pathclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/vanshika/campusdraw/internal/domain"
)

const (
	BuildingNamesPath = "/building-names"
	FindPathPath      = "/find-path"

	// DefaultBaseURL is where the course server listens.
	DefaultBaseURL = "http://localhost:4567"

	maxBodyBytes = 8 << 20
)

// ErrMissingEndpoints is returned when a path is requested without both names.
var ErrMissingEndpoints = errors.New("start and end are required")

// Options configures a Client.
type Options struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
	Contract   *Contract
}

// Client issues the directory and path requests. It never retries.
type Client struct {
	base     *url.URL
	http     *http.Client
	contract *Contract
}

// New builds a Client for the server at opts.BaseURL.
func New(opts Options) (*Client, error) {
	raw := strings.TrimSpace(opts.BaseURL)
	if raw == "" {
		raw = DefaultBaseURL
	}
	base, err := url.Parse(strings.TrimRight(raw, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", raw, err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("base url %q must be http or https", raw)
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}

	return &Client{
		base:     base,
		http:     httpClient,
		contract: opts.Contract,
	}, nil
}

// BuildingNames fetches the building directory in the order the server sent it.
func (c *Client) BuildingNames(ctx context.Context) ([]domain.BuildingRef, error) {
	body, err := c.get(ctx, BuildingNamesPath, nil)
	if err != nil {
		return nil, err
	}
	buildings, err := decodeBuildingNames(body)
	if err != nil {
		return nil, transportError(BuildingNamesPath, fmt.Errorf("decode building names: %w", err))
	}
	return buildings, nil
}

// FindPath asks the server for the shortest path between two short names.
func (c *Client) FindPath(ctx context.Context, start, end string) (domain.PathResponse, error) {
	if start == "" || end == "" {
		return domain.PathResponse{}, ErrMissingEndpoints
	}

	query := url.Values{}
	query.Set("start", start)
	query.Set("end", end)

	body, err := c.get(ctx, FindPathPath, query)
	if err != nil {
		return domain.PathResponse{}, err
	}
	path, err := decodePath(body, start, end)
	if err != nil {
		return domain.PathResponse{}, transportError(FindPathPath, fmt.Errorf("decode path: %w", err))
	}
	return path, nil
}

// Probe checks that the directory endpoint answers.
func (c *Client) Probe(ctx context.Context) error {
	_, err := c.BuildingNames(ctx)
	return err
}

func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	target := *c.base
	target.Path = c.base.Path + path
	target.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return nil, transportError(path, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, transportError(path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return nil, statusError(path, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, transportError(path, fmt.Errorf("read body: %w", err))
	}
	if err := c.contract.ValidateResponse(path, body); err != nil {
		return nil, transportError(path, err)
	}
	return body, nil
}
