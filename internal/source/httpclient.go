package source

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ddc002021/hackathon/internal/present"
)

// Client is the consumed analysis boundary.
type Client interface {
	// FetchGraph retrieves the snapshot for one view.
	FetchGraph(ctx context.Context, view present.View) (present.Snapshot, error)

	// Query runs a natural-language query against the current graph.
	Query(ctx context.Context, query string) (*QueryResult, error)

	// FeatureDetails retrieves the detail-overlay payload for a node.
	FeatureDetails(ctx context.Context, featureID string) (*FeatureDetail, error)

	// Walkthrough runs a function walkthrough, returning markdown and
	// an optional trace graph.
	Walkthrough(ctx context.Context, functionName string) (*WalkthroughResult, error)
}

// Compile-time interface check.
var _ Client = (*HTTPClient)(nil)

// HTTPClient implements Client against the analysis backend's REST
// surface.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

// ClientOption configures an HTTPClient.
type ClientOption func(*HTTPClient)

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *HTTPClient) {
		c.http.Timeout = d
	}
}

// WithHTTPClient replaces the underlying *http.Client entirely.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *HTTPClient) {
		c.http = hc
	}
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) ClientOption {
	return func(c *HTTPClient) {
		c.logger = l
	}
}

// NewHTTPClient creates a boundary client for the given backend base
// URL.
func NewHTTPClient(baseURL string, opts ...ClientOption) *HTTPClient {
	c := &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchGraph retrieves and decodes the snapshot for one view.
func (c *HTTPClient) FetchGraph(ctx context.Context, view present.View) (present.Snapshot, error) {
	var wire WireGraph
	path := "/graph/" + url.PathEscape(string(view))
	if err := c.get(ctx, path, &wire); err != nil {
		return present.Snapshot{}, fmt.Errorf("source: fetch %s graph: %w", view, err)
	}
	c.logger.Debug("fetched graph snapshot",
		"view", view, "nodes", len(wire.Nodes), "edges", len(wire.Edges))
	return DecodeSnapshot(wire, view), nil
}

// Query runs a natural-language query.
func (c *HTTPClient) Query(ctx context.Context, query string) (*QueryResult, error) {
	var res QueryResult
	if err := c.post(ctx, "/query", map[string]string{"query": query}, &res); err != nil {
		return nil, fmt.Errorf("source: query: %w", err)
	}
	return &res, nil
}

// FeatureDetails retrieves the detail-overlay payload for a node.
func (c *HTTPClient) FeatureDetails(ctx context.Context, featureID string) (*FeatureDetail, error) {
	var res FeatureDetail
	path := "/feature/" + url.PathEscape(featureID)
	if err := c.get(ctx, path, &res); err != nil {
		return nil, fmt.Errorf("source: feature %s: %w", featureID, err)
	}
	return &res, nil
}

// Walkthrough runs a function walkthrough.
func (c *HTTPClient) Walkthrough(ctx context.Context, functionName string) (*WalkthroughResult, error) {
	var res WalkthroughResult
	body := map[string]string{"function_name": functionName}
	if err := c.post(ctx, "/walkthrough-function", body, &res); err != nil {
		return nil, fmt.Errorf("source: walkthrough %s: %w", functionName, err)
	}
	return &res, nil
}

func (c *HTTPClient) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	return c.do(req, out)
}

func (c *HTTPClient) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	return c.do(req, out)
}

func (c *HTTPClient) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
