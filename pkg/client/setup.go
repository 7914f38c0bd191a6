package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// Client talks to one embedding service instance. It is safe for
// concurrent use.
type Client struct {
	host       string
	maxLength  int
	httpClient *http.Client
}

// NewClient creates a client for the service at cfg.Host.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		host:      strings.TrimSuffix(cfg.Host, "/"),
		maxLength: cfg.MaxLength,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// CheckHealth probes the service. A non-nil result means the model is
// loaded and a probe inference succeeded on the service side.
func (c *Client) CheckHealth(ctx context.Context) (*Health, error) {
	var health Health
	if err := c.getJSON(ctx, "/health", &health); err != nil {
		return nil, err
	}
	return &health, nil
}

// Embed returns the embedding vector for a single text.
func (c *Client) Embed(ctx context.Context, text string) ([]float32, error) {
	var resp EmbeddingResponse
	err := c.postJSON(ctx, "/embed", EmbeddingRequest{
		Text:      text,
		MaxLength: c.maxLength,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Embedding, nil
}

// EmbedBatch returns one vector per text, in input order. An empty input
// returns an empty result without a round trip.
func (c *Client) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return [][]float32{}, nil
	}

	var resp BatchEmbeddingResponse
	err := c.postJSON(ctx, "/embed/batch", BatchEmbeddingRequest{
		Texts:     texts,
		MaxLength: c.maxLength,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Embeddings, nil
}

// Dimension returns the embedding dimension of the loaded model.
func (c *Client) Dimension(ctx context.Context) (int, error) {
	health, err := c.CheckHealth(ctx)
	if err != nil {
		return 0, err
	}
	return health.Dimension, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.host+path, nil)
	if err != nil {
		return fmt.Errorf("client: build request: %w", err)
	}
	return c.do(req, out)
}

func (c *Client) postJSON(ctx context.Context, path string, payload, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("client: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.host+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("client: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("client: service not accessible at %s: %w", c.host, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return apiError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("client: decode response: %w", err)
	}
	return nil
}
