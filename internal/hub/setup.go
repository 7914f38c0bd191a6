package hub

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/codementor/codebert-server/internal/logger"
)

// Client downloads model artifacts over HTTP.
type Client struct {
	cfg        Config
	log        *logger.Logger
	httpClient *http.Client
}

// NewClient creates a hub client. The HTTP timeout is generous because
// ONNX graph files for base-sized encoders run to hundreds of megabytes.
func NewClient(cfg Config, log *logger.Logger) *Client {
	return &Client{
		cfg: cfg,
		log: log,
		httpClient: &http.Client{
			Timeout: 30 * time.Minute,
		},
	}
}

// Fetch downloads the given files for model into root/<model>/,
// preserving any subdirectories in the file names. Files already present
// on disk are left untouched. Downloads run concurrently; the first
// failure cancels the rest.
func (c *Client) Fetch(ctx context.Context, model, root string, files []string) error {
	targetDir := filepath.Join(root, filepath.FromSlash(model))

	group, ctx := errgroup.WithContext(ctx)
	for _, file := range files {
		group.Go(func() error {
			return c.fetchFile(ctx, model, targetDir, file)
		})
	}
	return group.Wait()
}

func (c *Client) fetchFile(ctx context.Context, model, targetDir, file string) error {
	target := filepath.Join(targetDir, filepath.FromSlash(file))
	if _, err := os.Stat(target); err == nil {
		c.log.Debug("artifact already present", nil, map[string]interface{}{
			"file": target,
		})
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("hub: create %s: %w", filepath.Dir(target), err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.resolveURL(model, file), nil)
	if err != nil {
		return fmt.Errorf("hub: build request for %s: %w", file, err)
	}
	if c.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	}

	c.log.Info("downloading artifact", nil, map[string]interface{}{
		"model": model,
		"file":  file,
	})
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("hub: download %s: %w", file, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s for model %s", ErrNotFound, file, model)
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("hub: download %s: unexpected status %d", file, resp.StatusCode)
	}

	// Write through a temp file in the target directory so a partial
	// download never shows up under the final name.
	tmp, err := os.CreateTemp(filepath.Dir(target), filepath.Base(target)+".partial-*")
	if err != nil {
		return fmt.Errorf("hub: create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	written, err := io.Copy(tmp, resp.Body)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("hub: write %s: %w", target, err)
	}

	if err := os.Rename(tmp.Name(), target); err != nil {
		return fmt.Errorf("hub: move %s into place: %w", target, err)
	}

	c.log.Info("artifact downloaded", nil, map[string]interface{}{
		"file":    file,
		"bytes":   written,
		"seconds": time.Since(start).Seconds(),
	})
	return nil
}
