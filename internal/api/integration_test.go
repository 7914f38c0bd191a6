package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"

	"github.com/codementor/codebert-server/internal/inference"
	"github.com/codementor/codebert-server/internal/logger"
	"github.com/codementor/codebert-server/internal/metrics"
	"github.com/codementor/codebert-server/internal/tracer"
)

func freePort(t *testing.T) string {
	t.Helper()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer listener.Close()

	_, port, err := net.SplitHostPort(listener.Addr().String())
	require.NoError(t, err)
	return port
}

// TestApplicationServesOverHTTP wires the real application graph (logger,
// metrics, tracer, API server) around a stub engine and exercises the
// endpoints over a real listener.
func TestApplicationServesOverHTTP(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	port := freePort(t)
	t.Setenv("PORT", port)
	t.Setenv("METRICS_ADDRESS", "127.0.0.1:0")
	t.Setenv("ZAP_LOGGER_LEVEL", "error")
	t.Setenv("TRACER_ENABLE_EXPORT", "")
	t.Setenv("SERVICE_NAME", "codebert-server-test")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var server *Server

	app := fx.New(
		fx.Provide(
			logger.NewConfig,
			metrics.NewConfig,
			tracer.NewConfig,
			func() inference.Embedder { return newFakeEmbedder() },
		),
		logger.FXModule,
		metrics.FXModule,
		tracer.FXModule,
		FXModule,
		fx.Populate(&server),
	)

	require.NoError(t, app.Start(ctx))
	defer app.Stop(ctx)
	require.NotNil(t, server)

	base := fmt.Sprintf("http://127.0.0.1:%s", port)

	t.Run("Root", func(t *testing.T) {
		resp, err := http.Get(base + "/")
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body RootResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "CodeBERT Embedding Service", body.Service)
		assert.Equal(t, "1.0.0", body.Version)
		assert.Equal(t, "/embed/batch", body.Endpoints.EmbedBatch)
	})

	t.Run("Health", func(t *testing.T) {
		resp, err := http.Get(base + "/health")
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body HealthResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "healthy", body.Status)
		assert.Equal(t, "microsoft/codebert-base", body.Model)
		assert.Equal(t, 3, body.Dimension)
	})

	t.Run("Embed", func(t *testing.T) {
		resp, err := http.Post(base+"/embed", "application/json",
			strings.NewReader(`{"text": "def add(a, b): return a + b"}`))
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body EmbeddingResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Len(t, body.Embedding, body.Dimension)
	})

	t.Run("BatchOrder", func(t *testing.T) {
		resp, err := http.Post(base+"/embed/batch", "application/json",
			strings.NewReader(`{"texts": ["a", "bb"], "max_length": 32}`))
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body BatchEmbeddingResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		require.Equal(t, 2, body.Count)
		assert.Equal(t, float32(1), body.Embeddings[0][0])
		assert.Equal(t, float32(2), body.Embeddings[1][0])
	})
}

// TestStartFailsWhenPortTaken holds the configured port open and verifies
// application start reports the bind failure instead of deferring it.
func TestStartFailsWhenPortTaken(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	listener, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	defer listener.Close()

	_, port, err := net.SplitHostPort(listener.Addr().String())
	require.NoError(t, err)

	log := logger.NewLoggerClient(logger.Config{Level: logger.Error, ServiceName: "api-test"})
	collector := metrics.NewMetrics(metrics.Config{ServiceName: "api-test"})
	trc := tracer.NewClient(tracer.Config{ServiceName: "api-test"}, log)

	server, err := NewServer(Config{Port: port}, log, collector, trc, newFakeEmbedder())
	require.NoError(t, err)

	err = server.Start()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bind")
}
