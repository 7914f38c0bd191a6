package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func TestEmbedDecodesVector(t *testing.T) {
	var gotBody EmbeddingRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/embed" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		json.NewEncoder(w).Encode(EmbeddingResponse{
			Embedding: []float32{0.1, 0.2, 0.3},
			Dimension: 3,
		})
	}))
	defer server.Close()

	c := NewClient(Config{Host: server.URL + "/"})

	vector, err := c.Embed(context.Background(), "def add(a, b): return a + b")
	if err != nil {
		t.Fatalf("Embed returned %v", err)
	}

	if len(vector) != 3 || vector[0] != 0.1 {
		t.Errorf("vector = %v", vector)
	}
	if gotBody.Text != "def add(a, b): return a + b" {
		t.Errorf("text = %q", gotBody.Text)
	}
	if gotBody.MaxLength != 0 {
		t.Errorf("max_length = %d, should be omitted when unconfigured", gotBody.MaxLength)
	}
}

func TestEmbedSendsConfiguredMaxLength(t *testing.T) {
	var gotBody EmbeddingRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		json.NewEncoder(w).Encode(EmbeddingResponse{Embedding: []float32{1}, Dimension: 1})
	}))
	defer server.Close()

	c := NewClient(Config{Host: server.URL, MaxLength: 128})

	if _, err := c.Embed(context.Background(), "x"); err != nil {
		t.Fatalf("Embed returned %v", err)
	}
	if gotBody.MaxLength != 128 {
		t.Errorf("max_length = %d, want 128", gotBody.MaxLength)
	}
}

func TestEmbedBatchPreservesOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req BatchEmbeddingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decoding request: %v", err)
		}

		vectors := make([][]float32, len(req.Texts))
		for i, text := range req.Texts {
			vectors[i] = []float32{float32(len(text))}
		}
		json.NewEncoder(w).Encode(BatchEmbeddingResponse{
			Embeddings: vectors,
			Dimension:  1,
			Count:      len(vectors),
		})
	}))
	defer server.Close()

	c := NewClient(Config{Host: server.URL})

	vectors, err := c.EmbedBatch(context.Background(), []string{"a", "bb", "ccc"})
	if err != nil {
		t.Fatalf("EmbedBatch returned %v", err)
	}

	if len(vectors) != 3 {
		t.Fatalf("got %d vectors, want 3", len(vectors))
	}
	for i, want := range []float32{1, 2, 3} {
		if vectors[i][0] != want {
			t.Errorf("vectors[%d][0] = %v, want %v", i, vectors[i][0], want)
		}
	}
}

func TestEmbedBatchEmptyInputSkipsRoundTrip(t *testing.T) {
	var requests atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
	}))
	defer server.Close()

	c := NewClient(Config{Host: server.URL})

	vectors, err := c.EmbedBatch(context.Background(), nil)
	if err != nil {
		t.Fatalf("EmbedBatch returned %v", err)
	}
	if len(vectors) != 0 {
		t.Errorf("vectors = %v, want empty", vectors)
	}
	if requests.Load() != 0 {
		t.Errorf("client made %d requests for an empty batch", requests.Load())
	}
}

func TestNotReadyServiceSurfacesAsAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Model not loaded"})
	}))
	defer server.Close()

	c := NewClient(Config{Host: server.URL})

	_, err := c.Embed(context.Background(), "x")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if !apiErr.NotReady() {
		t.Error("NotReady() should be true for 503")
	}
	if apiErr.Detail != "Model not loaded" {
		t.Errorf("detail = %q", apiErr.Detail)
	}
}

func TestAPIErrorFallsBackToRawBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream exploded", http.StatusInternalServerError)
	}))
	defer server.Close()

	c := NewClient(Config{Host: server.URL})

	_, err := c.Embed(context.Background(), "x")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("status = %d", apiErr.StatusCode)
	}
	if apiErr.Detail != "upstream exploded" {
		t.Errorf("detail = %q", apiErr.Detail)
	}
}

func TestDimensionReadsHealth(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(Health{
			Status:    "healthy",
			Model:     "microsoft/codebert-base",
			Device:    "cuda",
			Dimension: 768,
		})
	}))
	defer server.Close()

	c := NewClient(Config{Host: server.URL})

	dimension, err := c.Dimension(context.Background())
	if err != nil {
		t.Fatalf("Dimension returned %v", err)
	}
	if dimension != 768 {
		t.Errorf("dimension = %d, want 768", dimension)
	}

	health, err := c.CheckHealth(context.Background())
	if err != nil {
		t.Fatalf("CheckHealth returned %v", err)
	}
	if health.Device != "cuda" || health.Model != "microsoft/codebert-base" {
		t.Errorf("health = %+v", health)
	}
}
