package hub

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/codementor/codebert-server/internal/logger"
)

func testLogger() *logger.Logger {
	return logger.NewLoggerClient(logger.Config{
		Level:       logger.Error,
		ServiceName: "hub-test",
	})
}

// hubStub serves files the way the hub's resolve endpoint does and records
// which paths were requested.
type hubStub struct {
	mu    sync.Mutex
	files map[string]string
	hits  []string
}

func (h *hubStub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	h.hits = append(h.hits, r.URL.Path)
	h.mu.Unlock()

	content, ok := h.files[r.URL.Path]
	if !ok {
		http.NotFound(w, r)
		return
	}
	if _, err := w.Write([]byte(content)); err != nil {
		panic(err)
	}
}

func (h *hubStub) requested(path string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, hit := range h.hits {
		if hit == path {
			return true
		}
	}
	return false
}

func TestFetchDownloadsArtifacts(t *testing.T) {
	stub := &hubStub{files: map[string]string{
		"/microsoft/codebert-base/resolve/main/config.json":    `{"hidden_size": 768}`,
		"/microsoft/codebert-base/resolve/main/tokenizer.json": `{"version": "1.0"}`,
		"/microsoft/codebert-base/resolve/main/model.onnx":     "onnx-bytes",
	}}
	server := httptest.NewServer(stub)
	defer server.Close()

	root := t.TempDir()
	client := NewClient(Config{Endpoint: server.URL}, testLogger())

	err := client.Fetch(context.Background(), "microsoft/codebert-base", root, Artifacts("model.onnx"))
	if err != nil {
		t.Fatalf("Fetch returned %v", err)
	}

	for file, want := range map[string]string{
		"config.json":    `{"hidden_size": 768}`,
		"tokenizer.json": `{"version": "1.0"}`,
		"model.onnx":     "onnx-bytes",
	} {
		path := filepath.Join(root, "microsoft", "codebert-base", file)
		content, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("reading %s: %v", file, err)
		}
		if string(content) != want {
			t.Errorf("%s = %q, want %q", file, content, want)
		}
	}
}

func TestFetchSkipsExistingFiles(t *testing.T) {
	stub := &hubStub{files: map[string]string{
		"/microsoft/codebert-base/resolve/main/config.json":    `{}`,
		"/microsoft/codebert-base/resolve/main/tokenizer.json": `{"fresh": true}`,
		"/microsoft/codebert-base/resolve/main/model.onnx":     "onnx-bytes",
	}}
	server := httptest.NewServer(stub)
	defer server.Close()

	root := t.TempDir()
	modelDir := filepath.Join(root, "microsoft", "codebert-base")
	if err := os.MkdirAll(modelDir, 0o755); err != nil {
		t.Fatal(err)
	}
	existing := filepath.Join(modelDir, "tokenizer.json")
	if err := os.WriteFile(existing, []byte(`{"local": true}`), 0o644); err != nil {
		t.Fatal(err)
	}

	client := NewClient(Config{Endpoint: server.URL}, testLogger())
	err := client.Fetch(context.Background(), "microsoft/codebert-base", root, Artifacts("model.onnx"))
	if err != nil {
		t.Fatalf("Fetch returned %v", err)
	}

	content, err := os.ReadFile(existing)
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != `{"local": true}` {
		t.Errorf("existing file was overwritten: %q", content)
	}
	if stub.requested("/microsoft/codebert-base/resolve/main/tokenizer.json") {
		t.Error("tokenizer.json was requested even though it exists locally")
	}
}

func TestFetchReportsMissingArtifacts(t *testing.T) {
	stub := &hubStub{files: map[string]string{}}
	server := httptest.NewServer(stub)
	defer server.Close()

	client := NewClient(Config{Endpoint: server.URL}, testLogger())
	err := client.Fetch(context.Background(), "nobody/no-such-model", t.TempDir(), []string{"model.onnx"})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestFetchSendsBearerToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if _, err := w.Write([]byte("ok")); err != nil {
			panic(err)
		}
	}))
	defer server.Close()

	client := NewClient(Config{Endpoint: server.URL, Token: "hf_secret"}, testLogger())
	err := client.Fetch(context.Background(), "owner/gated-model", t.TempDir(), []string{"config.json"})
	if err != nil {
		t.Fatalf("Fetch returned %v", err)
	}
	if gotAuth != "Bearer hf_secret" {
		t.Errorf("Authorization = %q, want Bearer hf_secret", gotAuth)
	}
}

func TestResolveURLTrimsTrailingSlash(t *testing.T) {
	client := NewClient(Config{Endpoint: "https://hub.example.com/"}, testLogger())
	got := client.resolveURL("owner/model", "onnx/model.onnx")
	want := "https://hub.example.com/owner/model/resolve/main/onnx/model.onnx"
	if got != want {
		t.Errorf("resolveURL = %q, want %q", got, want)
	}
}

func TestArtifactsIncludesGraphFile(t *testing.T) {
	files := Artifacts("onnx/model_quantized.onnx")
	joined := strings.Join(files, ",")
	for _, want := range []string{"config.json", "tokenizer.json", "onnx/model_quantized.onnx"} {
		if !strings.Contains(joined, want) {
			t.Errorf("Artifacts missing %s: %v", want, files)
		}
	}
}
