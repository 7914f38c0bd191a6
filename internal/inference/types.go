package inference

import "context"

// DefaultMaxLength is the token budget applied when a request does not carry
// an explicit max length.
const DefaultMaxLength = 512

// ProbeText is embedded once at startup to establish the model's hidden
// dimension, and again on every health check as a liveness probe of the
// tokenizer and session.
const ProbeText = "test"

// Embedder is the contract the serving layers (HTTP, MCP) depend on.
// It is implemented by *Engine.
type Embedder interface {
	// Embed returns the embedding vector for a single text. maxLength
	// bounds tokenization; values below 1 are rejected.
	Embed(ctx context.Context, text string, maxLength int) ([]float32, error)

	// EmbedBatch returns one vector per input text, in input order. The
	// batch is padded to its longest sequence and runs as one forward
	// pass.
	EmbedBatch(ctx context.Context, texts []string, maxLength int) ([][]float32, error)

	// ModelName returns the configured pretrained model identifier.
	ModelName() string

	// Device returns the active compute device name (cuda, coreml, cpu).
	Device() string

	// Dimension returns the model's hidden size, established by the
	// startup probe.
	Dimension() int

	// Ready reports whether the engine can serve inference calls.
	Ready() bool

	// Close releases the session and runtime. Subsequent calls report
	// not ready.
	Close() error
}
