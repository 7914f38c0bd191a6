package api

// Service identity reported by the root endpoint.
const (
	ServiceTitle   = "CodeBERT Embedding Service"
	ServiceVersion = "1.0.0"
)

// EmbeddingRequest asks for one embedding. MaxLength is a pointer so an
// absent or null field falls back to the default truncation bound while an
// explicit zero is still rejected as invalid.
type EmbeddingRequest struct {
	Text      string `json:"text"`
	MaxLength *int   `json:"max_length"`
}

// BatchEmbeddingRequest asks for one embedding per text, sharing a single
// truncation bound across the batch.
type BatchEmbeddingRequest struct {
	Texts     []string `json:"texts"`
	MaxLength *int     `json:"max_length"`
}

type EmbeddingResponse struct {
	Embedding []float32 `json:"embedding"`
	Dimension int       `json:"dimension"`
}

// BatchEmbeddingResponse carries vectors in the same order as the request
// texts.
type BatchEmbeddingResponse struct {
	Embeddings [][]float32 `json:"embeddings"`
	Dimension  int         `json:"dimension"`
	Count      int         `json:"count"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Model     string `json:"model"`
	Device    string `json:"device"`
	Dimension int    `json:"dimension"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

type RootResponse struct {
	Service   string         `json:"service"`
	Version   string         `json:"version"`
	Endpoints EndpointsIndex `json:"endpoints"`
}

// EndpointsIndex maps endpoint names to their paths.
type EndpointsIndex struct {
	Health     string `json:"health"`
	Embed      string `json:"embed"`
	EmbedBatch string `json:"embed_batch"`
}
