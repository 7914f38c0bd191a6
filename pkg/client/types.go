package client

// EmbeddingRequest is the body of POST /embed.
type EmbeddingRequest struct {
	Text      string `json:"text"`
	MaxLength int    `json:"max_length,omitempty"`
}

// BatchEmbeddingRequest is the body of POST /embed/batch.
type BatchEmbeddingRequest struct {
	Texts     []string `json:"texts"`
	MaxLength int      `json:"max_length,omitempty"`
}

// EmbeddingResponse is the body of a successful POST /embed.
type EmbeddingResponse struct {
	Embedding []float32 `json:"embedding"`
	Dimension int       `json:"dimension"`
}

// BatchEmbeddingResponse is the body of a successful POST /embed/batch.
// Embeddings are in the same order as the request texts.
type BatchEmbeddingResponse struct {
	Embeddings [][]float32 `json:"embeddings"`
	Dimension  int         `json:"dimension"`
	Count      int         `json:"count"`
}

// Health is the body of a successful GET /health.
type Health struct {
	Status    string `json:"status"`
	Model     string `json:"model"`
	Device    string `json:"device"`
	Dimension int    `json:"dimension"`
}
