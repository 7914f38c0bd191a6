package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/codementor/codebert-server/internal/inference"
)

const notLoadedDetail = "Model not loaded"

func (s *Server) handleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, RootResponse{
		Service: ServiceTitle,
		Version: ServiceVersion,
		Endpoints: EndpointsIndex{
			Health:     "/health",
			Embed:      "/embed",
			EmbedBatch: "/embed/batch",
		},
	})
}

// handleHealth runs a real probe inference so "healthy" means the whole
// tokenize-and-infer pipeline works right now, not just that startup once
// succeeded.
func (s *Server) handleHealth(c *gin.Context) {
	if !s.engine.Ready() {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Detail: notLoadedDetail})
		return
	}

	vector, err := s.engine.Embed(c.Request.Context(), inference.ProbeText, inference.DefaultMaxLength)
	if err != nil {
		s.embeddingError(c, err)
		return
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Model:     s.engine.ModelName(),
		Device:    s.engine.Device(),
		Dimension: len(vector),
	})
}

func (s *Server) handleEmbed(c *gin.Context) {
	var req EmbeddingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "invalid request body: " + err.Error()})
		return
	}

	maxLength, ok := resolveMaxLength(req.MaxLength)
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "max_length must be a positive integer"})
		return
	}

	vector, err := s.engine.Embed(c.Request.Context(), req.Text, maxLength)
	if err != nil {
		s.embeddingError(c, err)
		return
	}

	s.metrics.AddEmbeddedTexts("embed", 1)
	c.JSON(http.StatusOK, EmbeddingResponse{
		Embedding: vector,
		Dimension: len(vector),
	})
}

func (s *Server) handleEmbedBatch(c *gin.Context) {
	var req BatchEmbeddingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "invalid request body: " + err.Error()})
		return
	}

	maxLength, ok := resolveMaxLength(req.MaxLength)
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "max_length must be a positive integer"})
		return
	}

	// An empty batch is valid and answered without a forward pass; the
	// dimension still reports the loaded model's hidden size.
	if len(req.Texts) == 0 {
		if !s.engine.Ready() {
			c.JSON(http.StatusServiceUnavailable, ErrorResponse{Detail: notLoadedDetail})
			return
		}
		c.JSON(http.StatusOK, BatchEmbeddingResponse{
			Embeddings: [][]float32{},
			Dimension:  s.engine.Dimension(),
			Count:      0,
		})
		return
	}

	vectors, err := s.engine.EmbedBatch(c.Request.Context(), req.Texts, maxLength)
	if err != nil {
		s.embeddingError(c, err)
		return
	}

	s.metrics.AddEmbeddedTexts("embed_batch", len(vectors))
	c.JSON(http.StatusOK, BatchEmbeddingResponse{
		Embeddings: vectors,
		Dimension:  len(vectors[0]),
		Count:      len(vectors),
	})
}

// embeddingError translates engine failures into the API's error contract:
// 503 while the model is unavailable, 500 with the failure's description
// for anything else.
func (s *Server) embeddingError(c *gin.Context, err error) {
	if errors.Is(err, inference.ErrNotReady) {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Detail: notLoadedDetail})
		return
	}

	s.log.ErrorWithContext(c.Request.Context(), "embedding failed", err, map[string]interface{}{
		"endpoint": c.FullPath(),
	})
	c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: err.Error()})
}
