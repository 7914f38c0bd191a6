package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/codementor/codebert-server/internal/api"
	"github.com/codementor/codebert-server/internal/inference"
)

const notLoadedDetail = "Model not loaded"

func (s *Server) handleEmbed(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()

	text, ok := args["text"].(string)
	if !ok {
		return mcp.NewToolResultError("text parameter is required"), nil
	}

	maxLength, errResult := resolveMaxLength(args)
	if errResult != nil {
		return errResult, nil
	}

	vector, err := s.engine.Embed(ctx, text, maxLength)
	if err != nil {
		return s.embeddingError(err), nil
	}

	return toolResultJSON(api.EmbeddingResponse{
		Embedding: vector,
		Dimension: len(vector),
	})
}

func (s *Server) handleEmbedBatch(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()

	rawTexts, ok := args["texts"].([]any)
	if !ok {
		return mcp.NewToolResultError("texts parameter is required and must be an array of strings"), nil
	}
	texts := make([]string, len(rawTexts))
	for i, raw := range rawTexts {
		text, ok := raw.(string)
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("texts[%d] is not a string", i)), nil
		}
		texts[i] = text
	}

	maxLength, errResult := resolveMaxLength(args)
	if errResult != nil {
		return errResult, nil
	}

	if len(texts) == 0 {
		if !s.engine.Ready() {
			return mcp.NewToolResultError(notLoadedDetail), nil
		}
		return toolResultJSON(api.BatchEmbeddingResponse{
			Embeddings: [][]float32{},
			Dimension:  s.engine.Dimension(),
			Count:      0,
		})
	}

	vectors, err := s.engine.EmbedBatch(ctx, texts, maxLength)
	if err != nil {
		return s.embeddingError(err), nil
	}

	return toolResultJSON(api.BatchEmbeddingResponse{
		Embeddings: vectors,
		Dimension:  len(vectors[0]),
		Count:      len(vectors),
	})
}

func (s *Server) handleHealth(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if !s.engine.Ready() {
		return mcp.NewToolResultError(notLoadedDetail), nil
	}

	vector, err := s.engine.Embed(ctx, inference.ProbeText, inference.DefaultMaxLength)
	if err != nil {
		return s.embeddingError(err), nil
	}

	return toolResultJSON(api.HealthResponse{
		Status:    "healthy",
		Model:     s.engine.ModelName(),
		Device:    s.engine.Device(),
		Dimension: len(vector),
	})
}

// resolveMaxLength reads the optional max_length argument. JSON numbers
// arrive as float64.
func resolveMaxLength(args map[string]any) (int, *mcp.CallToolResult) {
	maxLength := inference.DefaultMaxLength
	if v, ok := args["max_length"].(float64); ok {
		maxLength = int(v)
	}
	if maxLength < 1 {
		return 0, mcp.NewToolResultError("max_length must be a positive integer")
	}
	return maxLength, nil
}

func (s *Server) embeddingError(err error) *mcp.CallToolResult {
	if errors.Is(err, inference.ErrNotReady) {
		return mcp.NewToolResultError(notLoadedDetail)
	}
	s.log.Error("embedding failed", err)
	return mcp.NewToolResultError(err.Error())
}

func toolResultJSON(v interface{}) (*mcp.CallToolResult, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("mcp: encode result: %w", err)
	}
	return mcp.NewToolResultText(string(payload)), nil
}
