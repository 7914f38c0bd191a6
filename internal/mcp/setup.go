package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/codementor/codebert-server/internal/api"
	"github.com/codementor/codebert-server/internal/inference"
	"github.com/codementor/codebert-server/internal/logger"
)

// Server wraps the MCP server around the embedding engine.
type Server struct {
	mcpServer *server.MCPServer
	engine    inference.Embedder
	log       *logger.Logger
}

// NewServer creates the MCP server and registers the embedding tools.
func NewServer(engine inference.Embedder, log *logger.Logger) *Server {
	mcpServer := server.NewMCPServer(
		api.ServiceTitle,
		api.ServiceVersion,
		server.WithToolCapabilities(false),
	)

	s := &Server{
		mcpServer: mcpServer,
		engine:    engine,
		log:       log,
	}

	s.registerEmbedTool()
	s.registerEmbedBatchTool()
	s.registerHealthTool()

	return s
}

func (s *Server) registerEmbedTool() {
	tool := mcp.NewTool("embed",
		mcp.WithDescription("Generate a semantic embedding vector for one code snippet or text."),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("Text to embed"),
		),
		mcp.WithNumber("max_length",
			mcp.Description("Token budget for truncation (default: 512)"),
		),
	)

	s.mcpServer.AddTool(tool, s.handleEmbed)
}

func (s *Server) registerEmbedBatchTool() {
	tool := mcp.NewTool("embed_batch",
		mcp.WithDescription("Generate embedding vectors for several texts in one forward pass, preserving input order."),
		mcp.WithArray("texts",
			mcp.Required(),
			mcp.Description("Texts to embed"),
			mcp.Items(map[string]any{"type": "string"}),
		),
		mcp.WithNumber("max_length",
			mcp.Description("Shared token budget for truncation (default: 512)"),
		),
	)

	s.mcpServer.AddTool(tool, s.handleEmbedBatch)
}

func (s *Server) registerHealthTool() {
	tool := mcp.NewTool("health",
		mcp.WithDescription("Probe the model and report its name, device, and embedding dimension."),
	)

	s.mcpServer.AddTool(tool, s.handleHealth)
}

// ServeStdio serves MCP over stdin/stdout until the client disconnects.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}
