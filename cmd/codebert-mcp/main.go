// Package main serves the embedding engine over the Model Context
// Protocol on stdio, so AI agents can request embeddings as tool calls.
//
// It loads the model exactly like codebert-server does, then hands stdin
// and stdout to the MCP transport. Logs go to stderr, keeping stdout
// clean for the protocol.
package main

import (
	"github.com/codementor/codebert-server/internal/inference"
	"github.com/codementor/codebert-server/internal/logger"
	"github.com/codementor/codebert-server/internal/mcp"
)

func main() {
	log := logger.NewLoggerClient(logger.NewConfig())

	engine, err := inference.NewEngine(inference.NewConfig(), log)
	if err != nil {
		log.Fatal("model load failed", err)
	}
	defer engine.Close()

	server := mcp.NewServer(engine, log)
	if err := server.ServeStdio(); err != nil {
		log.Fatal("mcp server failed", err)
	}
}
