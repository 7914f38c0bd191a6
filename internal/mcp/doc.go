// Package mcp exposes the embedding engine over the Model Context
// Protocol, so AI agents can request embeddings through MCP tools instead
// of the HTTP API.
//
// Three tools are registered: embed, embed_batch, and health. Tool results
// carry the same JSON payloads as the corresponding HTTP endpoints, so a
// consumer can switch transports without reparsing.
//
// The server speaks stdio and is started by the codebert-mcp binary.
package mcp
