// Package api exposes the embedding engine over HTTP/JSON.
//
// The surface is small and stable; field names are the contract other
// services bind to:
//
//	GET  /            service name, version, and endpoint index
//	GET  /health      probe inference and report model, device, dimension
//	POST /embed       {text, max_length?} -> {embedding, dimension}
//	POST /embed/batch {texts, max_length?} -> {embeddings, dimension, count}
//
// Errors are always a JSON body of the form {"detail": "..."}: 400 for
// requests that cannot be parsed or carry a non-positive max_length, 503
// while the model is unavailable, and 500 for tokenization or inference
// failures, carrying the failure's textual description.
//
// The server binds its listener during application start, after every
// provided dependency (the inference engine included) has finished
// construction, so a reachable port implies a loaded model.
//
// # Configuration
//
// NewConfig reads the following environment variables:
//
//   - PORT: listen port for the API server (default "8000")
package api
