// Package client is a Go client for the CodeBERT embedding service.
//
// It wraps the service's HTTP/JSON API: single and batch embedding, health
// checks, and dimension discovery. Non-2xx responses are returned as
// *APIError carrying the HTTP status and the service's "detail" message,
// so callers can distinguish a service that is still loading its model
// (503) from a real inference failure (500).
//
// # Usage
//
//	c := client.NewClient(client.Config{Host: "http://localhost:8000"})
//
//	vector, err := c.Embed(ctx, "def add(a, b): return a + b")
//	if err != nil {
//		var apiErr *client.APIError
//		if errors.As(err, &apiErr) && apiErr.NotReady() {
//			// service is up but the model is still loading
//		}
//		return err
//	}
//
// Batch calls preserve input order: vectors[i] always corresponds to
// texts[i].
package client
