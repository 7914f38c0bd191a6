package client

import "time"

// DefaultTimeout bounds one request end to end. Embedding a large batch on
// CPU can take tens of seconds, so this is deliberately generous.
const DefaultTimeout = 60 * time.Second

type Config struct {
	// Host is the service base URL, for example "http://localhost:8000".
	// A trailing slash is tolerated.
	Host string

	// Timeout bounds each request. Zero means DefaultTimeout.
	Timeout time.Duration

	// MaxLength is the token budget sent with every embedding request.
	// Zero omits the field so the service applies its default (512).
	MaxLength int
}
