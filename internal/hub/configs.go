package hub

import "os"

type Config struct {
	// Endpoint is the hub base URL, without a trailing slash.
	Endpoint string

	// Token is sent as a bearer token when present. Required only for
	// gated or private models.
	Token string
}

// NewConfig reads from environment variables.
func NewConfig() Config {
	endpoint := os.Getenv("HF_ENDPOINT")
	if endpoint == "" {
		endpoint = "https://huggingface.co"
	}

	return Config{
		Endpoint: endpoint,
		Token:    os.Getenv("HF_TOKEN"),
	}
}
