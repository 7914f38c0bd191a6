package hub

import (
	"fmt"
	"strings"
)

// Artifacts lists the files an embedding engine needs for one model: the
// model configuration, the tokenizer vocabulary, and the ONNX graph.
func Artifacts(onnxFilename string) []string {
	return []string{"config.json", "tokenizer.json", onnxFilename}
}

func (c *Client) resolveURL(model, file string) string {
	return fmt.Sprintf("%s/%s/resolve/main/%s",
		strings.TrimSuffix(c.cfg.Endpoint, "/"), model, file)
}
