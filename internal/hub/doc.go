// Package hub downloads model artifacts from a HuggingFace-compatible
// model hub.
//
// A model is identified by its owner/name form (for example
// "microsoft/codebert-base") and resolves to files served under
// <endpoint>/<model>/resolve/main/<file>. Downloads land in a local
// directory tree mirroring the model name, are written through a temp
// file, and are skipped entirely when the target file already exists,
// so Fetch is safe to re-run.
//
// # Usage
//
//	client := hub.NewClient(hub.NewConfig(), log)
//	err := client.Fetch(ctx, "microsoft/codebert-base", "models",
//		hub.Artifacts("model.onnx"))
//	if err != nil {
//		log.Fatal("model fetch failed", err)
//	}
//
// # Configuration
//
// NewConfig reads the following environment variables:
//
//   - HF_ENDPOINT: hub base URL (default "https://huggingface.co"),
//     point this at a mirror for air-gapped deployments
//   - HF_TOKEN: bearer token for gated or private models, empty for
//     public models
package hub
