package inference

import "errors"

// ErrNotReady is returned when inference is requested before the model has
// loaded or after the engine has been closed. The serving layers translate
// it into a service-unavailable response.
var ErrNotReady = errors.New("inference: model not loaded")

// ErrArtifactsMissing is returned by NewEngine when the tokenizer or model
// graph file is absent and auto-fetch is disabled.
var ErrArtifactsMissing = errors.New("inference: model artifacts missing")
