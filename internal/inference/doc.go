// Package inference loads a pretrained encoder model and turns text into
// fixed-dimension embedding vectors.
//
// The Engine owns the three pieces of process-wide model state: the
// HuggingFace tokenizer (tokenizer.json), the ONNX Runtime session over the
// exported encoder (model.onnx), and the selected compute device. All three
// are initialized exactly once in NewEngine and are immutable for the process
// lifetime; handlers receive the Engine by injection rather than through
// globals.
//
// # Pipeline
//
// For each request the Engine tokenizes the input with padding and
// truncation up to the request's max length, runs one forward pass over the
// whole batch, takes the model's last hidden state (batch x sequence x
// hidden), and mean-pools across the sequence axis to yield one vector per
// input text.
//
// The mean currently runs over every sequence position, padding included;
// see Engine.EmbedBatch for the tradeoff.
//
// # Devices
//
// The compute device is chosen by probing ONNX Runtime execution providers
// in priority order: CUDA, then CoreML, then CPU. DEVICE pins a specific
// provider; probing failures fall through, but a pinned device that cannot
// initialize fails startup.
//
// # Concurrency
//
// Tokenizer truncation settings are per-request state and the forward pass
// is compute-bound, so the Engine serializes both under one mutex. Callers
// may invoke it from any number of goroutines; requests run to completion in
// arrival order.
//
// # Configuration
//
//	MODEL_NAME                 pretrained model identifier (default microsoft/codebert-base)
//	MODEL_PATH                 root directory of model artifacts (default models)
//	MODEL_AUTO_FETCH           download missing artifacts at startup (default false)
//	DEVICE                     auto, cuda, coreml, or cpu (default auto)
//	ONNX_FILENAME              model graph file relative to the model dir (default model.onnx)
//	ORT_SHARED_LIBRARY_PATH    onnxruntime shared library location (default: system lookup)
package inference
