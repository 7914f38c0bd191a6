package inference

import (
	"context"
	"fmt"
	"time"

	"github.com/sugarme/tokenizer"
	ort "github.com/yalue/onnxruntime_go"
)

// Embed returns the embedding vector for a single text.
func (e *Engine) Embed(ctx context.Context, text string, maxLength int) ([]float32, error) {
	vectors, err := e.run([]string{text}, maxLength)
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}

// EmbedBatch returns one vector per input text, in input order. The whole
// batch is tokenized together, padded to its longest sequence, and run as a
// single forward pass. An empty batch returns an empty result without
// touching the model.
//
// Pooling averages over every sequence position, padding included, so a
// short text embedded inside a batch of longer ones yields a slightly
// different vector than the same text embedded alone. Consumers have
// persisted vectors produced this way; single-text calls are unaffected
// because they carry no padding.
func (e *Engine) EmbedBatch(ctx context.Context, texts []string, maxLength int) ([][]float32, error) {
	if len(texts) == 0 {
		return [][]float32{}, nil
	}
	return e.run(texts, maxLength)
}

// run is the shared tokenize-and-infer path. It holds the engine mutex for
// the duration: truncation parameters are per-request tokenizer state, and
// the forward pass saturates the device anyway.
func (e *Engine) run(texts []string, maxLength int) ([][]float32, error) {
	if maxLength < 1 {
		return nil, fmt.Errorf("inference: max length must be positive, got %d", maxLength)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return nil, ErrNotReady
	}

	encodings, err := e.encode(texts, maxLength)
	if err != nil {
		return nil, err
	}

	batch := len(encodings)
	seqLen := len(encodings[0].Ids)
	if seqLen == 0 {
		return nil, fmt.Errorf("inference: tokenizer produced an empty sequence")
	}

	ids := make([]int64, 0, batch*seqLen)
	mask := make([]int64, 0, batch*seqLen)
	typeIDs := make([]int64, 0, batch*seqLen)
	for _, enc := range encodings {
		if len(enc.Ids) != seqLen || len(enc.AttentionMask) != seqLen {
			return nil, fmt.Errorf("inference: ragged batch after padding")
		}
		for _, id := range enc.Ids {
			ids = append(ids, int64(id))
		}
		for _, m := range enc.AttentionMask {
			mask = append(mask, int64(m))
		}
		for _, t := range enc.TypeIds {
			typeIDs = append(typeIDs, int64(t))
		}
	}
	// Some vocabularies omit type ids entirely; the graph still wants a
	// zero tensor of the right shape.
	if len(typeIDs) < batch*seqLen {
		typeIDs = make([]int64, batch*seqLen)
	}

	shape := ort.NewShape(int64(batch), int64(seqLen))

	tensors := make([]ort.Value, 0, len(e.inputNames))
	destroyTensors := func() {
		for _, t := range tensors {
			t.Destroy()
		}
	}
	for _, name := range e.inputNames {
		var data []int64
		switch name {
		case tensorInputIDs:
			data = ids
		case tensorAttentionMask:
			data = mask
		case tensorTokenTypeIDs:
			data = typeIDs
		}
		t, err := ort.NewTensor(shape, data)
		if err != nil {
			destroyTensors()
			return nil, fmt.Errorf("inference: create %s tensor: %w", name, err)
		}
		tensors = append(tensors, t)
	}
	defer destroyTensors()

	outputs := []ort.Value{nil}
	if err := e.session.Run(tensors, outputs); err != nil {
		return nil, fmt.Errorf("inference: forward pass: %w", err)
	}

	hidden, ok := outputs[0].(*ort.Tensor[float32])
	if !ok {
		outputs[0].Destroy()
		return nil, fmt.Errorf("inference: %s is not a float32 tensor", e.outputName)
	}
	defer hidden.Destroy()

	outShape := hidden.GetShape()
	if len(outShape) != 3 || int(outShape[0]) != batch {
		return nil, fmt.Errorf("inference: unexpected %s shape %v", e.outputName, outShape)
	}

	return meanPool(hidden.GetData(), batch, int(outShape[1]), int(outShape[2])), nil
}

// encode applies this request's truncation bound and tokenizes the batch.
// Must be called with the engine mutex held.
func (e *Engine) encode(texts []string, maxLength int) ([]tokenizer.Encoding, error) {
	// The tokenizer subtracts the post processor's special tokens from
	// the bound before truncating and silently skips truncation once
	// nothing remains, letting oversized inputs straight through to the
	// session. Raise tiny bounds so at least one content position is left.
	limit := maxLength
	if post := e.tk.GetPostProcessor(); post != nil {
		if floor := post.AddedTokens(false) + 1; limit < floor {
			limit = floor
		}
	}

	e.tk.WithTruncation(&tokenizer.TruncationParams{
		MaxLength: limit,
		Strategy:  tokenizer.LongestFirst,
		Stride:    0,
	})

	inputs := make([]tokenizer.EncodeInput, len(texts))
	for i, text := range texts {
		inputs[i] = tokenizer.NewSingleEncodeInput(tokenizer.NewInputSequence(text))
	}

	encodings, err := e.tk.EncodeBatch(inputs, true)
	if err != nil {
		return nil, fmt.Errorf("inference: tokenize: %w", err)
	}
	if len(encodings) != len(texts) {
		return nil, fmt.Errorf("inference: tokenizer returned %d encodings for %d texts", len(encodings), len(texts))
	}
	return encodings, nil
}

// ModelName returns the configured pretrained model identifier.
func (e *Engine) ModelName() string { return e.cfg.ModelName }

// Device returns the active compute device name.
func (e *Engine) Device() string { return e.device }

// Dimension returns the hidden size established by the startup probe.
func (e *Engine) Dimension() int { return e.dimension }

// LoadDuration returns how long the startup load took, probe included.
func (e *Engine) LoadDuration() time.Duration { return e.loadDuration }

// Ready reports whether the engine can serve inference calls.
func (e *Engine) Ready() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return !e.closed
}

// Close releases the session and the onnxruntime environment. The engine
// reports not ready afterwards; there is no reopen.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return nil
	}
	e.closed = true

	err := e.session.Destroy()
	if envErr := ort.DestroyEnvironment(); err == nil {
		err = envErr
	}
	return err
}
