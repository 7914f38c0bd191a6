package inference

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/sugarme/tokenizer"
	"github.com/sugarme/tokenizer/pretrained"
	ort "github.com/yalue/onnxruntime_go"

	"github.com/codementor/codebert-server/internal/hub"
	"github.com/codementor/codebert-server/internal/logger"
)

// Graph tensor names produced by the standard HuggingFace ONNX export.
const (
	tensorInputIDs        = "input_ids"
	tensorAttentionMask   = "attention_mask"
	tensorTokenTypeIDs    = "token_type_ids"
	tensorLastHiddenState = "last_hidden_state"
)

// Engine implements Embedder over a local ONNX export of a pretrained
// encoder model.
//
// The tokenizer's truncation settings are request-scoped and the forward
// pass is compute-bound, so mu serializes the whole tokenize-and-run path.
// Everything else is written once in NewEngine and read-only afterwards.
type Engine struct {
	cfg    Config
	log    *logger.Logger
	device string

	mu      sync.Mutex
	tk      *tokenizer.Tokenizer
	session *ort.DynamicAdvancedSession
	closed  bool

	inputNames   []string
	outputName   string
	dimension    int
	loadDuration time.Duration
}

// NewEngine selects a compute device, loads the tokenizer and ONNX session
// for the configured model, and runs a probe embedding to establish the
// hidden dimension. It returns only when the engine is fully able to serve,
// so anything constructed from an Engine can assume a loaded model.
func NewEngine(cfg Config, log *logger.Logger) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()

	modelDir := filepath.Join(cfg.ModelPath, filepath.FromSlash(cfg.ModelName))
	tokenizerPath := filepath.Join(modelDir, "tokenizer.json")
	graphPath := filepath.Join(modelDir, filepath.FromSlash(cfg.OnnxFilename))

	if err := ensureArtifacts(cfg, modelDir, []string{tokenizerPath, graphPath}, log); err != nil {
		return nil, err
	}

	tk, err := pretrained.FromFile(tokenizerPath)
	if err != nil {
		return nil, fmt.Errorf("inference: load tokenizer %s: %w", tokenizerPath, err)
	}
	configurePadding(tk)

	if cfg.SharedLibraryPath != "" {
		ort.SetSharedLibraryPath(cfg.SharedLibraryPath)
	}
	if !ort.IsInitialized() {
		if err := ort.InitializeEnvironment(); err != nil {
			return nil, fmt.Errorf("inference: initialize onnxruntime: %w", err)
		}
	}

	inputNames, outputName, err := inspectGraph(graphPath)
	if err != nil {
		return nil, err
	}

	options, device, err := sessionOptionsForDevice(cfg, log)
	if err != nil {
		return nil, err
	}
	defer options.Destroy()

	session, err := ort.NewDynamicAdvancedSession(graphPath, inputNames, []string{outputName}, options)
	if err != nil {
		return nil, fmt.Errorf("inference: create session on %s: %w", device, err)
	}

	e := &Engine{
		cfg:        cfg,
		log:        log,
		device:     device,
		tk:         tk,
		session:    session,
		inputNames: inputNames,
		outputName: outputName,
	}

	// The probe proves the tokenizer/session pair end to end and pins the
	// hidden dimension reported for empty batches.
	probe, err := e.run([]string{ProbeText}, DefaultMaxLength)
	if err != nil {
		session.Destroy()
		return nil, fmt.Errorf("inference: startup probe: %w", err)
	}
	e.dimension = len(probe[0])
	e.loadDuration = time.Since(start)

	log.Info("model loaded", nil, map[string]interface{}{
		"model":     cfg.ModelName,
		"device":    device,
		"dimension": e.dimension,
		"seconds":   e.loadDuration.Seconds(),
	})

	return e, nil
}

// ensureArtifacts verifies the required files exist under modelDir, fetching
// them from the model hub when auto-fetch is enabled.
func ensureArtifacts(cfg Config, modelDir string, required []string, log *logger.Logger) error {
	var missing []string
	for _, path := range required {
		if _, err := os.Stat(path); err != nil {
			missing = append(missing, filepath.Base(path))
		}
	}
	if len(missing) == 0 {
		return nil
	}

	if !cfg.AutoFetch {
		return fmt.Errorf("%w: %v under %s (run codebert-fetch, or set MODEL_AUTO_FETCH=true)",
			ErrArtifactsMissing, missing, modelDir)
	}

	log.Info("fetching model artifacts", nil, map[string]interface{}{
		"model":   cfg.ModelName,
		"missing": missing,
	})

	client := hub.NewClient(hub.NewConfig(), log)
	if err := client.Fetch(context.Background(), cfg.ModelName, cfg.ModelPath, hub.Artifacts(cfg.OnnxFilename)); err != nil {
		return fmt.Errorf("inference: fetch model artifacts: %w", err)
	}
	return nil
}

// configurePadding sets batch-longest padding with the model's pad token.
// RoBERTa-family vocabularies use "<pad>", BERT-family use "[PAD]"; when
// neither resolves, id 0 is the conventional fallback.
func configurePadding(tk *tokenizer.Tokenizer) {
	padToken := "<pad>"
	padID, ok := tk.TokenToId(padToken)
	if !ok {
		padToken = "[PAD]"
		padID, ok = tk.TokenToId(padToken)
	}
	if !ok {
		padID = 0
	}

	tk.WithPadding(&tokenizer.PaddingParams{
		Strategy:  *tokenizer.NewPaddingStrategy(tokenizer.WithBatchLongest()),
		Direction: tokenizer.Right,
		PadId:     padID,
		PadTypeId: 0,
		PadToken:  padToken,
	})
}

// inspectGraph reads the graph's declared inputs and outputs. Input order
// matters: session inputs are positional, so the names are kept in the
// graph's own order. The hidden-state output is preferred by name with a
// fallback to the first declared output.
func inspectGraph(graphPath string) ([]string, string, error) {
	inputs, outputs, err := ort.GetInputOutputInfo(graphPath)
	if err != nil {
		return nil, "", fmt.Errorf("inference: inspect graph %s: %w", graphPath, err)
	}
	if len(inputs) == 0 || len(outputs) == 0 {
		return nil, "", fmt.Errorf("inference: graph %s declares no inputs or outputs", graphPath)
	}

	inputNames := make([]string, 0, len(inputs))
	for _, info := range inputs {
		switch info.Name {
		case tensorInputIDs, tensorAttentionMask, tensorTokenTypeIDs:
			inputNames = append(inputNames, info.Name)
		default:
			return nil, "", fmt.Errorf("inference: graph input %q is not supported", info.Name)
		}
	}

	outputName := outputs[0].Name
	for _, info := range outputs {
		if info.Name == tensorLastHiddenState {
			outputName = info.Name
			break
		}
	}

	return inputNames, outputName, nil
}
