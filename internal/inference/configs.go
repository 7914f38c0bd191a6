package inference

import (
	"fmt"
	"os"
)

type Config struct {
	// ModelName identifies the pretrained model, in HuggingFace owner/name
	// form. Artifacts are expected under ModelPath/<ModelName>/.
	ModelName string

	// ModelPath is the root directory holding model artifacts.
	ModelPath string

	// OnnxFilename is the graph file path relative to the model directory.
	OnnxFilename string

	// Device pins the compute device. One of the Device* constants;
	// DeviceAuto probes CUDA, then CoreML, then CPU.
	Device string

	// SharedLibraryPath points at the onnxruntime shared library. Empty
	// leaves the runtime's default lookup in place.
	SharedLibraryPath string

	// AutoFetch downloads missing artifacts from the model hub during
	// startup instead of failing. Off by default; fetching is normally an
	// explicit deploy step.
	AutoFetch bool
}

// NewConfig reads from environment variables.
func NewConfig() Config {
	modelName := os.Getenv("MODEL_NAME")
	if modelName == "" {
		modelName = "microsoft/codebert-base"
	}

	modelPath := os.Getenv("MODEL_PATH")
	if modelPath == "" {
		modelPath = "models"
	}

	onnxFilename := os.Getenv("ONNX_FILENAME")
	if onnxFilename == "" {
		onnxFilename = "model.onnx"
	}

	device := os.Getenv("DEVICE")
	if device == "" {
		device = DeviceAuto
	}

	return Config{
		ModelName:         modelName,
		ModelPath:         modelPath,
		OnnxFilename:      onnxFilename,
		Device:            device,
		SharedLibraryPath: os.Getenv("ORT_SHARED_LIBRARY_PATH"),
		AutoFetch:         os.Getenv("MODEL_AUTO_FETCH") == "true",
	}
}

// Validate ensures required fields are present and the device is known.
func (c *Config) Validate() error {
	if c.ModelName == "" {
		return fmt.Errorf("inference: missing MODEL_NAME")
	}
	if c.ModelPath == "" {
		return fmt.Errorf("inference: missing MODEL_PATH")
	}
	if c.OnnxFilename == "" {
		return fmt.Errorf("inference: missing ONNX_FILENAME")
	}
	switch c.Device {
	case DeviceAuto, DeviceCUDA, DeviceCoreML, DeviceCPU:
		return nil
	default:
		return fmt.Errorf("inference: unknown device %q", c.Device)
	}
}
