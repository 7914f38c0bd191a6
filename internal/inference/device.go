package inference

import (
	"fmt"

	ort "github.com/yalue/onnxruntime_go"

	"github.com/codementor/codebert-server/internal/logger"
)

// Compute device names. These are the ONNX Runtime execution providers the
// engine knows how to initialize, in probe priority order.
const (
	DeviceAuto   = "auto"
	DeviceCUDA   = "cuda"
	DeviceCoreML = "coreml"
	DeviceCPU    = "cpu"
)

// sessionOptionsForDevice builds session options for the configured device
// and returns the device name that ended up active.
//
// DeviceAuto probes CUDA first, then CoreML, then settles on CPU. A pinned
// device that cannot initialize is an error: silently serving on the wrong
// device would make health reports lie.
func sessionOptionsForDevice(cfg Config, log *logger.Logger) (*ort.SessionOptions, string, error) {
	options, err := ort.NewSessionOptions()
	if err != nil {
		return nil, "", fmt.Errorf("inference: create session options: %w", err)
	}

	switch cfg.Device {
	case DeviceCPU:
		return options, DeviceCPU, nil

	case DeviceCUDA:
		if err := appendCUDAProvider(options); err != nil {
			options.Destroy()
			return nil, "", fmt.Errorf("inference: CUDA requested but unavailable: %w", err)
		}
		return options, DeviceCUDA, nil

	case DeviceCoreML:
		if err := appendCoreMLProvider(options); err != nil {
			options.Destroy()
			return nil, "", fmt.Errorf("inference: CoreML requested but unavailable: %w", err)
		}
		return options, DeviceCoreML, nil
	}

	// DeviceAuto: fall through the providers in priority order.
	if err = appendCUDAProvider(options); err == nil {
		return options, DeviceCUDA, nil
	}
	log.Debug("CUDA execution provider unavailable", err, nil)

	if err = appendCoreMLProvider(options); err == nil {
		return options, DeviceCoreML, nil
	}
	log.Debug("CoreML execution provider unavailable", err, nil)

	return options, DeviceCPU, nil
}

func appendCUDAProvider(options *ort.SessionOptions) error {
	cudaOptions, err := ort.NewCUDAProviderOptions()
	if err != nil {
		return err
	}
	defer cudaOptions.Destroy()

	if err := cudaOptions.Update(map[string]string{"device_id": "0"}); err != nil {
		return err
	}
	return options.AppendExecutionProviderCUDA(cudaOptions)
}

func appendCoreMLProvider(options *ort.SessionOptions) error {
	return options.AppendExecutionProviderCoreMLV2(map[string]string{
		"MLComputeUnits": "ALL",
	})
}
