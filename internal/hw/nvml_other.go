//go:build !linux || !cgo

package hw

import "errors"

var errNVMLUnsupported = errors.New("nvml is only supported on linux")

// NVMLDriver reports the GPU as unavailable on platforms without NVML
// bindings.
type NVMLDriver struct{}

// NewNVMLDriver returns a GPUDriver whose Init always fails.
func NewNVMLDriver() *NVMLDriver {
	return &NVMLDriver{}
}

func (NVMLDriver) Init() error { return errNVMLUnsupported }

func (NVMLDriver) Shutdown() error { return nil }

func (NVMLDriver) DeviceByIndex(int) (GPUDevice, error) { return nil, errNVMLUnsupported }
