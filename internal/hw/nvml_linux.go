//go:build linux && cgo

package hw

import (
	"fmt"

	"github.com/NVIDIA/go-nvml/pkg/nvml"
)

// NVMLDriver implements GPUDriver with the NVIDIA Management Library.
type NVMLDriver struct{}

// NewNVMLDriver returns a GPUDriver backed by libnvidia-ml.
func NewNVMLDriver() *NVMLDriver {
	return &NVMLDriver{}
}

func (NVMLDriver) Init() error {
	if ret := nvml.Init(); ret != nvml.SUCCESS {
		return fmt.Errorf("nvml init: %s", nvml.ErrorString(ret))
	}
	return nil
}

func (NVMLDriver) Shutdown() error {
	if ret := nvml.Shutdown(); ret != nvml.SUCCESS {
		return fmt.Errorf("nvml shutdown: %s", nvml.ErrorString(ret))
	}
	return nil
}

func (NVMLDriver) DeviceByIndex(index int) (GPUDevice, error) {
	device, ret := nvml.DeviceGetHandleByIndex(index)
	if ret != nvml.SUCCESS {
		return nil, fmt.Errorf("nvml device %d: %s", index, nvml.ErrorString(ret))
	}
	return nvmlDevice{device: device}, nil
}

type nvmlDevice struct {
	device nvml.Device
}

func (d nvmlDevice) Name() (string, error) {
	name, ret := d.device.GetName()
	if ret != nvml.SUCCESS {
		return "", fmt.Errorf("nvml name: %s", nvml.ErrorString(ret))
	}
	return name, nil
}

func (d nvmlDevice) MemoryInfo() (uint64, uint64, error) {
	memory, ret := d.device.GetMemoryInfo()
	if ret != nvml.SUCCESS {
		return 0, 0, fmt.Errorf("nvml memory info: %s", nvml.ErrorString(ret))
	}
	return memory.Used, memory.Total, nil
}

func (d nvmlDevice) Temperature() (uint32, error) {
	temp, ret := d.device.GetTemperature(nvml.TEMPERATURE_GPU)
	if ret != nvml.SUCCESS {
		return 0, fmt.Errorf("nvml temperature: %s", nvml.ErrorString(ret))
	}
	return temp, nil
}
