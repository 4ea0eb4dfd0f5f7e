package hw

import (
	"context"
	"errors"
	"fmt"
)

// ErrGPUUnavailable marks a GPU domain that could not be reported.
var ErrGPUUnavailable = errors.New("gpu unavailable")

// FetchGPU reports the configured GPU, or nil when GPU reporting is disabled,
// the driver cannot be initialized, or the name or memory query fails. A
// failed temperature read only leaves the temperature nil.
func (c *Collector) FetchGPU(ctx context.Context) *GPUInfo {
	if !c.gpuEnabled {
		return nil
	}

	type result struct {
		info *GPUInfo
		err  error
	}
	done := make(chan result, 1)
	go func() {
		info, err := c.queryGPU(c.gpuIndex)
		done <- result{info: info, err: err}
	}()

	select {
	case r := <-done:
		if r.err != nil {
			c.logger.Info("gpu not reported", "index", c.gpuIndex, "error", r.err.Error())
			return nil
		}
		return r.info
	case <-ctx.Done():
		c.logger.Info("gpu not reported", "index", c.gpuIndex, "error", ctx.Err().Error())
		return nil
	}
}

// queryGPU owns the driver handle for the duration of the device queries
// and releases it before returning.
func (c *Collector) queryGPU(index int) (info *GPUInfo, err error) {
	if err := c.gpu.Init(); err != nil {
		return nil, fmt.Errorf("%w: failed to initialize driver: %w", ErrGPUUnavailable, err)
	}
	defer func() {
		if serr := c.gpu.Shutdown(); serr != nil {
			c.logger.V(1).Info("gpu driver shutdown failed", "error", serr.Error())
		}
	}()

	device, err := c.gpu.DeviceByIndex(index)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get device %d: %w", ErrGPUUnavailable, index, err)
	}

	name, err := device.Name()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get device name: %w", ErrGPUUnavailable, err)
	}

	used, total, err := device.MemoryInfo()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get memory info: %w", ErrGPUUnavailable, err)
	}

	info = &GPUInfo{
		Index:            index,
		Name:             name,
		MemoryUsedBytes:  used,
		MemoryTotalBytes: total,
	}

	temp, err := device.Temperature()
	if err != nil {
		c.logger.Error(err, "failed to retrieve gpu temperature", "index", index)
	} else {
		celsius := float32(temp)
		info.TemperatureCelsius = &celsius
	}

	return info, nil
}
