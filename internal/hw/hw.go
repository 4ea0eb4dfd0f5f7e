package hw

import (
	"fmt"

	"github.com/jaypipes/ghw"
)

// GetHardwareInfo returns the detailed hardware inventory: CPU topology,
// memory modules, block devices and PCI graphics cards. Graphics cards are
// optional because many hosts have no PCI bus information available.
func GetHardwareInfo() (*HardwareInfo, error) {
	cpu, err := ghw.CPU()
	if err != nil {
		return nil, fmt.Errorf("failed to get CPU info: %w", err)
	}

	memory, err := ghw.Memory()
	if err != nil {
		return nil, fmt.Errorf("failed to get memory info: %w", err)
	}

	block, err := ghw.Block()
	if err != nil {
		return nil, fmt.Errorf("failed to get block storage info: %w", err)
	}

	info := &HardwareInfo{
		CPU:          cpu,
		Memory:       memory,
		BlockStorage: block,
	}

	if gpu, err := ghw.GPU(); err == nil {
		info.GPU = gpu
	}

	return info, nil
}
