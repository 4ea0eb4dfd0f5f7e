package hw

import (
	"context"
	"time"

	"github.com/jaypipes/ghw"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

// Snapshot is the aggregated hardware state captured by one call to
// Collector.Snapshot. It is not modified after construction.
type Snapshot struct {
	TakenAt time.Time     `json:"takenAt" yaml:"takenAt"`
	Memory  MemoryInfo    `json:"memory" yaml:"memory"`
	OS      OSInfo        `json:"os" yaml:"os"`
	CPU     CPUInfo       `json:"cpu" yaml:"cpu"`
	Disks   []DiskEntry   `json:"disks" yaml:"disks"`
	Sensors []SensorEntry `json:"sensors" yaml:"sensors"`
	GPU     *GPUInfo      `json:"gpu,omitempty" yaml:"gpu,omitempty"`
}

// MemoryInfo holds physical memory usage in bytes.
type MemoryInfo struct {
	TotalBytes uint64 `json:"totalBytes" yaml:"totalBytes"`
	UsedBytes  uint64 `json:"usedBytes" yaml:"usedBytes"`
}

// OSInfo holds the operating system identity. A nil field is unknown.
type OSInfo struct {
	Name          *string `json:"name,omitempty" yaml:"name,omitempty"`
	KernelVersion *string `json:"kernelVersion,omitempty" yaml:"kernelVersion,omitempty"`
	OSVersion     *string `json:"osVersion,omitempty" yaml:"osVersion,omitempty"`
}

// CPUInfo holds the logical CPU count, the brand of the first CPU and the
// current frequency of CPU 0 when the platform exposes it.
type CPUInfo struct {
	LogicalCount   uint32  `json:"logicalCount" yaml:"logicalCount"`
	Brand          string  `json:"brand" yaml:"brand"`
	CurrentFreqMHz *uint32 `json:"currentFreqMHz,omitempty" yaml:"currentFreqMHz,omitempty"`
}

// DiskEntry describes one mounted disk. Sizes are raw bytes.
type DiskEntry struct {
	Name           string `json:"name" yaml:"name"`
	MountPoint     string `json:"mountPoint" yaml:"mountPoint"`
	FSType         string `json:"fsType" yaml:"fsType"`
	AvailableBytes uint64 `json:"availableBytes" yaml:"availableBytes"`
	TotalBytes     uint64 `json:"totalBytes" yaml:"totalBytes"`
}

// SensorEntry is a single thermal sensor reading.
type SensorEntry struct {
	Label              string  `json:"label" yaml:"label"`
	TemperatureCelsius float32 `json:"temperatureCelsius" yaml:"temperatureCelsius"`
}

// GPUInfo describes the GPU at Index. TemperatureCelsius is nil when the
// temperature sensor could not be read.
type GPUInfo struct {
	Index              int      `json:"index" yaml:"index"`
	Name               string   `json:"name" yaml:"name"`
	MemoryUsedBytes    uint64   `json:"memoryUsedBytes" yaml:"memoryUsedBytes"`
	MemoryTotalBytes   uint64   `json:"memoryTotalBytes" yaml:"memoryTotalBytes"`
	TemperatureCelsius *float32 `json:"temperatureCelsius,omitempty" yaml:"temperatureCelsius,omitempty"`
}

// HardwareInfo contains the detailed hardware inventory reported by ghw.
type HardwareInfo struct {
	CPU          *ghw.CPUInfo    `json:"cpu" yaml:"cpu"`
	Memory       *ghw.MemoryInfo `json:"memory" yaml:"memory"`
	BlockStorage *ghw.BlockInfo  `json:"block_storage" yaml:"block_storage"`
	GPU          *ghw.GPUInfo    `json:"gpu,omitempty" yaml:"gpu,omitempty"`
}

// HostProbe is the in-process hardware enumeration interface used by the
// memory, OS, CPU, disk and sensor adapters.
type HostProbe interface {
	VirtualMemory(ctx context.Context) (*mem.VirtualMemoryStat, error)
	PlatformInformation(ctx context.Context) (platform, family, version string, err error)
	KernelVersion(ctx context.Context) (string, error)
	CPUCounts(ctx context.Context, logical bool) (int, error)
	CPUInfo(ctx context.Context) ([]cpu.InfoStat, error)
	Partitions(ctx context.Context, all bool) ([]disk.PartitionStat, error)
	Usage(ctx context.Context, path string) (*disk.UsageStat, error)
	Temperatures(ctx context.Context) ([]host.TemperatureStat, error)
}

// GPUDriver is the vendor GPU management interface.
type GPUDriver interface {
	Init() error
	Shutdown() error
	DeviceByIndex(index int) (GPUDevice, error)
}

// GPUDevice is a handle to one GPU obtained from a GPUDriver.
type GPUDevice interface {
	Name() (string, error)
	MemoryInfo() (used, total uint64, err error)
	Temperature() (uint32, error)
}
