package hw

import (
	"context"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

// SystemProbe implements HostProbe on top of gopsutil.
type SystemProbe struct{}

// NewHostProbe returns the gopsutil backed HostProbe.
func NewHostProbe() *SystemProbe {
	return &SystemProbe{}
}

func (SystemProbe) VirtualMemory(ctx context.Context) (*mem.VirtualMemoryStat, error) {
	return mem.VirtualMemoryWithContext(ctx)
}

func (SystemProbe) PlatformInformation(ctx context.Context) (string, string, string, error) {
	return host.PlatformInformationWithContext(ctx)
}

func (SystemProbe) KernelVersion(ctx context.Context) (string, error) {
	return host.KernelVersionWithContext(ctx)
}

func (SystemProbe) CPUCounts(ctx context.Context, logical bool) (int, error) {
	return cpu.CountsWithContext(ctx, logical)
}

func (SystemProbe) CPUInfo(ctx context.Context) ([]cpu.InfoStat, error) {
	return cpu.InfoWithContext(ctx)
}

// Partitions lists mounted partitions. With all=false gopsutil skips
// pseudo filesystems.
func (SystemProbe) Partitions(ctx context.Context, all bool) ([]disk.PartitionStat, error) {
	return disk.PartitionsWithContext(ctx, all)
}

func (SystemProbe) Usage(ctx context.Context, path string) (*disk.UsageStat, error) {
	return disk.UsageWithContext(ctx, path)
}

func (SystemProbe) Temperatures(ctx context.Context) ([]host.TemperatureStat, error) {
	return host.SensorsTemperaturesWithContext(ctx)
}
