package hw

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/afero"
)

// FetchCPU reports the logical CPU count, the brand string of the first CPU
// and the current frequency of CPU 0. Each part degrades on its own.
func (c *Collector) FetchCPU(ctx context.Context) CPUInfo {
	var info CPUInfo

	infos, err := c.probe.CPUInfo(ctx)
	if err != nil {
		c.logger.V(1).Info("cpu enumeration failed", "error", err.Error())
	}

	count, err := c.probe.CPUCounts(ctx, true)
	if err != nil {
		c.logger.V(1).Info("logical cpu count unavailable, using enumerated cpus", "error", err.Error())
		count = len(infos)
	}
	if count > 0 {
		info.LogicalCount = uint32(count)
		if len(infos) > 0 {
			info.Brand = strings.TrimSpace(infos[0].ModelName)
		}
	}

	mhz, err := readCPUFreqMHz(c.fs, cpuFreqPath(c.cpuFreqPath, 0))
	if err != nil {
		c.logger.V(1).Info("cpu frequency unavailable", "error", err.Error())
	} else {
		info.CurrentFreqMHz = &mhz
	}

	return info
}

// readCPUFreqMHz parses a cpufreq file holding a decimal kHz value.
func readCPUFreqMHz(fs afero.Fs, path string) (uint32, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return 0, fmt.Errorf("failed to read %s: %w", path, err)
	}
	khz, err := strconv.ParseUint(strings.TrimSpace(string(data)), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return uint32(khz / 1000), nil
}
