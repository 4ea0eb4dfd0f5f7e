package hw

import (
	"context"
	"strings"
)

// FetchOS looks up the distribution name, kernel version and OS version.
// Each lookup is independent and a missing value is left nil.
func (c *Collector) FetchOS(ctx context.Context) OSInfo {
	var info OSInfo

	platform, _, version, err := c.probe.PlatformInformation(ctx)
	if err != nil {
		c.logger.V(1).Info("platform information unavailable", "error", err.Error())
	} else {
		info.Name = optionalString(platform)
		info.OSVersion = optionalString(version)
	}

	kernel, err := c.probe.KernelVersion(ctx)
	if err != nil {
		c.logger.V(1).Info("kernel version unavailable", "error", err.Error())
	} else {
		info.KernelVersion = optionalString(kernel)
	}

	return info
}

func optionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
