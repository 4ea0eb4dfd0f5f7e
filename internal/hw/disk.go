package hw

import "context"

// FetchDisks enumerates the mounted disks and reports their available and
// total space in bytes, in enumeration order. Duplicate devices are kept.
func (c *Collector) FetchDisks(ctx context.Context) []DiskEntry {
	disks := []DiskEntry{}

	partitions, err := c.probe.Partitions(ctx, false)
	if err != nil {
		c.logger.Info("disk enumeration failed", "error", err.Error())
		return disks
	}

	for _, p := range partitions {
		usage, err := c.probe.Usage(ctx, p.Mountpoint)
		if err != nil {
			c.logger.V(1).Info("skipping disk", "device", p.Device, "mountpoint", p.Mountpoint, "error", err.Error())
			continue
		}
		disks = append(disks, DiskEntry{
			Name:           p.Device,
			MountPoint:     p.Mountpoint,
			FSType:         p.Fstype,
			AvailableBytes: usage.Free,
			TotalBytes:     usage.Total,
		})
	}

	return disks
}
