package hw

import "context"

// FetchMemory reports total and used physical memory. A failed query
// yields zero values; the numbers are passed through unvalidated.
func (c *Collector) FetchMemory(ctx context.Context) MemoryInfo {
	vm, err := c.probe.VirtualMemory(ctx)
	if err != nil {
		c.logger.V(1).Info("memory info unavailable", "error", err.Error())
		return MemoryInfo{}
	}
	return MemoryInfo{
		TotalBytes: vm.Total,
		UsedBytes:  vm.Used,
	}
}
