package hw

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
)

// Snapshot calls every adapter exactly once and assembles the results.
// A failing or timed out adapter only degrades its own part of the
// Snapshot. Callers wanting periodic data call Snapshot again.
func (c *Collector) Snapshot(ctx context.Context) *Snapshot {
	start := time.Now()
	snap := &Snapshot{TakenAt: start.UTC()}

	// Each task writes a distinct field of snap.
	tasks := []func(context.Context){
		func(ctx context.Context) {
			snap.Memory = bounded(ctx, c, "memory", MemoryInfo{}, c.FetchMemory)
		},
		func(ctx context.Context) {
			snap.OS = bounded(ctx, c, "os", OSInfo{}, c.FetchOS)
		},
		func(ctx context.Context) {
			snap.CPU = bounded(ctx, c, "cpu", CPUInfo{}, c.FetchCPU)
		},
		func(ctx context.Context) {
			snap.Disks = bounded(ctx, c, "disks", []DiskEntry{}, c.FetchDisks)
		},
		func(ctx context.Context) {
			snap.Sensors = bounded(ctx, c, "sensors", []SensorEntry{}, c.FetchSensors)
		},
		func(ctx context.Context) {
			snap.GPU = bounded(ctx, c, "gpu", (*GPUInfo)(nil), c.FetchGPU)
		},
	}

	if c.parallel {
		var g errgroup.Group
		for _, task := range tasks {
			g.Go(func() error {
				task(ctx)
				return nil
			})
		}
		_ = g.Wait()
	} else {
		for _, task := range tasks {
			task(ctx)
		}
	}

	c.logger.V(1).Info("snapshot complete",
		"duration", time.Since(start),
		"disks", len(snap.Disks),
		"sensors", len(snap.Sensors),
		"gpu", snap.GPU != nil,
	)
	return snap
}

// bounded runs fetch under the collector's per-adapter timeout and returns
// fallback if the deadline passes first.
func bounded[T any](ctx context.Context, c *Collector, name string, fallback T, fetch func(context.Context) T) T {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	done := make(chan T, 1)
	go func() {
		done <- fetch(ctx)
	}()

	select {
	case v := <-done:
		return v
	case <-ctx.Done():
		c.logger.Info("adapter did not complete", "adapter", name, "error", ctx.Err().Error())
		return fallback
	}
}
