package hw

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchGPU(t *testing.T) {
	driver := healthyDriver()
	c, _ := newTestCollector(t, healthyProbe(), driver)

	info := c.FetchGPU(context.Background())
	require.NotNil(t, info)
	assert.Equal(t, 0, info.Index)
	assert.Equal(t, "NVIDIA GeForce RTX 3080", info.Name)
	assert.Equal(t, uint64(512<<20), info.MemoryUsedBytes)
	assert.Equal(t, uint64(10<<30), info.MemoryTotalBytes)
	require.NotNil(t, info.TemperatureCelsius)
	assert.Equal(t, float32(54), *info.TemperatureCelsius)
	assert.Equal(t, 1, driver.shutdowns)
}

func TestFetchGPUInitFailure(t *testing.T) {
	var queries []string
	driver := healthyDriver()
	driver.initErr = true
	driver.device.queries = &queries
	c, _ := newTestCollector(t, healthyProbe(), driver)

	assert.Nil(t, c.FetchGPU(context.Background()))
	assert.Equal(t, 1, driver.initCalls)
	assert.Equal(t, 0, driver.deviceHits)
	assert.Empty(t, queries)
	assert.Equal(t, 0, driver.shutdowns)
}

func TestFetchGPURequiredQueryFailures(t *testing.T) {
	tests := []struct {
		name   string
		driver func(*mockDriver)
	}{
		{name: "no device at index", driver: func(d *mockDriver) { d.deviceErr = true }},
		{name: "name query fails", driver: func(d *mockDriver) { d.device.nameErr = true }},
		{name: "memory query fails", driver: func(d *mockDriver) { d.device.memoryErr = true }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			driver := healthyDriver()
			tt.driver(driver)
			c, _ := newTestCollector(t, healthyProbe(), driver)

			assert.Nil(t, c.FetchGPU(context.Background()))
			assert.Equal(t, 1, driver.shutdowns, "handle must be released")
		})
	}
}

func TestQueryGPUWrapsUnavailable(t *testing.T) {
	driver := healthyDriver()
	driver.device.memoryErr = true
	c, _ := newTestCollector(t, healthyProbe(), driver)

	_, err := c.queryGPU(0)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrGPUUnavailable)
}

func TestFetchGPUTemperatureOptional(t *testing.T) {
	driver := healthyDriver()
	driver.device.tempErr = true
	c, _ := newTestCollector(t, healthyProbe(), driver)

	info := c.FetchGPU(context.Background())
	require.NotNil(t, info)
	assert.Equal(t, "NVIDIA GeForce RTX 3080", info.Name)
	assert.Equal(t, uint64(512<<20), info.MemoryUsedBytes)
	assert.Equal(t, uint64(10<<30), info.MemoryTotalBytes)
	assert.Nil(t, info.TemperatureCelsius)
}

func TestFetchGPUDisabled(t *testing.T) {
	driver := healthyDriver()
	c, _ := newTestCollector(t, healthyProbe(), driver, WithGPU(false, 0))

	assert.Nil(t, c.FetchGPU(context.Background()))
	assert.Equal(t, 0, driver.initCalls)
}

func TestFetchGPUIndex(t *testing.T) {
	driver := healthyDriver()
	c, _ := newTestCollector(t, healthyProbe(), driver, WithGPU(true, 1))

	info := c.FetchGPU(context.Background())
	require.NotNil(t, info)
	assert.Equal(t, 1, info.Index)
	assert.Equal(t, 1, driver.lastIndex)
}

func TestFetchGPUHungDriver(t *testing.T) {
	driver := healthyDriver()
	driver.hang = make(chan struct{})
	t.Cleanup(func() { close(driver.hang) })
	c, _ := newTestCollector(t, healthyProbe(), driver)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	assert.Nil(t, c.FetchGPU(ctx))
	assert.Less(t, time.Since(start), 5*time.Second)
}
