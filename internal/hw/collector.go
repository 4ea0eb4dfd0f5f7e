package hw

import (
	"strconv"
	"strings"
	"time"

	"github.com/go-logr/logr"
	"github.com/spf13/afero"
)

const (
	// DefaultCPUFreqPath is the cpufreq sysfs file; {cpu} is replaced by
	// the logical CPU index.
	DefaultCPUFreqPath = "/sys/devices/system/cpu/cpu{cpu}/cpufreq/scaling_cur_freq"

	// DefaultTimeout bounds each adapter.
	DefaultTimeout = 5 * time.Second
)

// Collector queries every hardware source and assembles Snapshots. It holds
// no state between calls.
type Collector struct {
	logger      logr.Logger
	probe       HostProbe
	gpu         GPUDriver
	fs          afero.Fs
	timeout     time.Duration
	parallel    bool
	cpuFreqPath string
	gpuEnabled  bool
	gpuIndex    int
}

// Option configures a Collector.
type Option func(*Collector)

// WithLogger sets the logger.
func WithLogger(logger logr.Logger) Option {
	return func(c *Collector) {
		c.logger = logger
	}
}

// WithHostProbe replaces the gopsutil probe.
func WithHostProbe(probe HostProbe) Option {
	return func(c *Collector) {
		c.probe = probe
	}
}

// WithGPUDriver replaces the NVML driver.
func WithGPUDriver(driver GPUDriver) Option {
	return func(c *Collector) {
		c.gpu = driver
	}
}

// WithFs sets the filesystem the cpufreq file is read from.
func WithFs(fs afero.Fs) Option {
	return func(c *Collector) {
		c.fs = fs
	}
}

// WithTimeout bounds each adapter call. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(c *Collector) {
		c.timeout = d
	}
}

// WithParallel runs the adapters concurrently.
func WithParallel(parallel bool) Option {
	return func(c *Collector) {
		c.parallel = parallel
	}
}

// WithCPUFreqPath overrides DefaultCPUFreqPath.
func WithCPUFreqPath(path string) Option {
	return func(c *Collector) {
		c.cpuFreqPath = path
	}
}

// WithGPU enables or disables the GPU adapter and selects the device index.
func WithGPU(enabled bool, index int) Option {
	return func(c *Collector) {
		c.gpuEnabled = enabled
		c.gpuIndex = index
	}
}

// NewCollector creates a Collector backed by gopsutil, NVML and the OS
// filesystem unless overridden by opts.
func NewCollector(opts ...Option) *Collector {
	c := &Collector{
		logger:      logr.Discard(),
		timeout:     DefaultTimeout,
		parallel:    true,
		cpuFreqPath: DefaultCPUFreqPath,
		gpuEnabled:  true,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.probe == nil {
		c.probe = NewHostProbe()
	}
	if c.gpu == nil {
		c.gpu = NewNVMLDriver()
	}
	if c.fs == nil {
		c.fs = afero.NewOsFs()
	}
	if c.cpuFreqPath == "" {
		c.cpuFreqPath = DefaultCPUFreqPath
	}
	c.logger = c.logger.WithName("collector")
	return c
}

func cpuFreqPath(template string, cpu int) string {
	return strings.ReplaceAll(template, "{cpu}", strconv.Itoa(cpu))
}
