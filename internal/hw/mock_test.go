package hw

import (
	"context"
	"errors"
	"sync"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

type mockProbe struct {
	memory      *mem.VirtualMemoryStat
	platform    string
	version     string
	kernel      string
	cpus        []cpu.InfoStat
	count       int
	partitions  []disk.PartitionStat
	usage       map[string]*disk.UsageStat
	temps       []host.TemperatureStat
	memoryErr   bool
	platformErr bool
	kernelErr   bool
	cpuInfoErr  bool
	countErr    bool
	partsErr    bool
	tempsErr    bool
	block       chan struct{}

	mu    sync.Mutex
	calls map[string]int
}

func (m *mockProbe) called(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.calls == nil {
		m.calls = map[string]int{}
	}
	m.calls[name]++
}

func (m *mockProbe) VirtualMemory(ctx context.Context) (*mem.VirtualMemoryStat, error) {
	if m.block != nil {
		<-m.block
	}
	if m.memoryErr {
		return nil, errors.New("failed to read meminfo")
	}
	return m.memory, nil
}

func (m *mockProbe) PlatformInformation(ctx context.Context) (string, string, string, error) {
	if m.platformErr {
		return "", "", "", errors.New("os-release not found")
	}
	return m.platform, "", m.version, nil
}

func (m *mockProbe) KernelVersion(ctx context.Context) (string, error) {
	if m.kernelErr {
		return "", errors.New("uname failed")
	}
	return m.kernel, nil
}

func (m *mockProbe) CPUCounts(ctx context.Context, logical bool) (int, error) {
	if m.countErr {
		return 0, errors.New("failed to count cpus")
	}
	return m.count, nil
}

func (m *mockProbe) CPUInfo(ctx context.Context) ([]cpu.InfoStat, error) {
	if m.cpuInfoErr {
		return nil, errors.New("cpuinfo unreadable")
	}
	return m.cpus, nil
}

func (m *mockProbe) Partitions(ctx context.Context, all bool) ([]disk.PartitionStat, error) {
	m.called("partitions")
	if m.partsErr {
		return nil, errors.New("mounts unreadable")
	}
	return m.partitions, nil
}

func (m *mockProbe) Usage(ctx context.Context, path string) (*disk.UsageStat, error) {
	usage, ok := m.usage[path]
	if !ok {
		return nil, errors.New("statfs failed")
	}
	return usage, nil
}

func (m *mockProbe) Temperatures(ctx context.Context) ([]host.TemperatureStat, error) {
	m.called("temperatures")
	if m.tempsErr {
		return nil, errors.New("no hwmon")
	}
	return m.temps, nil
}

type mockDevice struct {
	name      string
	used      uint64
	total     uint64
	temp      uint32
	nameErr   bool
	memoryErr bool
	tempErr   bool
	queries   *[]string
}

func (d *mockDevice) record(q string) {
	if d.queries != nil {
		*d.queries = append(*d.queries, q)
	}
}

func (d *mockDevice) Name() (string, error) {
	d.record("name")
	if d.nameErr {
		return "", errors.New("name query failed")
	}
	return d.name, nil
}

func (d *mockDevice) MemoryInfo() (uint64, uint64, error) {
	d.record("memory")
	if d.memoryErr {
		return 0, 0, errors.New("memory query failed")
	}
	return d.used, d.total, nil
}

func (d *mockDevice) Temperature() (uint32, error) {
	d.record("temperature")
	if d.tempErr {
		return 0, errors.New("temperature sensor not supported")
	}
	return d.temp, nil
}

type mockDriver struct {
	device     *mockDevice
	initErr    bool
	deviceErr  bool
	initCalls  int
	shutdowns  int
	lastIndex  int
	deviceHits int
	hang       chan struct{}
}

func (d *mockDriver) Init() error {
	d.initCalls++
	if d.hang != nil {
		<-d.hang
	}
	if d.initErr {
		return errors.New("driver not loaded")
	}
	return nil
}

func (d *mockDriver) Shutdown() error {
	d.shutdowns++
	return nil
}

func (d *mockDriver) DeviceByIndex(index int) (GPUDevice, error) {
	d.deviceHits++
	d.lastIndex = index
	if d.deviceErr {
		return nil, errors.New("invalid device index")
	}
	return d.device, nil
}

func healthyProbe() *mockProbe {
	return &mockProbe{
		memory:   &mem.VirtualMemoryStat{Total: 16 << 30, Used: 6 << 30},
		platform: "ubuntu",
		version:  "24.04",
		kernel:   "6.8.0-45-generic",
		cpus: []cpu.InfoStat{
			{CPU: 0, ModelName: "AMD Ryzen 7 5800X 8-Core Processor"},
			{CPU: 1, ModelName: "AMD Ryzen 7 5800X 8-Core Processor"},
		},
		count: 2,
		partitions: []disk.PartitionStat{
			{Device: "/dev/nvme0n1p2", Mountpoint: "/", Fstype: "ext4"},
			{Device: "/dev/sda1", Mountpoint: "/data", Fstype: "xfs"},
		},
		usage: map[string]*disk.UsageStat{
			"/":     {Path: "/", Total: 500 << 30, Free: 100 << 30},
			"/data": {Path: "/data", Total: 20 << 30, Free: 10 << 30},
		},
		temps: []host.TemperatureStat{
			{SensorKey: "k10temp_tctl", Temperature: 48.5},
			{SensorKey: "nvme_composite", Temperature: 39},
		},
	}
}

func healthyDriver() *mockDriver {
	return &mockDriver{
		device: &mockDevice{
			name:  "NVIDIA GeForce RTX 3080",
			used:  512 << 20,
			total: 10 << 30,
			temp:  54,
		},
	}
}

func (m *mockProbe) callCount(name string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[name]
}
