package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hiveden/sysfetch/internal/hw"
	"github.com/spf13/viper"
)

const (
	DefaultAddr     = ":8080"
	DefaultInterval = 5 * time.Second
	EnvPrefix       = "SYSFETCH"
)

// Config holds the settings shared by the CLI and the API server.
type Config struct {
	Timeout     time.Duration `mapstructure:"timeout"`
	Parallel    bool          `mapstructure:"parallel"`
	CPUFreqPath string        `mapstructure:"cpufreq_path"`
	GPU         GPUConfig     `mapstructure:"gpu"`
	Log         LogConfig     `mapstructure:"log"`
	Addr        string        `mapstructure:"addr"`
	Interval    time.Duration `mapstructure:"interval"`
}

// GPUConfig selects the GPU that is reported.
type GPUConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Index   int  `mapstructure:"index"`
}

// LogConfig controls logger construction.
type LogConfig struct {
	Level       int  `mapstructure:"level"`
	Development bool `mapstructure:"development"`
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("timeout", hw.DefaultTimeout)
	v.SetDefault("parallel", true)
	v.SetDefault("cpufreq_path", hw.DefaultCPUFreqPath)
	v.SetDefault("gpu.enabled", true)
	v.SetDefault("gpu.index", 0)
	v.SetDefault("log.level", 0)
	v.SetDefault("log.development", false)
	v.SetDefault("addr", DefaultAddr)
	v.SetDefault("interval", DefaultInterval)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Load reads the optional config file and returns the validated Config.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Timeout < 0 {
		return errors.New("timeout must not be negative")
	}
	if c.Interval <= 0 {
		return errors.New("interval must be positive")
	}
	if c.GPU.Index < 0 {
		return errors.New("gpu index must not be negative")
	}
	return nil
}

// CollectorOptions translates the config into hw.Collector options.
func (c *Config) CollectorOptions() []hw.Option {
	return []hw.Option{
		hw.WithTimeout(c.Timeout),
		hw.WithParallel(c.Parallel),
		hw.WithCPUFreqPath(c.CPUFreqPath),
		hw.WithGPU(c.GPU.Enabled, c.GPU.Index),
	}
}
