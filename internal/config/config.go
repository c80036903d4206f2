// Package config loads the per-deployment YAML configuration: backend
// selection, success-code conventions, device index, FPGA bitstream path
// and diagnostic log location.
package config

import (
	"fmt"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/dmd-tools/d4100ctl/internal/dmd"
	"github.com/dmd-tools/d4100ctl/internal/frame"
)

// Backend names accepted in the configuration.
const (
	BackendNative  = "native"
	BackendManaged = "managed"
)

// Config is the deployment configuration.
type Config struct {
	// Backend selects which binding drives the board: "native" or "managed".
	Backend string `yaml:"backend"`

	Native  NativeConfig  `yaml:"native"`
	Managed ManagedConfig `yaml:"managed"`
	Log     LogConfig     `yaml:"log"`
}

// NativeConfig configures the native library binding.
type NativeConfig struct {
	// Convention is the success-code convention of this library build:
	// "one" or "zero".
	Convention string `yaml:"convention"`

	// DeviceIndex selects the board by enumeration index.
	DeviceIndex int16 `yaml:"device_index"`

	// EnsureOverride makes SetMode enable the software override first.
	EnsureOverride bool `yaml:"ensure_override"`
}

// ManagedConfig configures the managed control binding.
type ManagedConfig struct {
	Convention     string `yaml:"convention"`
	DeviceIndex    int16  `yaml:"device_index"`
	EnsureOverride bool   `yaml:"ensure_override"`

	// FPGABin is the bitstream file streamed to the board at connect time.
	FPGABin string `yaml:"fpga_bin"`

	// Threshold is the RGB-to-binary conversion cutoff.
	Threshold uint8 `yaml:"threshold"`
}

// LogConfig configures the append-only diagnostic log.
type LogConfig struct {
	// File receives every operation's diagnostic line. Empty logs to
	// stderr only.
	File string `yaml:"file"`
}

// Default returns the configuration used when no file is given: native
// backend, the vendor library's stock success convention, managed control's
// zero convention, no override guard.
func Default() *Config {
	return &Config{
		Backend: BackendNative,
		Native:  NativeConfig{Convention: "one"},
		Managed: ManagedConfig{Convention: "zero", Threshold: frame.DefaultThreshold},
	}
}

// Load reads and validates the configuration file at path. An empty path
// yields Default().
func Load(fs afero.Fs, path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %q: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Backend != BackendNative && c.Backend != BackendManaged {
		return fmt.Errorf("unknown backend %q", c.Backend)
	}
	if _, ok := dmd.ParseConvention(c.Native.Convention); !ok {
		return fmt.Errorf("unknown native convention %q", c.Native.Convention)
	}
	if _, ok := dmd.ParseConvention(c.Managed.Convention); !ok {
		return fmt.Errorf("unknown managed convention %q", c.Managed.Convention)
	}
	return nil
}

// NativeConvention returns the parsed native success convention.
func (c *Config) NativeConvention() dmd.Convention {
	conv, _ := dmd.ParseConvention(c.Native.Convention)
	return conv
}

// ManagedConvention returns the parsed managed success convention.
func (c *Config) ManagedConvention() dmd.Convention {
	conv, _ := dmd.ParseConvention(c.Managed.Convention)
	return conv
}
