// Package config loads the kerneldemo TOML configuration: default edge
// policy, channel mode, label and log level, plus a library of named
// kernels that extends the builtin presets.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/convolve"
	"github.com/gogpu/convolve/render"
)

// Errors returned while loading a configuration.
var (
	ErrDuplicateKernel = errors.New("config: duplicate kernel name")
	ErrUnnamedKernel   = errors.New("config: kernel without a name")
	ErrUnknownKey      = errors.New("config: unknown key")
	ErrUnknownLevel    = errors.New("config: unknown log level")
)

// file mirrors the TOML document.
type file struct {
	LogLevel string        `toml:"log_level"`
	Edge     string        `toml:"edge"`
	Mode     string        `toml:"mode"`
	Label    string        `toml:"label"`
	Kernels  []kernelEntry `toml:"kernel"`
}

type kernelEntry struct {
	Name        string      `toml:"name"`
	Description string      `toml:"description"`
	Divisor     *float64    `toml:"divisor"`
	Weights     [][]float64 `toml:"weights"`
}

// Config is a validated configuration.
type Config struct {
	LogLevel slog.Level
	Edge     convolve.EdgePolicy
	Mode     convolve.ChannelMode
	Label    render.Label

	kernels map[string]convolve.Preset
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		LogLevel: slog.LevelWarn,
		Edge:     convolve.EdgePassthrough,
		Mode:     convolve.ChannelColor,
		Label:    render.LabelNone,
		kernels:  map[string]convolve.Preset{},
	}
}

// Load reads and validates the TOML file at path.
func Load(path string) (*Config, error) {
	var f file
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return build(f, md)
}

// Parse validates a TOML document held in memory.
func Parse(data string) (*Config, error) {
	var f file
	md, err := toml.Decode(data, &f)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return build(f, md)
}

func build(f file, md toml.MetaData) (*Config, error) {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(keys, ", "))
	}

	cfg := Default()
	var err error
	if f.LogLevel != "" {
		if cfg.LogLevel, err = ParseLevel(f.LogLevel); err != nil {
			return nil, err
		}
	}
	if cfg.Edge, err = convolve.ParseEdgePolicy(f.Edge); err != nil {
		return nil, fmt.Errorf("config: edge: %w", err)
	}
	if f.Mode != "" {
		if cfg.Mode, err = convolve.ParseChannelMode(f.Mode); err != nil {
			return nil, fmt.Errorf("config: mode: %w", err)
		}
	}
	if cfg.Label, err = render.ParseLabel(f.Label); err != nil {
		return nil, fmt.Errorf("config: label: %w", err)
	}

	for i, e := range f.Kernels {
		name := strings.TrimSpace(e.Name)
		if name == "" {
			return nil, fmt.Errorf("%w (entry %d)", ErrUnnamedKernel, i+1)
		}
		if _, dup := cfg.kernels[name]; dup {
			return nil, fmt.Errorf("%w %q", ErrDuplicateKernel, name)
		}
		k := entryKernel(e)
		if err := k.Validate(); err != nil {
			return nil, fmt.Errorf("config: kernel %q: %w", name, err)
		}
		cfg.kernels[name] = convolve.Preset{Name: name, Description: e.Description, Kernel: k}
	}

	convolve.Logger().Debug("config: loaded",
		"edge", cfg.Edge.String(), "mode", cfg.Mode.String(), "kernels", len(cfg.kernels))
	return cfg, nil
}

// entryKernel builds the kernel for an entry. A missing divisor means the
// weight sum, or 1 when the weights sum to zero.
func entryKernel(e kernelEntry) convolve.Kernel {
	k := convolve.Kernel{Weights: e.Weights, Divisor: 1}
	if e.Divisor == nil {
		return k.Normalized()
	}
	k.Divisor = *e.Divisor
	return k
}

// Kernel looks name up in the file kernels first and the builtin presets
// second.
func (c *Config) Kernel(name string) (convolve.Kernel, bool) {
	if p, ok := c.kernels[name]; ok {
		return copyKernel(p.Kernel), true
	}
	return convolve.LookupPreset(name)
}

func copyKernel(k convolve.Kernel) convolve.Kernel {
	w := make([][]float64, len(k.Weights))
	for i, row := range k.Weights {
		w[i] = append([]float64(nil), row...)
	}
	return convolve.Kernel{Weights: w, Divisor: k.Divisor}
}

// Presets returns the builtin presets followed by the file kernels that do
// not shadow one, with shadowed builtins replaced in place.
func (c *Config) Presets() []convolve.Preset {
	builtin := convolve.Presets()
	seen := make(map[string]bool, len(builtin))
	out := make([]convolve.Preset, 0, len(builtin)+len(c.kernels))
	for _, p := range builtin {
		if fp, ok := c.kernels[p.Name]; ok {
			p = fp
		}
		seen[p.Name] = true
		out = append(out, p)
	}

	extra := make([]string, 0, len(c.kernels))
	for name := range c.kernels {
		if !seen[name] {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	for _, name := range extra {
		out = append(out, c.kernels[name])
	}
	return out
}

// ParseLevel parses a log level name such as "debug" or "warn".
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("%w %q", ErrUnknownLevel, s)
	}
	return l, nil
}
