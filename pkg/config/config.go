// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mchmarny/patterns/pkg/defaults"
	perrors "github.com/mchmarny/patterns/pkg/errors"
	"github.com/mchmarny/patterns/pkg/serializer"
)

// EnvVarConfig names the environment variable holding the config file path.
const EnvVarConfig = "PATTERNS_CONFIG"

// Config holds settings shared by all commands. Flags set on the command
// line take precedence over file values.
type Config struct {
	LogLevel string       `json:"logLevel,omitempty" yaml:"logLevel,omitempty"`
	Format   string       `json:"format,omitempty" yaml:"format,omitempty"`
	Run      RunConfig    `json:"run" yaml:"run"`
	Stress   StressConfig `json:"stress" yaml:"stress"`
}

// RunConfig configures the example runner.
type RunConfig struct {
	Timeout     Duration `json:"timeout,omitempty" yaml:"timeout,omitempty"`
	Parallelism int      `json:"parallelism,omitempty" yaml:"parallelism,omitempty"`
}

// StressConfig configures the singleton stress command.
type StressConfig struct {
	Goroutines int  `json:"goroutines,omitempty" yaml:"goroutines,omitempty"`
	FailFirst  bool `json:"failFirst,omitempty" yaml:"failFirst,omitempty"`
}

// Default returns a Config populated from pkg/defaults.
func Default() *Config {
	return &Config{
		LogLevel: defaults.LogLevel,
		Format:   defaults.OutputFormat,
		Run: RunConfig{
			Timeout:     Duration(defaults.ExampleRunTimeout),
			Parallelism: defaults.RunParallelism,
		},
		Stress: StressConfig{
			Goroutines: defaults.StressGoroutines,
		},
	}
}

// Load reads path (YAML or JSON by extension) over the defaults and
// validates the result. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	path = strings.TrimSpace(path)
	if path == "" {
		return cfg, nil
	}

	format := serializer.FormatFromPath(path)
	r, err := serializer.NewFileReader(format, path, serializer.WithStrictFields())
	if err != nil {
		return nil, perrors.WrapWithContext(perrors.ErrCodeInvalidRequest, "failed to open config", err,
			map[string]any{"path": path})
	}
	defer func() {
		if closeErr := r.Close(); closeErr != nil {
			slog.Warn("failed to close config file", "path", path, "error", closeErr)
		}
	}()

	if err := r.Deserialize(cfg); err != nil {
		return nil, perrors.WrapWithContext(perrors.ErrCodeInvalidRequest, "failed to parse config", err,
			map[string]any{"path": path})
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	slog.Debug("config loaded", "path", path, "format", format)
	return cfg, nil
}

// Validate rejects unknown formats, log levels and non-positive limits.
func (c *Config) Validate() error {
	if _, err := serializer.ParseFormat(c.Format); err != nil {
		return perrors.Wrap(perrors.ErrCodeInvalidRequest, "invalid format", err)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return perrors.NewWithContext(perrors.ErrCodeInvalidRequest, "invalid log level",
			map[string]any{"logLevel": c.LogLevel})
	}
	if c.Run.Timeout <= 0 {
		return perrors.NewWithContext(perrors.ErrCodeInvalidRequest, "run timeout must be positive",
			map[string]any{"timeout": c.Run.Timeout.String()})
	}
	if c.Run.Parallelism <= 0 {
		return perrors.NewWithContext(perrors.ErrCodeInvalidRequest, "run parallelism must be positive",
			map[string]any{"parallelism": c.Run.Parallelism})
	}
	if c.Stress.Goroutines <= 0 || c.Stress.Goroutines > defaults.StressMaxGoroutines {
		return perrors.NewWithContext(perrors.ErrCodeInvalidRequest,
			fmt.Sprintf("stress goroutines must be between 1 and %d", defaults.StressMaxGoroutines),
			map[string]any{"goroutines": c.Stress.Goroutines})
	}
	return nil
}

// Duration is a time.Duration that reads and writes as a Go duration
// string ("5s", "250ms") in both JSON and YAML.
type Duration time.Duration

// Std returns d as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

func (d Duration) String() string {
	return time.Duration(d).String()
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("duration must be a string: %w", err)
	}
	return d.parse(s)
}

func (d Duration) MarshalYAML() (any, error) {
	return d.String(), nil
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return fmt.Errorf("duration must be a string: %w", err)
	}
	return d.parse(s)
}

func (d *Duration) parse(s string) error {
	v, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(v)
	return nil
}
