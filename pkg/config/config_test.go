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
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mchmarny/patterns/pkg/defaults"
	perrors "github.com/mchmarny/patterns/pkg/errors"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, defaults.ExampleRunTimeout, cfg.Run.Timeout.Std())
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "patterns.yaml", `
logLevel: debug
format: json
run:
  timeout: 250ms
stress:
  goroutines: 500
  failFirst: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, 250*time.Millisecond, cfg.Run.Timeout.Std())
	assert.Equal(t, defaults.RunParallelism, cfg.Run.Parallelism, "unset field keeps its default")
	assert.Equal(t, 500, cfg.Stress.Goroutines)
	assert.True(t, cfg.Stress.FailFirst)
}

func TestLoad_JSON(t *testing.T) {
	path := writeFile(t, "patterns.json", `{"run":{"timeout":"3s","parallelism":2}}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, cfg.Run.Timeout.Std())
	assert.Equal(t, 2, cfg.Run.Parallelism)
	assert.Equal(t, defaults.OutputFormat, cfg.Format)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{name: "unknown field", file: "c.yaml", content: "colour: blue\n"},
		{name: "bad duration", file: "c.yaml", content: "run:\n  timeout: soon\n"},
		{name: "bad format", file: "c.yaml", content: "format: xml\n"},
		{name: "zero goroutines", file: "c.json", content: `{"stress":{"goroutines":-1}}`},
		{name: "numeric duration in json", file: "c.json", content: `{"run":{"timeout":5}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.file, tt.content))
			require.Error(t, err)
			assert.True(t, perrors.HasCode(err, perrors.ErrCodeInvalidRequest), "got %v", err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Equal(t, perrors.ErrCodeInvalidRequest, perrors.CodeOf(err))
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "table format", mutate: func(c *Config) { c.Format = "table" }},
		{name: "warning level", mutate: func(c *Config) { c.LogLevel = "WARNING" }},
		{name: "bad level", mutate: func(c *Config) { c.LogLevel = "trace" }, wantErr: true},
		{name: "zero timeout", mutate: func(c *Config) { c.Run.Timeout = 0 }, wantErr: true},
		{name: "zero parallelism", mutate: func(c *Config) { c.Run.Parallelism = 0 }, wantErr: true},
		{name: "too many goroutines", mutate: func(c *Config) { c.Stress.Goroutines = defaults.StressMaxGoroutines + 1 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestDuration_RoundTrip(t *testing.T) {
	d := Duration(1500 * time.Millisecond)

	b, err := d.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1.5s"`, string(b))

	var back Duration
	require.NoError(t, back.UnmarshalJSON(b))
	assert.Equal(t, d, back)

	y, err := d.MarshalYAML()
	require.NoError(t, err)
	assert.Equal(t, "1.5s", y)
}
