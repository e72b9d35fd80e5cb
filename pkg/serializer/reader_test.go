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

package serializer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type settings struct {
	LogLevel string `json:"logLevel" yaml:"logLevel"`
	Workers  int    `json:"workers" yaml:"workers"`
}

func TestReader_Deserialize(t *testing.T) {
	tests := []struct {
		name    string
		format  Format
		input   string
		opts    []ReaderOption
		want    settings
		wantErr bool
	}{
		{
			name:   "json",
			format: FormatJSON,
			input:  `{"logLevel":"debug","workers":3}`,
			want:   settings{LogLevel: "debug", Workers: 3},
		},
		{
			name:   "yaml",
			format: FormatYAML,
			input:  "logLevel: warn\nworkers: 8\n",
			want:   settings{LogLevel: "warn", Workers: 8},
		},
		{
			name:   "empty yaml",
			format: FormatYAML,
			input:  "",
		},
		{
			name:   "unknown json field tolerated",
			format: FormatJSON,
			input:  `{"logLevel":"info","extra":true}`,
			want:   settings{LogLevel: "info"},
		},
		{
			name:    "unknown json field strict",
			format:  FormatJSON,
			input:   `{"logLevel":"info","extra":true}`,
			opts:    []ReaderOption{WithStrictFields()},
			wantErr: true,
		},
		{
			name:    "unknown yaml field strict",
			format:  FormatYAML,
			input:   "logLevel: info\nextra: true\n",
			opts:    []ReaderOption{WithStrictFields()},
			wantErr: true,
		},
		{
			name:    "malformed json",
			format:  FormatJSON,
			input:   `{"logLevel":`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewReader(tt.format, strings.NewReader(tt.input), tt.opts...)
			if err != nil {
				t.Fatalf("NewReader() error = %v", err)
			}

			var got settings
			err = r.Deserialize(&got)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Deserialize() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("Deserialize() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestNewReader_RejectsWriteOnlyFormats(t *testing.T) {
	for _, f := range []Format{FormatTable, Format("xml")} {
		if _, err := NewReader(f, strings.NewReader("")); err == nil {
			t.Errorf("NewReader(%q) expected error", f)
		}
	}
}

func TestReader_NilSafe(t *testing.T) {
	var r *Reader
	if err := r.Deserialize(&settings{}); err == nil {
		t.Error("expected error from nil reader")
	}
	if err := r.Close(); err != nil {
		t.Errorf("Close() on nil reader = %v", err)
	}
}

func TestFromFile(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "settings.yaml")
	if err := os.WriteFile(yamlPath, []byte("logLevel: error\nworkers: 2\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	got, err := FromFile[settings](yamlPath)
	if err != nil {
		t.Fatalf("FromFile() error = %v", err)
	}
	if got.LogLevel != "error" || got.Workers != 2 {
		t.Errorf("FromFile() = %+v", got)
	}

	jsonPath := filepath.Join(dir, "settings.json")
	if err := os.WriteFile(jsonPath, []byte(`{"workers":5}`), 0o600); err != nil {
		t.Fatal(err)
	}
	got, err = FromFile[settings](jsonPath)
	if err != nil {
		t.Fatalf("FromFile() error = %v", err)
	}
	if got.Workers != 5 {
		t.Errorf("FromFile() workers = %d, want 5", got.Workers)
	}

	if _, err := FromFile[settings](filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	tablePath := filepath.Join(dir, "settings.txt")
	if err := os.WriteFile(tablePath, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := FromFile[settings](tablePath); err == nil {
		t.Error("expected error for table format")
	}
}
