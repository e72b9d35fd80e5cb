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

package cli

import (
	"context"
	"testing"

	"github.com/urfave/cli/v3"

	"github.com/mchmarny/patterns/pkg/config"
	"github.com/mchmarny/patterns/pkg/serializer"
)

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		configured string
		wantFormat serializer.Format
		wantErr    bool
	}{
		{
			name:       "flag yaml",
			args:       []string{"--format", "yaml"},
			configured: "json",
			wantFormat: serializer.FormatYAML,
		},
		{
			name:       "flag table",
			args:       []string{"--format", "table"},
			configured: "json",
			wantFormat: serializer.FormatTable,
		},
		{
			name:       "config when flag unset",
			configured: "json",
			wantFormat: serializer.FormatJSON,
		},
		{
			name:       "invalid flag",
			args:       []string{"--format", "xml"},
			configured: "yaml",
			wantErr:    true,
		},
		{
			name:       "invalid config",
			configured: "csv",
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.Format = tt.configured

			cmd := &cli.Command{
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "format"},
				},
				Action: func(_ context.Context, c *cli.Command) error {
					got, err := parseOutputFormat(c, cfg)
					if (err != nil) != tt.wantErr {
						t.Errorf("parseOutputFormat() error = %v, wantErr %v", err, tt.wantErr)
						return nil
					}
					if !tt.wantErr && got != tt.wantFormat {
						t.Errorf("parseOutputFormat() = %v, want %v", got, tt.wantFormat)
					}
					return nil
				},
			}

			if err := cmd.Run(context.Background(), append([]string{"test"}, tt.args...)); err != nil {
				t.Fatalf("failed to run command: %v", err)
			}
		})
	}
}

func TestRootCommands(t *testing.T) {
	root := newRootCmd()

	want := map[string]bool{"list": false, "show": false, "run": false, "stress": false}
	for _, c := range root.Commands {
		if _, ok := want[c.Name]; ok {
			want[c.Name] = true
		}
		if c.Action == nil {
			t.Errorf("command %q has no action", c.Name)
		}
	}
	for n, found := range want {
		if !found {
			t.Errorf("command %q not registered", n)
		}
	}
}

func TestCommandsDoNotShareFlags(t *testing.T) {
	seen := make(map[cli.Flag]string)
	for _, root := range []*cli.Command{newRootCmd(), newRootCmd()} {
		for _, c := range root.Commands {
			for _, f := range c.Flags {
				if owner, dup := seen[f]; dup {
					t.Errorf("flag %v of %q is shared with %q", f.Names(), c.Name, owner)
				}
				seen[f] = c.Name
			}
		}
	}
}
