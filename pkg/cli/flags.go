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
	"fmt"
	"io"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/mchmarny/patterns/pkg/config"
	"github.com/mchmarny/patterns/pkg/serializer"
)

// outputFlag returns a new --output flag. Flags hold their parsed value,
// so commands must not share one.
func outputFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output file path (default: stdout)",
	}
}

// formatFlag returns a new --format flag.
func formatFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Usage:   fmt.Sprintf("output format (%s)", strings.Join(serializer.SupportedFormats(), ", ")),
	}
}

// parseOutputFormat returns --format when set, otherwise the configured format.
func parseOutputFormat(cmd *cli.Command, cfg *config.Config) (serializer.Format, error) {
	value := cfg.Format
	if cmd.IsSet("format") {
		value = cmd.String("format")
	}
	return serializer.ParseFormat(value)
}

// stdout is the root command's writer, so tests can capture output.
func stdout(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return cmd.Writer
}

// writeDoc serializes doc to --output or stdout.
func writeDoc(ctx context.Context, cmd *cli.Command, format serializer.Format, doc any) (err error) {
	w, err := serializer.NewFileWriterOrStdout(format, cmd.String("output"), stdout(cmd))
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := w.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close output: %w", closeErr)
		}
	}()
	return w.Serialize(ctx, doc)
}
