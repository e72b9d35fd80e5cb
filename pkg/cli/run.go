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
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/mchmarny/patterns/pkg/catalog"
	perrors "github.com/mchmarny/patterns/pkg/errors"
	"github.com/mchmarny/patterns/pkg/header"
	"github.com/mchmarny/patterns/pkg/serializer"
)

// RunReportDoc is the document written by run --report.
type RunReportDoc struct {
	header.Header `json:",inline" yaml:",inline"`

	Report *catalog.Report `json:"report" yaml:"report"`
}

func runCmd() *cli.Command {
	return &cli.Command{
		Name:      "run",
		Usage:     "Run one or more examples",
		ArgsUsage: "NAME...",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "all",
				Usage: "run every registered example",
			},
			&cli.IntFlag{
				Name:  "parallelism",
				Usage: "number of examples to run at once",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "per-example timeout",
			},
			&cli.StringFlag{
				Name:  "report",
				Usage: "also write the run report to this file (format from extension)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			reg := catalog.NewFromGlobal()
			var examples []catalog.Example
			switch {
			case cmd.Bool("all"):
				examples = reg.All()
			case cmd.NArg() > 0:
				examples, err = reg.Lookup(cmd.Args().Slice()...)
				if err != nil {
					return err
				}
			default:
				return perrors.NewWithContext(perrors.ErrCodeInvalidRequest,
					"name at least one example or pass --all",
					map[string]any{"available": strings.Join(reg.Names(), ", ")})
			}

			parallelism := cfg.Run.Parallelism
			if cmd.IsSet("parallelism") {
				parallelism = int(cmd.Int("parallelism"))
			}
			timeout := cfg.Run.Timeout.Std()
			if cmd.IsSet("timeout") {
				timeout = cmd.Duration("timeout")
			}

			runner := catalog.NewRunner(
				catalog.WithParallelism(parallelism),
				catalog.WithTimeout(timeout),
			)

			out := stdout(cmd)
			report, runErr := runner.Run(ctx, out, examples...)
			if report != nil {
				fmt.Fprintf(out, "ran %d examples: %d passed, %d failed (run %s)\n",
					len(report.Results), report.Passed, report.Failed, report.RunID)

				if path := cmd.String("report"); path != "" {
					if err := writeRunReport(ctx, path, report); err != nil {
						return err
					}
				}
			}
			return runErr
		},
	}
}

func writeRunReport(ctx context.Context, path string, report *catalog.Report) (err error) {
	w, err := serializer.NewFileWriterOrStdout(serializer.FormatFromPath(path), path, nil)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := w.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close report: %w", closeErr)
		}
	}()

	doc := RunReportDoc{
		Header: *header.New(header.KindRunReport, version,
			header.WithMetadata(header.MetadataRunID, report.RunID)),
		Report: report,
	}
	return w.Serialize(ctx, doc)
}
