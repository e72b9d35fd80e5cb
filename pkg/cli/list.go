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

	"github.com/urfave/cli/v3"

	"github.com/mchmarny/patterns/pkg/catalog"
	"github.com/mchmarny/patterns/pkg/header"
)

// CatalogDoc is the document written by list.
type CatalogDoc struct {
	header.Header `json:",inline" yaml:",inline"`

	Count    int            `json:"count" yaml:"count"`
	Examples []catalog.Info `json:"examples" yaml:"examples"`
}

// ExampleDoc is the document written by show.
type ExampleDoc struct {
	header.Header `json:",inline" yaml:",inline"`

	Example catalog.Info `json:"example" yaml:"example"`
}

func listCmd() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List registered examples",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "kind",
				Usage: "only list examples of this kind (pattern, principle, relationship)",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			format, err := parseOutputFormat(cmd, cfg)
			if err != nil {
				return err
			}
			kind, err := catalog.ParseKind(cmd.String("kind"))
			if err != nil {
				return err
			}

			infos := catalog.NewFromGlobal().Filter(kind)
			doc := CatalogDoc{
				Header:   *header.New(header.KindCatalog, version),
				Count:    len(infos),
				Examples: infos,
			}
			return writeDoc(ctx, cmd, format, doc)
		},
	}
}

func showCmd() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Show one example's details",
		ArgsUsage: "NAME",
		Flags: []cli.Flag{
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 1 {
				return fmt.Errorf("show expects exactly one example name, got %d", cmd.NArg())
			}
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			format, err := parseOutputFormat(cmd, cfg)
			if err != nil {
				return err
			}

			e, err := catalog.NewFromGlobal().Get(cmd.Args().First())
			if err != nil {
				return err
			}
			doc := ExampleDoc{
				Header:  *header.New(header.KindExample, version),
				Example: e.Info(),
			}
			return writeDoc(ctx, cmd, format, doc)
		},
	}
}
