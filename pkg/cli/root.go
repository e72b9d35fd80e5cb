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
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	_ "github.com/mchmarny/patterns/pkg/catalog/all"
	"github.com/mchmarny/patterns/pkg/config"
	"github.com/mchmarny/patterns/pkg/logging"
)

const (
	name           = "patterns"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Execute runs the patterns command with os.Args and exits non-zero on error.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Usage:                 "Run OO design pattern, SOLID and relationship examples",
		Version:               fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		EnableShellCompletion: true,
		Description: `Catalog of runnable examples covering creational, structural and
behavioral patterns, the SOLID principles, and aggregation versus composition.

  patterns list --kind pattern
  patterns run observer strategy
  patterns run --all --parallelism 8
  patterns stress --goroutines 1000 --fail-first`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level (debug, info, warn, error)",
				Sources: cli.EnvVars(logging.EnvVarLogLevel),
			},
			&cli.StringFlag{
				Name:    "config",
				Usage:   "optional YAML or JSON config file",
				Sources: cli.EnvVars(config.EnvVarConfig),
			},
		},
		Before: initRoot,
		Commands: []*cli.Command{
			listCmd(),
			showCmd(),
			runCmd(),
			stressCmd(),
		},
	}
}

// initRoot loads config so a bad file fails before any command runs, then
// configures slog. The --log-level flag wins over the config file.
func initRoot(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return ctx, err
	}

	level := cfg.LogLevel
	if cmd.IsSet("log-level") {
		level = cmd.String("log-level")
	}
	logging.SetDefaultStructuredLoggerWithLevel(name, version, level)
	slog.Debug("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
		"logLevel", level)

	return ctx, nil
}

func loadConfig(cmd *cli.Command) (*config.Config, error) {
	return config.Load(cmd.String("config"))
}
