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
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/mchmarny/patterns/pkg/defaults"
	perrors "github.com/mchmarny/patterns/pkg/errors"
	"github.com/mchmarny/patterns/pkg/header"
	"github.com/mchmarny/patterns/pkg/singleton"
)

// StressReport is the document written by stress.
type StressReport struct {
	header.Header `json:",inline" yaml:",inline"`

	Goroutines        int           `json:"goroutines" yaml:"goroutines"`
	FailFirst         bool          `json:"failFirst" yaml:"failFirst"`
	Constructions     int64         `json:"constructions" yaml:"constructions"`
	Attempts          int64         `json:"attempts" yaml:"attempts"`
	Failures          int           `json:"failures" yaml:"failures"`
	DistinctInstances int           `json:"distinctInstances" yaml:"distinctInstances"`
	Duration          time.Duration `json:"duration" yaml:"duration"`
}

// errMultipleInstances is returned when the race observed more than one instance.
var errMultipleInstances = errors.New("more than one instance observed")

func stressCmd() *cli.Command {
	return &cli.Command{
		Name:  "stress",
		Usage: "Race goroutines against a fresh lazy holder and report what they observed",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "goroutines",
				Usage: fmt.Sprintf("number of goroutines to release at once (max %d)", defaults.StressMaxGoroutines),
			},
			&cli.BoolFlag{
				Name:  "fail-first",
				Usage: "make the first construction attempt fail to exercise retry",
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

			goroutines := cfg.Stress.Goroutines
			if cmd.IsSet("goroutines") {
				goroutines = int(cmd.Int("goroutines"))
			}
			failFirst := cfg.Stress.FailFirst
			if cmd.IsSet("fail-first") {
				failFirst = cmd.Bool("fail-first")
			}

			report, err := runStress(ctx, goroutines, failFirst)
			if err != nil {
				return err
			}
			if err := writeDoc(ctx, cmd, format, report); err != nil {
				return err
			}
			if report.DistinctInstances > 1 {
				return fmt.Errorf("%w: %d", errMultipleInstances, report.DistinctInstances)
			}
			return nil
		},
	}
}

type stressInstance struct {
	seq int64
}

// runStress releases n goroutines behind a start barrier, each calling Get
// on the same fresh holder once.
func runStress(ctx context.Context, n int, failFirst bool) (*StressReport, error) {
	if n <= 0 || n > defaults.StressMaxGoroutines {
		return nil, perrors.NewWithContext(perrors.ErrCodeInvalidRequest,
			fmt.Sprintf("goroutines must be between 1 and %d", defaults.StressMaxGoroutines),
			map[string]any{"goroutines": n})
	}

	ctx, cancel := context.WithTimeout(ctx, defaults.StressTimeout)
	defer cancel()

	runID := uuid.NewString()
	logger := slog.Default().With("run_id", runID)

	var calls atomic.Int64
	holder := singleton.New(func() (*stressInstance, error) {
		seq := calls.Add(1)
		time.Sleep(time.Millisecond) // widen the window for late arrivals
		if failFirst && seq == 1 {
			return nil, errors.New("injected first-attempt failure")
		}
		return &stressInstance{seq: seq}, nil
	}, singleton.WithName("stress"), singleton.WithLogger(logger))

	var (
		mu       sync.Mutex
		seen     = make(map[*stressInstance]struct{})
		failures int
	)

	start := make(chan struct{})
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			select {
			case <-start:
			case <-gctx.Done():
				return gctx.Err()
			}
			inst, err := holder.Get()

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failures++
				return nil
			}
			seen[inst] = struct{}{}
			return nil
		})
	}

	began := time.Now()
	close(start)
	if err := g.Wait(); err != nil {
		return nil, perrors.Wrap(perrors.ErrCodeTimeout, "stress run did not complete", err)
	}

	report := &StressReport{
		Header: *header.New(header.KindStressReport, version,
			header.WithMetadata(header.MetadataRunID, runID)),
		Goroutines:        n,
		FailFirst:         failFirst,
		Constructions:     holder.Constructions(),
		Attempts:          holder.Attempts(),
		Failures:          failures,
		DistinctInstances: len(seen),
		Duration:          time.Since(began),
	}

	logger.Info("stress run complete",
		"goroutines", n,
		"constructions", report.Constructions,
		"attempts", report.Attempts,
		"failures", failures,
		"distinct", report.DistinctInstances)

	return report, nil
}
