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

package catalog

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/mchmarny/patterns/pkg/defaults"
	perrors "github.com/mchmarny/patterns/pkg/errors"
)

// Result is the outcome of a single example run.
type Result struct {
	Name     string        `json:"name" yaml:"name"`
	Title    string        `json:"title" yaml:"title"`
	Status   string        `json:"status" yaml:"status"`
	Duration time.Duration `json:"duration" yaml:"duration"`
	Error    string        `json:"error,omitempty" yaml:"error,omitempty"`

	output []byte
	err    error
}

// Report summarizes a runner invocation.
type Report struct {
	RunID    string        `json:"runID" yaml:"runID"`
	Passed   int           `json:"passed" yaml:"passed"`
	Failed   int           `json:"failed" yaml:"failed"`
	Duration time.Duration `json:"duration" yaml:"duration"`
	Results  []Result      `json:"results" yaml:"results"`
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithParallelism bounds how many examples run at once. Values below 1 are ignored.
func WithParallelism(n int) RunnerOption {
	return func(r *Runner) {
		if n > 0 {
			r.parallelism = n
		}
	}
}

// WithTimeout bounds each example run. Non-positive values are ignored.
func WithTimeout(d time.Duration) RunnerOption {
	return func(r *Runner) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// Runner executes examples concurrently and replays their output in order.
type Runner struct {
	parallelism int
	timeout     time.Duration
}

// NewRunner creates a Runner with defaults from pkg/defaults.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{
		parallelism: defaults.RunParallelism,
		timeout:     defaults.ExampleRunTimeout,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes examples, writes each one's output to w under a title banner
// in the order given, and returns the report with a joined error of every
// failure. A failing example does not stop the others.
func (r *Runner) Run(ctx context.Context, w io.Writer, examples ...Example) (*Report, error) {
	report := &Report{
		RunID:   uuid.NewString(),
		Results: make([]Result, len(examples)),
	}
	logger := slog.Default().With("run_id", report.RunID)
	logger.Debug("starting example run", "examples", len(examples), "parallelism", r.parallelism)

	start := time.Now()

	var g errgroup.Group
	g.SetLimit(r.parallelism)
	for i, e := range examples {
		g.Go(func() error {
			report.Results[i] = r.runOne(ctx, logger, e)
			return nil
		})
	}
	_ = g.Wait() // workers never return errors; failures live in the results

	report.Duration = time.Since(start)

	var errs []error
	for _, res := range report.Results {
		if _, err := fmt.Fprintf(w, "== %s ==\n", res.Title); err != nil {
			return report, fmt.Errorf("failed to write output: %w", err)
		}
		if _, err := w.Write(res.output); err != nil {
			return report, fmt.Errorf("failed to write output: %w", err)
		}
		if res.err != nil {
			report.Failed++
			errs = append(errs, fmt.Errorf("%s: %w", res.Name, res.err))
			fmt.Fprintf(w, "error: %v\n", res.err)
			continue
		}
		report.Passed++
	}

	logger.Info("example run complete",
		"passed", report.Passed,
		"failed", report.Failed,
		"duration", report.Duration)

	return report, errors.Join(errs...)
}

// runOne runs e with its own timeout and buffer. An example that outlives
// its deadline is abandoned; its buffer is never read.
func (r *Runner) runOne(ctx context.Context, logger *slog.Logger, e Example) Result {
	info := e.Info()
	res := Result{Name: info.Name, Title: info.Title}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	type outcome struct {
		out []byte
		err error
	}
	done := make(chan outcome, 1)
	start := time.Now()

	go func() {
		var buf bytes.Buffer
		err := safeRun(ctx, e, &buf)
		done <- outcome{out: buf.Bytes(), err: err}
	}()

	select {
	case o := <-done:
		res.output, res.err = o.out, r.contextErr(info.Name, o.err)
	case <-ctx.Done():
		res.err = r.contextErr(info.Name, ctx.Err())
	}
	res.Duration = time.Since(start)

	status := statusSuccess
	switch {
	case res.err == nil:
	case perrors.CodeOf(res.err) == perrors.ErrCodeTimeout:
		status = statusTimeout
	case perrors.CodeOf(res.err) == perrors.ErrCodeCanceled:
		status = statusCanceled
	default:
		status = statusError
	}
	res.Status = status
	if res.err != nil {
		res.Error = res.err.Error()
	}

	exampleRunsTotal.WithLabelValues(info.Name, status).Inc()
	exampleRunDuration.WithLabelValues(info.Name).Observe(res.Duration.Seconds())
	logger.Debug("example finished", "example", info.Name, "status", status, "duration", res.Duration)

	return res
}

// contextErr classifies err when it comes from the run context: an expired
// per-example deadline is a timeout, a canceled parent is a cancellation.
// Other errors are returned unchanged.
func (r *Runner) contextErr(name string, err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return perrors.WrapWithContext(perrors.ErrCodeTimeout, "example did not finish", err,
			map[string]any{"example": name, "timeout": r.timeout.String()})
	case errors.Is(err, context.Canceled):
		return perrors.WrapWithContext(perrors.ErrCodeCanceled, "example run canceled", err,
			map[string]any{"example": name})
	default:
		return err
	}
}

func safeRun(ctx context.Context, e Example, w io.Writer) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = perrors.New(perrors.ErrCodeInternal, fmt.Sprintf("example panicked: %v", p))
		}
	}()
	return e.Run(ctx, w)
}
