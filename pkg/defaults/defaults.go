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

package defaults

import "time"

// Example runner defaults.
const (
	// ExampleRunTimeout bounds a single example run.
	// Examples only write to memory, so anything longer indicates a hang.
	ExampleRunTimeout = 5 * time.Second

	// RunParallelism is the number of examples executed concurrently.
	RunParallelism = 4
)

// Singleton stress defaults.
const (
	// StressGoroutines is the number of goroutines raced against a fresh holder.
	StressGoroutines = 100

	// StressMaxGoroutines caps user-supplied goroutine counts.
	StressMaxGoroutines = 100_000

	// StressTimeout bounds a complete stress run, including goroutine teardown.
	StressTimeout = 30 * time.Second
)

// Output defaults.
const (
	// OutputFormat is the serialization format used when none is configured.
	OutputFormat = "yaml"

	// LogLevel is the log level used when neither flag, env, nor config sets one.
	LogLevel = "info"
)
