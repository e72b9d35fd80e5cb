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

// Package cli implements the patterns command.
//
// # Commands
//
//	patterns list [--kind pattern|principle|relationship] [--format yaml|json|table] [--output FILE]
//	patterns show NAME [--format ...]
//	patterns run [--all] [--parallelism N] [--timeout D] [--report FILE] NAME...
//	patterns stress [--goroutines N] [--fail-first] [--format ...]
//
// # Global Flags
//
//	--log-level  debug, info, warn, error (env LOG_LEVEL)
//	--config     YAML or JSON settings file (env PATTERNS_CONFIG)
//
// Flags given on the command line override config file values, which
// override the built-in defaults.
//
// # Documents
//
// list, show and stress write a document prefixed with a header:
//
//	kind: StressReport
//	apiVersion: patterns/v1
//	metadata:
//	  runID: 0b6c...
//	  timestamp: "2026-01-02T15:04:05Z"
//	  version: dev
//	goroutines: 100
//	constructions: 1
//	distinctInstances: 1
//
// stress exits non-zero when more than one instance was observed.
package cli
