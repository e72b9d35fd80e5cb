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

// Package catalog registers and runs the pattern, principle and relationship
// examples.
//
// # Registration
//
// Each example package registers itself from init():
//
//	func init() {
//	    catalog.MustRegister(catalog.Func{
//	        Meta: catalog.Info{
//	            Name:     "observer",
//	            Kind:     catalog.KindPattern,
//	            Category: catalog.CategoryBehavioral,
//	            Summary:  "Weather station pushes measurements to displays",
//	        },
//	        Fn: Run,
//	    })
//	}
//
// Import pkg/catalog/all to pull in every example, then snapshot the global
// set with NewFromGlobal.
//
// # Running
//
//	reg := catalog.NewFromGlobal()
//	examples, err := reg.Lookup("observer", "strategy")
//	report, err := catalog.NewRunner(catalog.WithParallelism(2)).Run(ctx, os.Stdout, examples...)
//
// Examples run concurrently, each into its own buffer and under its own
// timeout. Output is replayed in the requested order:
//
//	== Observer ==
//	Current Conditions: 80F degrees, 65% humidity, and 30.4 pressure
//	== Strategy ==
//	...
//
// # Metrics
//
//   - patterns_example_runs_total{example,status}
//   - patterns_example_run_duration_seconds{example}
package catalog
