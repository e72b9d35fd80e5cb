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

// Package config loads optional settings for the patterns CLI.
//
// A config file is YAML or JSON, chosen by extension. Unknown fields are
// rejected. Any field left out keeps its value from pkg/defaults.
//
//	logLevel: debug
//	format: json
//	run:
//	  timeout: 2s
//	  parallelism: 8
//	stress:
//	  goroutines: 500
//	  failFirst: true
package config
