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

// Package header provides the envelope written ahead of every CLI document.
//
//	kind: RunReport
//	apiVersion: patterns/v1
//	metadata:
//	  runID: 6f1c2d0e-3a4b-4c5d-8e9f-0a1b2c3d4e5f
//	  timestamp: "2026-01-02T15:04:05Z"
//	  version: v0.1.0
//
// Consumers should check APIVersion before parsing the body.
package header
