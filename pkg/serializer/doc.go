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

// Package serializer encodes command output and decodes configuration files.
//
// # Formats
//
// JSON and YAML are supported in both directions. Table is write-only: the
// value is flattened into dotted FIELD/VALUE rows keyed by json tag names,
// so the three renderings of a report line up.
//
// # Writing
//
//	w, err := serializer.NewFileWriterOrStdout(serializer.FormatYAML, outputPath, cmd.Writer)
//	if err != nil {
//	    return err
//	}
//	defer w.Close()
//	return w.Serialize(ctx, report)
//
// An empty path selects the fallback writer. Unknown formats fall back to YAML.
//
// # Reading
//
//	cfg, err := serializer.FromFile[config.Config]("patterns.yaml", serializer.WithStrictFields())
//
// The format is chosen by extension:
//   - .json → JSON
//   - .yaml, .yml → YAML
//   - .table, .txt → Table (rejected for reading)
//   - anything else → YAML
package serializer
