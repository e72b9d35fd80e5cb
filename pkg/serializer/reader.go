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

package serializer

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Reader decodes JSON or YAML from an io.Reader. Table format is write-only.
//
// Close must be called when the Reader was created with NewFileReader or
// NewFileReaderAuto. It is safe to call Close more than once.
type Reader struct {
	format Format
	input  io.Reader
	closer io.Closer
	strict bool
}

// ReaderOption configures a Reader.
type ReaderOption func(*Reader)

// WithStrictFields rejects documents that carry fields the target type does
// not declare.
func WithStrictFields() ReaderOption {
	return func(r *Reader) {
		r.strict = true
	}
}

func checkReadable(format Format) error {
	if format.IsUnknown() {
		return fmt.Errorf("unknown format: %s", format)
	}
	if format == FormatTable {
		return errors.New("table format does not support deserialization")
	}
	return nil
}

// NewReader creates a Reader over input. If input implements io.Closer it is
// closed by Reader.Close.
//
//	reader, err := NewReader(FormatJSON, strings.NewReader(`{"logLevel":"debug"}`))
//	if err != nil { return err }
//	var cfg config.Config
//	err = reader.Deserialize(&cfg)
func NewReader(format Format, input io.Reader, opts ...ReaderOption) (*Reader, error) {
	if err := checkReadable(format); err != nil {
		return nil, err
	}

	r := &Reader{
		format: format,
		input:  input,
	}
	if closer, ok := input.(io.Closer); ok {
		r.closer = closer
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// NewFileReader creates a Reader for the local file at filePath.
func NewFileReader(format Format, filePath string, opts ...ReaderOption) (*Reader, error) {
	if err := checkReadable(format); err != nil {
		return nil, err
	}

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	r := &Reader{
		format: format,
		input:  file,
		closer: file,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// NewFileReaderAuto is NewFileReader with the format taken from the file extension.
func NewFileReaderAuto(filePath string, opts ...ReaderOption) (*Reader, error) {
	return NewFileReader(FormatFromPath(filePath), filePath, opts...)
}

// Deserialize decodes the input into v, which must be a pointer.
func (r *Reader) Deserialize(v any) error {
	if r == nil {
		return errors.New("reader is nil")
	}
	if r.input == nil {
		return errors.New("input source is nil")
	}

	switch r.format {
	case FormatJSON:
		decoder := json.NewDecoder(r.input)
		if r.strict {
			decoder.DisallowUnknownFields()
		}
		if err := decoder.Decode(v); err != nil {
			return fmt.Errorf("failed to decode JSON: %w", err)
		}
		return nil

	case FormatYAML:
		decoder := yaml.NewDecoder(r.input)
		decoder.KnownFields(r.strict)
		if err := decoder.Decode(v); err != nil {
			if errors.Is(err, io.EOF) {
				// empty document leaves v untouched
				return nil
			}
			return fmt.Errorf("failed to decode YAML: %w", err)
		}
		return nil

	case FormatTable:
		return errors.New("table format is not supported for deserialization")

	default:
		return fmt.Errorf("unsupported format for deserialization: %s", r.format)
	}
}

// Close releases the underlying file, if any.
func (r *Reader) Close() error {
	if r == nil || r.closer == nil {
		return nil
	}
	err := r.closer.Close()
	r.closer = nil
	return err
}

// FromFile loads path into a new T, detecting the format from the extension.
//
//	cfg, err := FromFile[config.Config]("patterns.yaml")
func FromFile[T any](path string, opts ...ReaderOption) (*T, error) {
	fileFormat := FormatFromPath(path)
	slog.Debug("determined file format",
		slog.String("path", path),
		slog.String("format", string(fileFormat)),
	)

	ser, err := NewFileReader(fileFormat, path, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create reader for %q: %w", path, err)
	}
	defer func() {
		if closeErr := ser.Close(); closeErr != nil {
			slog.Warn("failed to close reader", "error", closeErr)
		}
	}()

	var r T
	if err := ser.Deserialize(&r); err != nil {
		return nil, fmt.Errorf("failed to deserialize object from %q: %w", path, err)
	}

	slog.Debug("successfully loaded object from file", slog.String("path", path))
	return &r, nil
}
