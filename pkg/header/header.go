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

package header

import (
	"time"
)

// APIVersion is the schema version stamped on every document the CLI emits.
const APIVersion = "patterns/v1"

// Metadata keys set by Init.
const (
	MetadataTimestamp = "timestamp"
	MetadataVersion   = "version"
	MetadataRunID     = "runID"
)

// Kind identifies the document type produced by a command.
type Kind string

const (
	KindCatalog      Kind = "Catalog"
	KindExample      Kind = "Example"
	KindRunReport    Kind = "RunReport"
	KindStressReport Kind = "StressReport"
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	return string(k)
}

// IsValid reports whether k is one of the known document kinds.
func (k Kind) IsValid() bool {
	switch k {
	case KindCatalog, KindExample, KindRunReport, KindStressReport:
		return true
	default:
		return false
	}
}

// Header prefixes every serialized document with its kind, schema version
// and free-form metadata.
type Header struct {
	Kind       Kind              `json:"kind,omitempty" yaml:"kind,omitempty"`
	APIVersion string            `json:"apiVersion,omitempty" yaml:"apiVersion,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Option is a functional option for configuring Header instances.
type Option func(*Header)

// WithKind sets the document kind.
func WithKind(kind Kind) Option {
	return func(h *Header) {
		h.Kind = kind
	}
}

// WithAPIVersion overrides the default schema version.
func WithAPIVersion(version string) Option {
	return func(h *Header) {
		h.APIVersion = version
	}
}

// WithMetadata adds a metadata key-value pair. Empty values are skipped.
func WithMetadata(key, value string) Option {
	return func(h *Header) {
		if value == "" {
			return
		}
		if h.Metadata == nil {
			h.Metadata = make(map[string]string)
		}
		h.Metadata[key] = value
	}
}

// New creates a Header stamped with the current time and APIVersion, then
// applies opts.
func New(kind Kind, version string, opts ...Option) *Header {
	h := &Header{}
	h.Init(kind, APIVersion, version)
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Init resets h to kind and apiVersion and stamps a UTC RFC3339 timestamp.
// The version key is only written when version is non-empty.
func (h *Header) Init(kind Kind, apiVersion string, version string) {
	h.Kind = kind
	h.APIVersion = apiVersion
	h.Metadata = map[string]string{
		MetadataTimestamp: time.Now().UTC().Format(time.RFC3339),
	}
	if version != "" {
		h.Metadata[MetadataVersion] = version
	}
}

// Get returns the metadata value for key, or "" when missing.
func (h *Header) Get(key string) string {
	if h == nil || h.Metadata == nil {
		return ""
	}
	return h.Metadata[key]
}
