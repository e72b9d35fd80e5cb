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
	"context"
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Kind groups examples by what they teach.
type Kind string

const (
	KindPattern      Kind = "pattern"
	KindPrinciple    Kind = "principle"
	KindRelationship Kind = "relationship"
)

// IsValid reports whether k is a known kind.
func (k Kind) IsValid() bool {
	switch k {
	case KindPattern, KindPrinciple, KindRelationship:
		return true
	default:
		return false
	}
}

// ParseKind converts a case-insensitive name into a Kind. The empty string
// parses to the empty Kind, which Filter treats as "all".
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if k == "" || k.IsValid() {
		return k, nil
	}
	return "", errInvalidKind(s)
}

// Category is the classic sub-grouping within a kind.
type Category string

const (
	CategoryCreational  Category = "creational"
	CategoryStructural  Category = "structural"
	CategoryBehavioral  Category = "behavioral"
	CategorySOLID       Category = "solid"
	CategoryAssociation Category = "association"
)

// Info describes a registered example.
type Info struct {
	Name     string   `json:"name" yaml:"name"`
	Title    string   `json:"title" yaml:"title"`
	Kind     Kind     `json:"kind" yaml:"kind"`
	Category Category `json:"category" yaml:"category"`
	Summary  string   `json:"summary,omitempty" yaml:"summary,omitempty"`
}

// Example is a runnable demonstration. Run writes its narrative to w and
// returns an error when the demonstration does not behave as expected.
type Example interface {
	Info() Info
	Run(ctx context.Context, w io.Writer) error
}

// RunFunc is the body of an Example.
type RunFunc func(ctx context.Context, w io.Writer) error

// Func adapts an Info and a RunFunc into an Example.
type Func struct {
	Meta Info
	Fn   RunFunc
}

// Info returns Meta with Title derived from Name when unset.
func (f Func) Info() Info {
	info := f.Meta
	if info.Title == "" {
		info.Title = TitleFor(info.Name)
	}
	return info
}

// Run calls Fn.
func (f Func) Run(ctx context.Context, w io.Writer) error {
	if f.Fn == nil {
		return nil
	}
	return f.Fn(ctx, w)
}

var titler = cases.Title(language.English)

// TitleFor turns a slug like "factory-method" into "Factory Method".
func TitleFor(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return r == '-' || r == '_' || r == ' '
	})
	return titler.String(strings.Join(words, " "))
}
