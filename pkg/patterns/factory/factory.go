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

// Package factory creates animals by kind name without exposing concrete types.
package factory

import (
	"fmt"
	"sort"
	"strings"

	perrors "github.com/mchmarny/patterns/pkg/errors"
)

// Animal is the product interface.
type Animal interface {
	Speak() string
}

type Dog struct{}

func (Dog) Speak() string { return "Woof!" }

type Cat struct{}

func (Cat) Speak() string { return "Meow!" }

// AnimalFactory maps kind names to constructors. Lookup is case-insensitive.
type AnimalFactory struct {
	constructors map[string]func() Animal
}

// NewAnimalFactory returns a factory that knows Dog and Cat.
func NewAnimalFactory() *AnimalFactory {
	return &AnimalFactory{
		constructors: map[string]func() Animal{
			"dog": func() Animal { return Dog{} },
			"cat": func() Animal { return Cat{} },
		},
	}
}

// Create returns a new Animal of kind.
func (f *AnimalFactory) Create(kind string) (Animal, error) {
	ctor, ok := f.constructors[strings.ToLower(strings.TrimSpace(kind))]
	if !ok {
		return nil, perrors.NewWithContext(perrors.ErrCodeNotFound, fmt.Sprintf("unknown animal: %s", kind),
			map[string]any{"kind": kind, "supported": f.Kinds()})
	}
	return ctor(), nil
}

// Kinds returns the supported kind names, sorted.
func (f *AnimalFactory) Kinds() []string {
	kinds := make([]string, 0, len(f.constructors))
	for k := range f.constructors {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}
