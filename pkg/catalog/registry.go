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
	"cmp"
	"fmt"
	"slices"
	"sync"

	perrors "github.com/mchmarny/patterns/pkg/errors"
)

// Global registry for examples.
// Example packages register themselves via init() functions.
var (
	globalExamples = make(map[string]Example)
	globalMu       sync.RWMutex
)

func errInvalidKind(s string) error {
	return perrors.NewWithContext(perrors.ErrCodeInvalidRequest, "unknown example kind",
		map[string]any{"kind": s, "supported": []Kind{KindPattern, KindPrinciple, KindRelationship}})
}

func validate(e Example) error {
	if e == nil {
		return perrors.New(perrors.ErrCodeInvalidRequest, "example is nil")
	}
	info := e.Info()
	if info.Name == "" {
		return perrors.New(perrors.ErrCodeInvalidRequest, "example name is required")
	}
	if !info.Kind.IsValid() {
		return errInvalidKind(string(info.Kind))
	}
	return nil
}

// Register adds e to the global registry.
// This is typically called from init() functions in example packages.
func Register(e Example) error {
	if err := validate(e); err != nil {
		return err
	}
	name := e.Info().Name

	globalMu.Lock()
	defer globalMu.Unlock()

	if _, exists := globalExamples[name]; exists {
		return perrors.New(perrors.ErrCodeAlreadyExists, fmt.Sprintf("example %s already registered", name))
	}
	globalExamples[name] = e
	return nil
}

// MustRegister is Register that panics on error. Use it in init().
func MustRegister(e Example) {
	if err := Register(e); err != nil {
		panic(err)
	}
}

// NewFromGlobal returns a Registry holding every globally registered example.
func NewFromGlobal() *Registry {
	globalMu.RLock()
	defer globalMu.RUnlock()

	reg := NewRegistry()
	for name, e := range globalExamples {
		reg.examples[name] = e
	}
	return reg
}

// Registry is a thread-safe, name-keyed set of examples.
type Registry struct {
	examples map[string]Example
	mu       sync.RWMutex
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		examples: make(map[string]Example),
	}
}

// Register adds e, rejecting invalid and duplicate examples.
func (r *Registry) Register(e Example) error {
	if err := validate(e); err != nil {
		return err
	}
	name := e.Info().Name

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.examples[name]; exists {
		return perrors.New(perrors.ErrCodeAlreadyExists, fmt.Sprintf("example %s already registered", name))
	}
	r.examples[name] = e
	return nil
}

// Get returns the example registered under name.
func (r *Registry) Get(name string) (Example, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.examples[name]
	if !ok {
		return nil, perrors.NewWithContext(perrors.ErrCodeNotFound, fmt.Sprintf("example %s not found", name),
			map[string]any{"name": name})
	}
	return e, nil
}

// Lookup resolves names in order, stopping at the first unknown one.
func (r *Registry) Lookup(names ...string) ([]Example, error) {
	out := make([]Example, 0, len(names))
	for _, name := range names {
		e, err := r.Get(name)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

// All returns every example in List order.
func (r *Registry) All() []Example {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Example, 0, len(r.examples))
	for _, e := range r.examples {
		out = append(out, e)
	}
	slices.SortFunc(out, func(a, b Example) int {
		return compareInfo(a.Info(), b.Info())
	})
	return out
}

// List returns the info of every example sorted by kind, category and name.
func (r *Registry) List() []Info {
	return r.Filter("")
}

// Filter returns List restricted to kind. An empty kind matches everything.
func (r *Registry) Filter(kind Kind) []Info {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Info, 0, len(r.examples))
	for _, e := range r.examples {
		info := e.Info()
		if kind != "" && info.Kind != kind {
			continue
		}
		out = append(out, info)
	}
	slices.SortFunc(out, compareInfo)
	return out
}

// Names returns the sorted example names.
func (r *Registry) Names() []string {
	infos := r.List()
	names := make([]string, len(infos))
	for i, info := range infos {
		names[i] = info.Name
	}
	return names
}

// Count returns the number of registered examples.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.examples)
}

func compareInfo(a, b Info) int {
	return cmp.Or(
		cmp.Compare(a.Kind, b.Kind),
		cmp.Compare(a.Category, b.Category),
		cmp.Compare(a.Name, b.Name),
	)
}
