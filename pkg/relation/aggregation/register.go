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

package aggregation

import (
	"context"
	"fmt"
	"io"

	"github.com/mchmarny/patterns/pkg/catalog"
)

func init() {
	catalog.MustRegister(catalog.Func{
		Meta: catalog.Info{
			Name:     "aggregation",
			Kind:     catalog.KindRelationship,
			Category: catalog.CategoryAssociation,
			Summary:  "Departments reference employees whose lifetime they do not control",
		},
		Fn: Run,
	})
}

func Run(_ context.Context, w io.Writer) error {
	alice, bob := NewEmployee("Alice"), NewEmployee("Bob")

	eng := NewDepartment("Engineering")
	ops := NewDepartment("Operations")
	for _, step := range []struct {
		d *Department
		e *Employee
	}{{eng, alice}, {eng, bob}, {ops, alice}} {
		if err := step.d.AddEmployee(step.e); err != nil {
			return err
		}
	}

	for _, d := range []*Department{eng, ops} {
		fmt.Fprintf(w, "%s: %d employees\n", d.Name, len(d.Employees()))
	}

	if err := eng.RemoveEmployee(alice); err != nil {
		return err
	}
	fmt.Fprintf(w, "%s left %s and is still in %s\n", alice.Name, eng.Name, ops.Name)
	return nil
}
