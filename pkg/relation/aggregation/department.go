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

// Package aggregation models a department that refers to employees it does
// not own. Employees exist before, and after, any department.
package aggregation

import (
	"fmt"
	"slices"
	"sync"

	perrors "github.com/mchmarny/patterns/pkg/errors"
)

type Employee struct {
	Name string
}

func NewEmployee(name string) *Employee {
	return &Employee{Name: name}
}

// Department holds references to employees. It is safe for concurrent use.
type Department struct {
	Name string

	mu        sync.RWMutex
	employees []*Employee
}

func NewDepartment(name string) *Department {
	return &Department{Name: name}
}

// AddEmployee adds e once. An employee may belong to several departments.
func (d *Department) AddEmployee(e *Employee) error {
	if e == nil {
		return perrors.New(perrors.ErrCodeInvalidRequest, "employee is nil")
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	if slices.Contains(d.employees, e) {
		return perrors.New(perrors.ErrCodeAlreadyExists,
			fmt.Sprintf("%s already in department %s", e.Name, d.Name))
	}
	d.employees = append(d.employees, e)
	return nil
}

// RemoveEmployee drops the reference to e. The employee itself is untouched.
func (d *Department) RemoveEmployee(e *Employee) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	i := slices.Index(d.employees, e)
	if i < 0 {
		return perrors.New(perrors.ErrCodeNotFound, "employee not in department")
	}
	d.employees = slices.Delete(d.employees, i, i+1)
	return nil
}

// Employees returns a copy of the member list.
func (d *Department) Employees() []*Employee {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return slices.Clone(d.employees)
}
