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

// Package factorymethod lets each pizza store decide which pizza to bake while
// sharing one ordering workflow.
package factorymethod

import (
	"fmt"
	"io"
	"strings"

	perrors "github.com/mchmarny/patterns/pkg/errors"
)

// Pizza is the product every store hands back.
type Pizza interface {
	Name() string
	Prepare(w io.Writer)
	Bake(w io.Writer)
	Cut(w io.Writer)
	Box(w io.Writer)
}

type basePizza struct {
	name     string
	sauce    string
	dough    string
	toppings []string
}

func (p *basePizza) Name() string { return p.name }

func (p *basePizza) Prepare(w io.Writer) {
	fmt.Fprintln(w, "Preparing Pizza")
	fmt.Fprintf(w, "Adding %s sauce\n", p.sauce)
	fmt.Fprintf(w, "Adding %s dough\n", p.dough)
	fmt.Fprintln(w, "Adding toppings:")
	for _, t := range p.toppings {
		fmt.Fprintln(w, t)
	}
}

func (p *basePizza) Bake(w io.Writer) { fmt.Fprintln(w, "Baking Pizza") }
func (p *basePizza) Cut(w io.Writer)  { fmt.Fprintln(w, "Cutting Pizza into diagonal slices") }
func (p *basePizza) Box(w io.Writer)  { fmt.Fprintln(w, "Putting Pizza in a box") }

type NYStyleCheesePizza struct{ basePizza }

func newNYStyleCheesePizza() *NYStyleCheesePizza {
	return &NYStyleCheesePizza{basePizza{
		name:     "Cheese Pizza",
		sauce:    "Tomato",
		dough:    "Regular",
		toppings: []string{"Mozzarella", "Parmesan"},
	}}
}

type ChicagoStyleCheesePizza struct{ basePizza }

func newChicagoStyleCheesePizza() *ChicagoStyleCheesePizza {
	return &ChicagoStyleCheesePizza{basePizza{
		name:     "Cheese Pizza",
		sauce:    "Tomato",
		dough:    "Regular",
		toppings: []string{"Cheeze", "Mozzarella", "Parmesan"},
	}}
}

// Cut overrides the default diagonal slicing.
func (p *ChicagoStyleCheesePizza) Cut(w io.Writer) {
	fmt.Fprintln(w, "Cutting Pizza into square slices")
}

// Store is the creator. CreatePizza is the factory method.
type Store interface {
	CreatePizza(kind string) (Pizza, error)
}

// OrderPizza runs the shared workflow around store's factory method.
func OrderPizza(w io.Writer, store Store, kind string) (Pizza, error) {
	p, err := store.CreatePizza(kind)
	if err != nil {
		return nil, err
	}
	p.Prepare(w)
	p.Bake(w)
	p.Cut(w)
	p.Box(w)
	return p, nil
}

func unknownPizza(store, kind string) error {
	return perrors.NewWithContext(perrors.ErrCodeNotFound, fmt.Sprintf("unknown pizza type: %s", kind),
		map[string]any{"store": store, "kind": kind})
}

type NYPizzaStore struct{}

func (NYPizzaStore) CreatePizza(kind string) (Pizza, error) {
	switch strings.ToLower(kind) {
	case "cheese":
		return newNYStyleCheesePizza(), nil
	default:
		return nil, unknownPizza("ny", kind)
	}
}

type ChicagoPizzaStore struct{}

func (ChicagoPizzaStore) CreatePizza(kind string) (Pizza, error) {
	switch strings.ToLower(kind) {
	case "cheese":
		return newChicagoStyleCheesePizza(), nil
	default:
		return nil, unknownPizza("chicago", kind)
	}
}
