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

// Package builder assembles pizzas step by step through a director.
package builder

import (
	"fmt"
	"slices"
	"strings"

	perrors "github.com/mchmarny/patterns/pkg/errors"
)

// Pizza is the product.
type Pizza struct {
	Name     string
	Sauce    string
	Dough    string
	Toppings []string
}

func (p Pizza) String() string {
	return fmt.Sprintf("%s Pizza with %s sauce, %s dough, and toppings: %s",
		p.Name, p.Sauce, p.Dough, strings.Join(p.Toppings, ", "))
}

// PizzaBuilder builds one pizza at a time. Pizza returns a copy so later
// builds do not alter pizzas already handed out.
type PizzaBuilder interface {
	Reset()
	BuildSauce()
	BuildDough()
	BuildToppings()
	Pizza() Pizza
}

type base struct {
	pizza Pizza
}

func (b *base) Pizza() Pizza {
	p := b.pizza
	p.Toppings = slices.Clone(b.pizza.Toppings)
	return p
}

// HawaiianPizzaBuilder makes tomato, regular dough, ham and pineapple.
type HawaiianPizzaBuilder struct{ base }

func NewHawaiianPizzaBuilder() *HawaiianPizzaBuilder {
	b := &HawaiianPizzaBuilder{}
	b.Reset()
	return b
}

func (b *HawaiianPizzaBuilder) Reset()         { b.pizza = Pizza{Name: "Hawaiian"} }
func (b *HawaiianPizzaBuilder) BuildSauce()    { b.pizza.Sauce = "Tomato" }
func (b *HawaiianPizzaBuilder) BuildDough()    { b.pizza.Dough = "Regular" }
func (b *HawaiianPizzaBuilder) BuildToppings() { b.pizza.Toppings = []string{"Ham", "Pineapple"} }

// SpicyPizzaBuilder makes tomato, thin dough, pepperoni and jalapeno.
type SpicyPizzaBuilder struct{ base }

func NewSpicyPizzaBuilder() *SpicyPizzaBuilder {
	b := &SpicyPizzaBuilder{}
	b.Reset()
	return b
}

func (b *SpicyPizzaBuilder) Reset()         { b.pizza = Pizza{Name: "Spicy"} }
func (b *SpicyPizzaBuilder) BuildSauce()    { b.pizza.Sauce = "Tomato" }
func (b *SpicyPizzaBuilder) BuildDough()    { b.pizza.Dough = "Thin" }
func (b *SpicyPizzaBuilder) BuildToppings() { b.pizza.Toppings = []string{"Pepperoni", "Jalapeno"} }

// Waiter directs the build sequence.
type Waiter struct {
	builder PizzaBuilder
}

func (w *Waiter) SetBuilder(b PizzaBuilder) {
	w.builder = b
}

// ConstructPizza runs the full sequence on the current builder.
func (w *Waiter) ConstructPizza() error {
	if w.builder == nil {
		return perrors.New(perrors.ErrCodeInvalidRequest, "no pizza builder set")
	}
	w.builder.Reset()
	w.builder.BuildSauce()
	w.builder.BuildDough()
	w.builder.BuildToppings()
	return nil
}

// Pizza returns the current builder's product.
func (w *Waiter) Pizza() (Pizza, error) {
	if w.builder == nil {
		return Pizza{}, perrors.New(perrors.ErrCodeInvalidRequest, "no pizza builder set")
	}
	return w.builder.Pizza(), nil
}
