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

// Package ocp adds shipping methods by adding types, never by editing a switch.
package ocp

// ShippingCalculator prices shipping for an order total.
type ShippingCalculator interface {
	Name() string
	Cost(total float64) float64
}

// linear is a flat fee plus a share of the order total.
type linear struct {
	name string
	base float64
	rate float64
}

func (l linear) Name() string               { return l.name }
func (l linear) Cost(total float64) float64 { return l.base + l.rate*total }

// Ground costs 5 plus 10% of the total.
func Ground() ShippingCalculator { return linear{name: "ground", base: 5, rate: 0.1} }

// Air costs 10 plus 20% of the total.
func Air() ShippingCalculator { return linear{name: "air", base: 10, rate: 0.2} }

// Ship costs 20 plus 40% of the total.
func Ship() ShippingCalculator { return linear{name: "ship", base: 20, rate: 0.4} }

// Drone was added later without touching the others: 15 plus 30%.
type Drone struct{}

func (Drone) Name() string               { return "drone" }
func (Drone) Cost(total float64) float64 { return 15 + 0.3*total }

// Order pairs a total with the chosen shipping method.
type Order struct {
	Total    float64
	Shipping ShippingCalculator
}

// ShippingCost delegates to the order's calculator.
func (o Order) ShippingCost() float64 {
	if o.Shipping == nil {
		return 0
	}
	return o.Shipping.Cost(o.Total)
}
