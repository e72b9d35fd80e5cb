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

// Package composition models a car that creates and owns its engine.
package composition

// DefaultEngineCapacity is used by NewCar.
const DefaultEngineCapacity = "2.0L"

type Engine struct {
	Capacity string
}

func (e *Engine) Start() string { return "Engine started" }
func (e *Engine) Stop() string  { return "Engine stopped" }

// Car builds its own Engine and never hands it out, so the engine lives and
// dies with the car.
type Car struct {
	engine *Engine
}

func NewCar() *Car {
	return NewCarWithCapacity(DefaultEngineCapacity)
}

func NewCarWithCapacity(capacity string) *Car {
	if capacity == "" {
		capacity = DefaultEngineCapacity
	}
	return &Car{engine: &Engine{Capacity: capacity}}
}

// EngineCapacity returns the capacity of the owned engine.
func (c *Car) EngineCapacity() string {
	return c.engine.Capacity
}

func (c *Car) Start() string {
	return "Car with engine " + c.engine.Capacity + " " + c.engine.Start()
}

func (c *Car) Stop() string {
	return "Car with engine " + c.engine.Capacity + " " + c.engine.Stop()
}
