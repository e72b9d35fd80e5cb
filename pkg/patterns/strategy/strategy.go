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

// Package strategy composes ducks from interchangeable fly and quack behaviors.
package strategy

import (
	"io"
	"sync"
)

// FlyBehavior is a family of flying algorithms.
type FlyBehavior interface {
	Fly(w io.Writer) error
}

// QuackBehavior is a family of quacking algorithms.
type QuackBehavior interface {
	Quack(w io.Writer) error
}

type FlyWithWings struct{}

func (FlyWithWings) Fly(w io.Writer) error {
	_, err := io.WriteString(w, "Flying with wings\n")
	return err
}

type FlyNoWay struct{}

func (FlyNoWay) Fly(w io.Writer) error {
	_, err := io.WriteString(w, "Can't fly\n")
	return err
}

type Quack struct{}

func (Quack) Quack(w io.Writer) error {
	_, err := io.WriteString(w, "Quack!\n")
	return err
}

type Squeak struct{}

func (Squeak) Quack(w io.Writer) error {
	_, err := io.WriteString(w, "Squeak!\n")
	return err
}

// Duck delegates flying and quacking to its current behaviors, which can be
// swapped at runtime. Nil behaviors fall back to FlyNoWay and Squeak.
type Duck struct {
	mu    sync.RWMutex
	name  string
	fly   FlyBehavior
	quack QuackBehavior
}

// NewDuck creates a duck with the given behaviors.
func NewDuck(name string, fly FlyBehavior, quack QuackBehavior) *Duck {
	d := &Duck{name: name}
	d.SetFlyBehavior(fly)
	d.SetQuackBehavior(quack)
	return d
}

func NewMallardDuck() *Duck {
	return NewDuck("Mallard", FlyWithWings{}, Quack{})
}

func NewRubberDuck() *Duck {
	return NewDuck("Rubber", FlyNoWay{}, Squeak{})
}

// Name returns the duck's display name.
func (d *Duck) Name() string {
	return d.name
}

func (d *Duck) PerformFly(w io.Writer) error {
	d.mu.RLock()
	fly := d.fly
	d.mu.RUnlock()
	return fly.Fly(w)
}

func (d *Duck) PerformQuack(w io.Writer) error {
	d.mu.RLock()
	quack := d.quack
	d.mu.RUnlock()
	return quack.Quack(w)
}

func (d *Duck) SetFlyBehavior(fb FlyBehavior) {
	if fb == nil {
		fb = FlyNoWay{}
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.fly = fb
}

func (d *Duck) SetQuackBehavior(qb QuackBehavior) {
	if qb == nil {
		qb = Squeak{}
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.quack = qb
}
