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

// Package observer shows a weather station that pushes measurements to every
// registered display when they change.
package observer

import (
	"fmt"
	"io"
	"slices"
	"sync"

	perrors "github.com/mchmarny/patterns/pkg/errors"
)

// Measurements is one weather reading.
type Measurements struct {
	Temperature float64
	Humidity    float64
	Pressure    float64
}

// Observer receives every published reading.
type Observer interface {
	Update(m Measurements)
}

// Registration identifies one Register call and is what Remove takes.
// Observers are not compared, so any Observer value may be registered.
type Registration uint64

// Subject manages observers and publishes to them.
type Subject interface {
	Register(o Observer) Registration
	Remove(r Registration) error
	Notify()
}

type subscriber struct {
	id       Registration
	observer Observer
}

// WeatherData is the concrete Subject. It is safe for concurrent use.
type WeatherData struct {
	mu        sync.RWMutex
	current   Measurements
	nextID    Registration
	observers []subscriber
}

var _ Subject = (*WeatherData)(nil)

// NewWeatherData creates a station with no observers.
func NewWeatherData() *WeatherData {
	return &WeatherData{}
}

// Register adds o and returns its registration. Registering the same
// observer twice delivers twice, and each registration is removed on its own.
func (wd *WeatherData) Register(o Observer) Registration {
	wd.mu.Lock()
	defer wd.mu.Unlock()
	wd.nextID++
	wd.observers = append(wd.observers, subscriber{id: wd.nextID, observer: o})
	return wd.nextID
}

// Remove drops the observer registered under r.
func (wd *WeatherData) Remove(r Registration) error {
	wd.mu.Lock()
	defer wd.mu.Unlock()

	i := slices.IndexFunc(wd.observers, func(s subscriber) bool { return s.id == r })
	if i < 0 {
		return perrors.NewWithContext(perrors.ErrCodeNotFound, "observer is not registered",
			map[string]any{"registration": uint64(r)})
	}
	wd.observers = slices.Delete(wd.observers, i, i+1)
	return nil
}

// Notify pushes the current reading to every observer in registration order.
// Observers are called without the lock held so they may read back.
func (wd *WeatherData) Notify() {
	wd.mu.RLock()
	m := wd.current
	observers := slices.Clone(wd.observers)
	wd.mu.RUnlock()

	for _, s := range observers {
		s.observer.Update(m)
	}
}

// SetMeasurements records a new reading and notifies observers.
func (wd *WeatherData) SetMeasurements(temperature, humidity, pressure float64) {
	wd.mu.Lock()
	wd.current = Measurements{Temperature: temperature, Humidity: humidity, Pressure: pressure}
	wd.mu.Unlock()

	wd.Notify()
}

// Current returns the latest reading.
func (wd *WeatherData) Current() Measurements {
	wd.mu.RLock()
	defer wd.mu.RUnlock()
	return wd.current
}

// Observers returns the number of registered observers.
func (wd *WeatherData) Observers() int {
	wd.mu.RLock()
	defer wd.mu.RUnlock()
	return len(wd.observers)
}

// CurrentConditionsDisplay renders each update to its writer.
type CurrentConditionsDisplay struct {
	mu   sync.Mutex
	w    io.Writer
	last Measurements
	reg  Registration
}

// NewCurrentConditionsDisplay creates a display and registers it with subject.
func NewCurrentConditionsDisplay(w io.Writer, subject Subject) *CurrentConditionsDisplay {
	d := &CurrentConditionsDisplay{w: w}
	d.reg = subject.Register(d)
	return d
}

// Registration returns the handle to pass to the subject's Remove.
func (d *CurrentConditionsDisplay) Registration() Registration {
	return d.reg
}

// Update stores m and displays it.
func (d *CurrentConditionsDisplay) Update(m Measurements) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.last = m
	d.display()
}

// Last returns the most recently displayed reading.
func (d *CurrentConditionsDisplay) Last() Measurements {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.last
}

func (d *CurrentConditionsDisplay) display() {
	fmt.Fprintf(d.w, "Current Conditions: %vF degrees, %v%% humidity, and %v pressure\n",
		d.last.Temperature, d.last.Humidity, d.last.Pressure)
}
