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

// Package isp gives each device only the control interfaces it supports.
package isp

import (
	"fmt"
	"io"
)

type Switchable interface {
	TurnOn() error
	TurnOff() error
}

type TemperatureControllable interface {
	SetTemperature() error
}

type VolumeControllable interface {
	SetVolume() error
}

type device struct {
	name string
	w    io.Writer
	on   bool
}

func (d *device) say(format string, args ...any) error {
	_, err := fmt.Fprintf(d.w, format+"\n", args...)
	return err
}

func (d *device) TurnOn() error {
	d.on = true
	return d.say("Turning on the %s", d.name)
}

func (d *device) TurnOff() error {
	d.on = false
	return d.say("Turning off the %s", d.name)
}

// On reports whether the device is switched on.
func (d *device) On() bool { return d.on }

// SmartThermostat is Switchable and TemperatureControllable.
type SmartThermostat struct{ device }

func NewSmartThermostat(w io.Writer) *SmartThermostat {
	return &SmartThermostat{device{name: "thermostat", w: w}}
}

func (t *SmartThermostat) SetTemperature() error {
	return t.say("Setting the temperature")
}

// SmartSpeaker is Switchable and VolumeControllable.
type SmartSpeaker struct{ device }

func NewSmartSpeaker(w io.Writer) *SmartSpeaker {
	return &SmartSpeaker{device{name: "speaker", w: w}}
}

func (s *SmartSpeaker) SetVolume() error {
	return s.say("Setting the volume")
}

var (
	_ Switchable              = (*SmartThermostat)(nil)
	_ TemperatureControllable = (*SmartThermostat)(nil)
	_ Switchable              = (*SmartSpeaker)(nil)
	_ VolumeControllable      = (*SmartSpeaker)(nil)
)
