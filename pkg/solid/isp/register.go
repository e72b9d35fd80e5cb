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

package isp

import (
	"context"
	"io"

	"github.com/mchmarny/patterns/pkg/catalog"
)

func init() {
	catalog.MustRegister(catalog.Func{
		Meta: catalog.Info{
			Name:     "isp",
			Title:    "Interface Segregation",
			Kind:     catalog.KindPrinciple,
			Category: catalog.CategorySOLID,
			Summary:  "Devices implement only the control interfaces they support",
		},
		Fn: Run,
	})
}

func Run(_ context.Context, w io.Writer) error {
	thermostat := NewSmartThermostat(w)
	if err := thermostat.TurnOn(); err != nil {
		return err
	}
	if err := thermostat.SetTemperature(); err != nil {
		return err
	}

	speaker := NewSmartSpeaker(w)
	if err := speaker.TurnOn(); err != nil {
		return err
	}
	return speaker.SetVolume()
}
