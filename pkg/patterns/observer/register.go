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

package observer

import (
	"context"
	"io"

	"github.com/mchmarny/patterns/pkg/catalog"
)

func init() {
	catalog.MustRegister(catalog.Func{
		Meta: catalog.Info{
			Name:     "observer",
			Kind:     catalog.KindPattern,
			Category: catalog.CategoryBehavioral,
			Summary:  "Weather station notifies every registered display when measurements change",
		},
		Fn: Run,
	})
}

// Run publishes three readings to a single display.
func Run(_ context.Context, w io.Writer) error {
	station := NewWeatherData()
	NewCurrentConditionsDisplay(w, station)

	station.SetMeasurements(80, 65, 30.4)
	station.SetMeasurements(82, 70, 29.2)
	station.SetMeasurements(78, 90, 29.2)
	return nil
}
