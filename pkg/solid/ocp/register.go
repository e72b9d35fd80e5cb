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

package ocp

import (
	"context"
	"fmt"
	"io"

	"github.com/mchmarny/patterns/pkg/catalog"
)

func init() {
	catalog.MustRegister(catalog.Func{
		Meta: catalog.Info{
			Name:     "ocp",
			Title:    "Open Closed",
			Kind:     catalog.KindPrinciple,
			Category: catalog.CategorySOLID,
			Summary:  "New shipping methods extend the calculator without modifying it",
		},
		Fn: Run,
	})
}

func Run(_ context.Context, w io.Writer) error {
	for _, m := range []ShippingCalculator{Ground(), Air(), Ship(), Drone{}} {
		o := Order{Total: 100, Shipping: m}
		if _, err := fmt.Fprintf(w, "%s: %.2f\n", m.Name(), o.ShippingCost()); err != nil {
			return err
		}
	}
	return nil
}
