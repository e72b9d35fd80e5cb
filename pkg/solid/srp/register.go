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

package srp

import (
	"context"
	"io"

	"github.com/mchmarny/patterns/pkg/catalog"
)

func init() {
	catalog.MustRegister(catalog.Func{
		Meta: catalog.Info{
			Name:     "srp",
			Title:    "Single Responsibility",
			Kind:     catalog.KindPrinciple,
			Category: catalog.CategorySOLID,
			Summary:  "Order, payment and invoicing each live in their own type",
		},
		Fn: Run,
	})
}

func Run(_ context.Context, w io.Writer) error {
	order := NewOrder(1,
		Item{ID: 1, Name: "item1", Price: 50},
		Item{ID: 2, Name: "item2", Price: 100},
	)

	if err := (PaymentProcessor{W: w}).Process(order, order.Total()); err != nil {
		return err
	}
	return InvoiceGenerator{W: w}.Generate(order)
}
