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

package factorymethod

import (
	"context"
	"fmt"
	"io"

	"github.com/mchmarny/patterns/pkg/catalog"
)

func init() {
	catalog.MustRegister(catalog.Func{
		Meta: catalog.Info{
			Name:     "factory-method",
			Kind:     catalog.KindPattern,
			Category: catalog.CategoryCreational,
			Summary:  "Pizza stores override the factory method inside a shared ordering workflow",
		},
		Fn: Run,
	})
}

func Run(_ context.Context, w io.Writer) error {
	for _, store := range []Store{NYPizzaStore{}, ChicagoPizzaStore{}} {
		p, err := OrderPizza(w, store, "Cheese")
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Ordered a %s\n\n", p.Name())
	}
	return nil
}
