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

package builder

import (
	"context"
	"fmt"
	"io"

	"github.com/mchmarny/patterns/pkg/catalog"
)

func init() {
	catalog.MustRegister(catalog.Func{
		Meta: catalog.Info{
			Name:     "builder",
			Kind:     catalog.KindPattern,
			Category: catalog.CategoryCreational,
			Summary:  "A waiter directs pizza builders through the same construction steps",
		},
		Fn: Run,
	})
}

// Run has the waiter build one pizza with each builder.
func Run(_ context.Context, w io.Writer) error {
	waiter := &Waiter{}

	for _, b := range []PizzaBuilder{NewHawaiianPizzaBuilder(), NewSpicyPizzaBuilder()} {
		waiter.SetBuilder(b)
		if err := waiter.ConstructPizza(); err != nil {
			return err
		}
		p, err := waiter.Pizza()
		if err != nil {
			return err
		}
		fmt.Fprintln(w, p)
	}
	return nil
}
