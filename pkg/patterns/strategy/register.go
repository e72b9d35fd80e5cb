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

package strategy

import (
	"context"
	"fmt"
	"io"

	"github.com/mchmarny/patterns/pkg/catalog"
)

func init() {
	catalog.MustRegister(catalog.Func{
		Meta: catalog.Info{
			Name:     "strategy",
			Kind:     catalog.KindPattern,
			Category: catalog.CategoryBehavioral,
			Summary:  "Ducks delegate flying and quacking to swappable behaviors",
		},
		Fn: Run,
	})
}

// Run exercises both ducks, then teaches the rubber duck to fly.
func Run(_ context.Context, w io.Writer) error {
	mallard := NewMallardDuck()
	rubber := NewRubberDuck()

	for _, d := range []*Duck{mallard, rubber} {
		fmt.Fprintf(w, "%s duck:\n", d.Name())
		if err := d.PerformFly(w); err != nil {
			return err
		}
		if err := d.PerformQuack(w); err != nil {
			return err
		}
	}

	fmt.Fprintln(w, "Rubber duck gets wings:")
	rubber.SetFlyBehavior(FlyWithWings{})
	return rubber.PerformFly(w)
}
