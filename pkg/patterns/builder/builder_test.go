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
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	perrors "github.com/mchmarny/patterns/pkg/errors"
)

func TestWaiter_ConstructPizza(t *testing.T) {
	tests := []struct {
		name    string
		builder PizzaBuilder
		want    string
	}{
		{
			name:    "hawaiian",
			builder: NewHawaiianPizzaBuilder(),
			want:    "Hawaiian Pizza with Tomato sauce, Regular dough, and toppings: Ham, Pineapple",
		},
		{
			name:    "spicy",
			builder: NewSpicyPizzaBuilder(),
			want:    "Spicy Pizza with Tomato sauce, Thin dough, and toppings: Pepperoni, Jalapeno",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := &Waiter{}
			w.SetBuilder(tt.builder)
			require.NoError(t, w.ConstructPizza())

			p, err := w.Pizza()
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.String())
		})
	}
}

func TestWaiter_NoBuilder(t *testing.T) {
	w := &Waiter{}

	err := w.ConstructPizza()
	assert.Equal(t, perrors.ErrCodeInvalidRequest, perrors.CodeOf(err))

	_, err = w.Pizza()
	assert.Equal(t, perrors.ErrCodeInvalidRequest, perrors.CodeOf(err))
}

func TestBuilder_PizzaIsIndependentCopy(t *testing.T) {
	b := NewHawaiianPizzaBuilder()
	b.BuildToppings()

	first := b.Pizza()
	first.Toppings[0] = "Anchovy"

	second := b.Pizza()
	assert.Equal(t, []string{"Ham", "Pineapple"}, second.Toppings)

	b.Reset()
	assert.Equal(t, "Ham", second.Toppings[0], "reset must not alter a pizza already handed out")
	assert.Empty(t, b.Pizza().Toppings)
}

func TestRun(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Run(t.Context(), &buf))
	assert.Equal(t,
		"Hawaiian Pizza with Tomato sauce, Regular dough, and toppings: Ham, Pineapple\n"+
			"Spicy Pizza with Tomato sauce, Thin dough, and toppings: Pepperoni, Jalapeno\n",
		buf.String())
}
