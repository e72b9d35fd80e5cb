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
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	perrors "github.com/mchmarny/patterns/pkg/errors"
)

func TestOrderPizza(t *testing.T) {
	tests := []struct {
		name  string
		store Store
		want  []string
	}{
		{
			name:  "new york",
			store: NYPizzaStore{},
			want: []string{
				"Preparing Pizza", "Adding Tomato sauce", "Adding Regular dough", "Adding toppings:",
				"Mozzarella", "Parmesan",
				"Baking Pizza", "Cutting Pizza into diagonal slices", "Putting Pizza in a box",
			},
		},
		{
			name:  "chicago",
			store: ChicagoPizzaStore{},
			want: []string{
				"Preparing Pizza", "Adding Tomato sauce", "Adding Regular dough", "Adding toppings:",
				"Cheeze", "Mozzarella", "Parmesan",
				"Baking Pizza", "Cutting Pizza into square slices", "Putting Pizza in a box",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			p, err := OrderPizza(&buf, tt.store, "Cheese")
			require.NoError(t, err)
			assert.Equal(t, "Cheese Pizza", p.Name())
			assert.Equal(t, tt.want, strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n"))
		})
	}
}

func TestOrderPizza_UnknownKind(t *testing.T) {
	for _, store := range []Store{NYPizzaStore{}, ChicagoPizzaStore{}} {
		var buf bytes.Buffer
		p, err := OrderPizza(&buf, store, "Veggie")
		require.Error(t, err)
		assert.Nil(t, p)
		assert.Equal(t, perrors.ErrCodeNotFound, perrors.CodeOf(err))
		assert.Zero(t, buf.Len(), "no workflow output for an unknown pizza")
	}
}

func TestRun(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Run(t.Context(), &buf))
	assert.Equal(t, 2, strings.Count(buf.String(), "Ordered a Cheese Pizza"))
	assert.Contains(t, buf.String(), "square slices")
}
