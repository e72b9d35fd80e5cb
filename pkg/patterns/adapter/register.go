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

package adapter

import (
	"context"
	"io"

	"github.com/mchmarny/patterns/pkg/catalog"
)

func init() {
	catalog.MustRegister(catalog.Func{
		Meta: catalog.Info{
			Name:     "adapter",
			Kind:     catalog.KindPattern,
			Category: catalog.CategoryStructural,
			Summary:  "A PayPal gateway is adapted to the payment processor interface",
		},
		Fn: Run,
	})
}

func Run(ctx context.Context, w io.Writer) error {
	if err := Pay(ctx, &StripeProcessor{W: w}, 100); err != nil {
		return err
	}
	gateway := &PayPalGateway{APIKey: "api_key", W: w}
	return Pay(ctx, &PayPalAdapter{Gateway: gateway}, 200)
}
