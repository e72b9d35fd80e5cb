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
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	perrors "github.com/mchmarny/patterns/pkg/errors"
)

func TestPay(t *testing.T) {
	tests := []struct {
		name    string
		newProc func(*bytes.Buffer) PaymentProcessor
		amount  float64
		want    string
		code    perrors.ErrorCode
	}{
		{
			name:    "stripe",
			newProc: func(b *bytes.Buffer) PaymentProcessor { return &StripeProcessor{W: b} },
			amount:  100,
			want:    "Processing payment of $100.00 using Stripe\n",
		},
		{
			name: "paypal through adapter",
			newProc: func(b *bytes.Buffer) PaymentProcessor {
				return &PayPalAdapter{Gateway: &PayPalGateway{APIKey: "k", W: b}}
			},
			amount: 200.5,
			want:   "Sending payment of $200.50 using PayPal\n",
		},
		{
			name:    "zero amount",
			newProc: func(b *bytes.Buffer) PaymentProcessor { return &StripeProcessor{W: b} },
			amount:  0,
			code:    perrors.ErrCodeInvalidRequest,
		},
		{
			name: "missing api key",
			newProc: func(b *bytes.Buffer) PaymentProcessor {
				return &PayPalAdapter{Gateway: &PayPalGateway{W: b}}
			},
			amount: 10,
			code:   perrors.ErrCodeInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := Pay(t.Context(), tt.newProc(&buf), tt.amount)
			if tt.code != "" {
				assert.Equal(t, tt.code, perrors.CodeOf(err))
				assert.Zero(t, buf.Len())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestPay_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	var buf bytes.Buffer
	err := Pay(ctx, &PayPalAdapter{Gateway: &PayPalGateway{APIKey: "k", W: &buf}}, 5)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, buf.Len())
}

func TestRun(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Run(t.Context(), &buf))
	assert.Equal(t,
		"Processing payment of $100.00 using Stripe\nSending payment of $200.00 using PayPal\n",
		buf.String())
}
