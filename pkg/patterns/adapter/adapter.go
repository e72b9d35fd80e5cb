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

// Package adapter lets a PayPal gateway with its own API stand in for the
// PaymentProcessor interface clients already use.
package adapter

import (
	"context"
	"fmt"
	"io"

	perrors "github.com/mchmarny/patterns/pkg/errors"
)

// PaymentProcessor is the target interface.
type PaymentProcessor interface {
	ProcessPayment(ctx context.Context, amount float64) error
}

// StripeProcessor implements PaymentProcessor natively.
type StripeProcessor struct {
	W io.Writer
}

func (s *StripeProcessor) ProcessPayment(ctx context.Context, amount float64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(s.W, "Processing payment of $%.2f using Stripe\n", amount)
	return err
}

// PayPalGateway is the adaptee with an incompatible method set.
type PayPalGateway struct {
	APIKey string
	W      io.Writer
}

func (g *PayPalGateway) SendPayment(amount float64) error {
	if g.APIKey == "" {
		return perrors.New(perrors.ErrCodeInvalidRequest, "paypal api key is required")
	}
	_, err := fmt.Fprintf(g.W, "Sending payment of $%.2f using PayPal\n", amount)
	return err
}

// PayPalAdapter satisfies PaymentProcessor by delegating to a PayPalGateway.
type PayPalAdapter struct {
	Gateway *PayPalGateway
}

func (a *PayPalAdapter) ProcessPayment(ctx context.Context, amount float64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return a.Gateway.SendPayment(amount)
}

// Pay is the client. It only knows PaymentProcessor.
func Pay(ctx context.Context, p PaymentProcessor, amount float64) error {
	if amount <= 0 {
		return perrors.NewWithContext(perrors.ErrCodeInvalidRequest, "payment amount must be positive",
			map[string]any{"amount": amount})
	}
	return p.ProcessPayment(ctx, amount)
}
