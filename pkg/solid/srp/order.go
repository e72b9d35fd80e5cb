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

// Package srp splits order bookkeeping, payment and invoicing into types that
// each have one reason to change.
package srp

import (
	"fmt"
	"io"
	"slices"
	"sync"

	perrors "github.com/mchmarny/patterns/pkg/errors"
)

// Item is an order line.
type Item struct {
	ID    int
	Name  string
	Price float64
}

// Order tracks items and keeps a running total. It only manages order details.
type Order struct {
	CustomerID int

	mu    sync.RWMutex
	items []Item
	total float64
}

// NewOrder creates an order for customerID with the given items.
func NewOrder(customerID int, items ...Item) *Order {
	o := &Order{CustomerID: customerID}
	for _, it := range items {
		o.AddItem(it)
	}
	return o
}

func (o *Order) AddItem(it Item) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.items = append(o.items, it)
	o.total += it.Price
}

// RemoveItem drops the first item with id.
func (o *Order) RemoveItem(id int) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	i := slices.IndexFunc(o.items, func(it Item) bool { return it.ID == id })
	if i < 0 {
		return perrors.NewWithContext(perrors.ErrCodeNotFound, "item not in order",
			map[string]any{"id": id, "customer": o.CustomerID})
	}
	o.total -= o.items[i].Price
	o.items = slices.Delete(o.items, i, i+1)
	return nil
}

func (o *Order) Items() []Item {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return slices.Clone(o.items)
}

func (o *Order) Total() float64 {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.total
}

// PaymentProcessor only handles charging.
type PaymentProcessor struct {
	W io.Writer
}

// Process charges amount against order.
func (p PaymentProcessor) Process(order *Order, amount float64) error {
	if amount <= 0 {
		return perrors.NewWithContext(perrors.ErrCodeInvalidRequest, "payment amount must be positive",
			map[string]any{"amount": amount})
	}
	_, err := fmt.Fprintf(p.W, "Processing payment of $%.2f for order with total $%.2f\n", amount, order.Total())
	return err
}

// InvoiceGenerator only renders invoices.
type InvoiceGenerator struct {
	W io.Writer
}

func (g InvoiceGenerator) Generate(order *Order) error {
	_, err := fmt.Fprintf(g.W, "Generating invoice\nCustomer ID: %d\nTotal: %.2f\n", order.CustomerID, order.Total())
	return err
}
