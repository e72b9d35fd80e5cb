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

// Package lsp keeps every Account implementation substitutable: each honors
// the same contract for deposits, withdrawals and failures.
package lsp

import (
	"sync"

	perrors "github.com/mchmarny/patterns/pkg/errors"
)

// SavingsWithdrawalFee is charged on every savings withdrawal.
const SavingsWithdrawalFee = 10.0

// Account is the contract both account types satisfy. Withdraw either
// debits the full charge or leaves the balance untouched and returns
// INSUFFICIENT_FUNDS.
type Account interface {
	Deposit(amount float64) error
	Withdraw(amount float64) error
	Balance() float64
}

type ledger struct {
	mu      sync.Mutex
	balance float64
}

func checkAmount(amount float64) error {
	if amount <= 0 {
		return perrors.NewWithContext(perrors.ErrCodeInvalidRequest, "amount must be positive",
			map[string]any{"amount": amount})
	}
	return nil
}

// Deposit credits amount, which must be positive.
func (l *ledger) Deposit(amount float64) error {
	if err := checkAmount(amount); err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.balance += amount
	return nil
}

// Balance returns the current balance.
func (l *ledger) Balance() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balance
}

func (l *ledger) debit(amount, charge float64) error {
	if err := checkAmount(amount); err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if charge > l.balance {
		return perrors.NewWithContext(perrors.ErrCodeInsufficientFunds, "insufficient balance",
			map[string]any{"balance": l.balance, "requested": amount, "charge": charge})
	}
	l.balance -= charge
	return nil
}

// CurrentAccount debits exactly the amount withdrawn.
type CurrentAccount struct{ ledger }

// NewCurrentAccount opens a current account with the given starting balance.
func NewCurrentAccount(balance float64) *CurrentAccount {
	return &CurrentAccount{ledger{balance: balance}}
}

// Withdraw debits amount, or returns INSUFFICIENT_FUNDS and leaves the balance unchanged.
func (a *CurrentAccount) Withdraw(amount float64) error {
	return a.debit(amount, amount)
}

// SavingsAccount adds SavingsWithdrawalFee to every withdrawal.
type SavingsAccount struct{ ledger }

// NewSavingsAccount opens a savings account with the given starting balance.
func NewSavingsAccount(balance float64) *SavingsAccount {
	return &SavingsAccount{ledger{balance: balance}}
}

// Withdraw debits amount plus SavingsWithdrawalFee, or returns
// INSUFFICIENT_FUNDS when the balance cannot cover both.
func (a *SavingsAccount) Withdraw(amount float64) error {
	return a.debit(amount, amount+SavingsWithdrawalFee)
}

var (
	_ Account = (*CurrentAccount)(nil)
	_ Account = (*SavingsAccount)(nil)
)

// MakeWithdrawal works with any Account.
func MakeWithdrawal(a Account, amount float64) error {
	return a.Withdraw(amount)
}
