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

package lsp

import (
	"context"
	"fmt"
	"io"

	"github.com/mchmarny/patterns/pkg/catalog"
)

func init() {
	catalog.MustRegister(catalog.Func{
		Meta: catalog.Info{
			Name:     "lsp",
			Title:    "Liskov Substitution",
			Kind:     catalog.KindPrinciple,
			Category: catalog.CategorySOLID,
			Summary:  "Current and savings accounts are interchangeable behind one contract",
		},
		Fn: Run,
	})
}

func Run(_ context.Context, w io.Writer) error {
	accounts := []struct {
		name    string
		account Account
	}{
		{"current", NewCurrentAccount(100)},
		{"savings", NewSavingsAccount(100)},
	}

	for _, a := range accounts {
		if err := MakeWithdrawal(a.account, 50); err != nil {
			return err
		}
		fmt.Fprintf(w, "%s balance: %.2f\n", a.name, a.account.Balance())
	}
	return nil
}
