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

package singleton_test

import (
	"fmt"

	"github.com/mchmarny/patterns/pkg/singleton"
)

type connection struct {
	dsn string
}

func ExampleHolder() {
	db := singleton.New(func() (*connection, error) {
		fmt.Println("connecting")
		return &connection{dsn: "postgres://localhost/catalog"}, nil
	}, singleton.WithName("db"))

	first := db.MustGet()
	second := db.MustGet()

	fmt.Println(first == second, first.dsn)
	fmt.Println(db.State(), db.Constructions())
	// Output:
	// connecting
	// true postgres://localhost/catalog
	// initialized 1
}

func ExampleHolder_Reset() {
	n := 0
	counter := singleton.New(func() (*int, error) {
		n++
		v := n
		return &v, nil
	})

	fmt.Println(*counter.MustGet())
	counter.Reset()
	fmt.Println(*counter.MustGet())
	// Output:
	// 1
	// 2
}
