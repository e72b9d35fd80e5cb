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

// Package all registers every example with the catalog.
package all

import (
	_ "github.com/mchmarny/patterns/pkg/patterns/adapter"
	_ "github.com/mchmarny/patterns/pkg/patterns/builder"
	_ "github.com/mchmarny/patterns/pkg/patterns/factory"
	_ "github.com/mchmarny/patterns/pkg/patterns/factorymethod"
	_ "github.com/mchmarny/patterns/pkg/patterns/observer"
	_ "github.com/mchmarny/patterns/pkg/patterns/singleton"
	_ "github.com/mchmarny/patterns/pkg/patterns/strategy"
	_ "github.com/mchmarny/patterns/pkg/relation/aggregation"
	_ "github.com/mchmarny/patterns/pkg/relation/composition"
	_ "github.com/mchmarny/patterns/pkg/solid/dip"
	_ "github.com/mchmarny/patterns/pkg/solid/isp"
	_ "github.com/mchmarny/patterns/pkg/solid/lsp"
	_ "github.com/mchmarny/patterns/pkg/solid/ocp"
	_ "github.com/mchmarny/patterns/pkg/solid/srp"
)
