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

// Package singleton demonstrates a process-wide accessor built on the lazy
// holder in pkg/singleton. Every caller of GetInstance shares one Settings.
package singleton

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	perrors "github.com/mchmarny/patterns/pkg/errors"
	lazy "github.com/mchmarny/patterns/pkg/singleton"
)

// Settings is the shared application state.
type Settings struct {
	ID        string
	CreatedAt time.Time

	mu     sync.RWMutex
	values map[string]string
}

func newSettings() (*Settings, error) {
	return &Settings{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		values:    make(map[string]string),
	}, nil
}

// Set stores a value.
func (s *Settings) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

// Get returns a value.
func (s *Settings) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

var instance = lazy.New(newSettings, lazy.WithName("settings"))

// GetInstance returns the process-wide Settings, creating it on first use.
func GetInstance() (*Settings, error) {
	return instance.Get()
}

// Race calls GetInstance from n goroutines released together and returns
// how many distinct instances they observed. Goroutines still waiting for
// the release return when ctx is done.
func Race(ctx context.Context, n int) (int, error) {
	if n < 1 {
		return 0, perrors.NewWithContext(perrors.ErrCodeInvalidRequest,
			"race needs at least one goroutine", map[string]any{"goroutines": n})
	}

	start := make(chan struct{})
	seen := make([]*Settings, n)

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			select {
			case <-start:
			case <-gctx.Done():
				return gctx.Err()
			}
			s, err := GetInstance()
			if err != nil {
				return err
			}
			seen[i] = s
			return nil
		})
	}
	select {
	case <-ctx.Done():
	default:
		close(start)
	}
	if err := g.Wait(); err != nil {
		return 0, fmt.Errorf("singleton race failed: %w", err)
	}

	distinct := make(map[*Settings]struct{}, 1)
	for _, s := range seen {
		distinct[s] = struct{}{}
	}
	return len(distinct), nil
}

// Run races goroutines against the shared accessor and reports the result.
func Run(ctx context.Context, w io.Writer) error {
	const goroutines = 100

	distinct, err := Race(ctx, goroutines)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "goroutines: %d\n", goroutines)
	fmt.Fprintf(w, "constructions: %d\n", instance.Constructions())
	fmt.Fprintf(w, "same instance: %t\n", distinct == 1)

	if distinct != 1 {
		return fmt.Errorf("observed %d distinct instances", distinct)
	}
	return nil
}
