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

package singleton

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	perrors "github.com/mchmarny/patterns/pkg/errors"
	"github.com/mchmarny/patterns/pkg/logging"
)

type resource struct {
	id int64
}

// countingFactory returns a factory that records how often it ran and
// optionally sleeps to widen the race window.
func countingFactory(calls *atomic.Int64, delay time.Duration) Factory[resource] {
	return func() (*resource, error) {
		n := calls.Add(1)
		if delay > 0 {
			time.Sleep(delay)
		}
		return &resource{id: n}, nil
	}
}

func quiet() Option {
	return WithLogger(logging.Discard())
}

// race launches n goroutines held behind a start barrier and returns every
// pointer they observed.
func race(t *testing.T, h *Holder[resource], n int) []*resource {
	t.Helper()

	start := make(chan struct{})
	results := make([]*resource, n)
	errs := make([]error, n)

	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			<-start
			results[i], errs[i] = h.Get()
		}(i)
	}
	close(start)
	wg.Wait()

	for i, err := range errs {
		require.NoError(t, err, "goroutine %d", i)
	}
	return results
}

func TestHolder_SingleGoroutineSameInstance(t *testing.T) {
	var calls atomic.Int64
	h := New(countingFactory(&calls, 0), quiet())

	first, err := h.Get()
	require.NoError(t, err)
	second, err := h.Get()
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, int64(1), calls.Load())
	assert.Equal(t, int64(1), h.Constructions())
	assert.Equal(t, int64(1), h.Attempts())
	assert.Equal(t, Initialized, h.State())
}

func TestHolder_HundredGoroutinesNoPriorCall(t *testing.T) {
	var calls atomic.Int64
	h := New(countingFactory(&calls, time.Millisecond), quiet())

	results := race(t, h, 100)

	assert.Equal(t, int64(1), calls.Load(), "factory must run exactly once")
	for i, r := range results {
		assert.Same(t, results[0], r, "goroutine %d observed a different instance", i)
	}
}

func TestHolder_RepeatedRaces(t *testing.T) {
	const rounds = 50
	const goroutines = 64

	for round := 0; round < rounds; round++ {
		var calls atomic.Int64
		h := New(countingFactory(&calls, 0), quiet())

		results := race(t, h, goroutines)

		require.Equal(t, int64(1), calls.Load(), "round %d constructed more than once", round)
		for _, r := range results {
			require.Same(t, results[0], r, "round %d", round)
		}
	}
}

func TestHolder_RetryAfterFailure(t *testing.T) {
	boom := errors.New("boom")
	var calls atomic.Int64
	h := New(func() (*resource, error) {
		if calls.Add(1) == 1 {
			return nil, boom
		}
		return &resource{id: 42}, nil
	}, quiet())

	inst, err := h.Get()
	require.Error(t, err)
	assert.Nil(t, inst)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, perrors.ErrCodeConstructionFailed, perrors.CodeOf(err))
	assert.Equal(t, Uninitialized, h.State(), "failed construction must leave the slot empty")

	_, ok := h.Peek()
	assert.False(t, ok)

	inst, err = h.Get()
	require.NoError(t, err)
	assert.Equal(t, int64(42), inst.id)

	again, err := h.Get()
	require.NoError(t, err)
	assert.Same(t, inst, again)
	assert.Equal(t, int64(2), h.Attempts())
	assert.Equal(t, int64(1), h.Constructions())
}

func TestHolder_FailureUnderContention(t *testing.T) {
	var calls atomic.Int64
	h := New(func() (*resource, error) {
		if calls.Add(1) == 1 {
			time.Sleep(time.Millisecond)
			return nil, errors.New("first attempt fails")
		}
		return &resource{id: 7}, nil
	}, quiet())

	const n = 50
	start := make(chan struct{})
	results := make([]*resource, n)
	errs := make([]error, n)

	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			<-start
			results[i], errs[i] = h.Get()
		}(i)
	}
	close(start)
	wg.Wait()

	failures := 0
	var winner *resource
	for i := range results {
		if errs[i] != nil {
			failures++
			assert.Nil(t, results[i])
			continue
		}
		if winner == nil {
			winner = results[i]
		}
		assert.Same(t, winner, results[i])
	}

	assert.Equal(t, 1, failures, "only the goroutine that ran the failing factory should see the error")
	assert.Equal(t, int64(2), calls.Load())
	assert.Equal(t, int64(1), h.Constructions())
}

func TestHolder_NilInstanceIsFailure(t *testing.T) {
	h := New(func() (*resource, error) { return nil, nil }, quiet())

	inst, err := h.Get()
	require.Error(t, err)
	assert.Nil(t, inst)
	assert.ErrorIs(t, err, ErrNilInstance)
	assert.Equal(t, Uninitialized, h.State())
}

func TestHolder_PanicReleasesGuard(t *testing.T) {
	var calls atomic.Int64
	h := New(func() (*resource, error) {
		if calls.Add(1) == 1 {
			panic("factory blew up")
		}
		return &resource{id: 2}, nil
	}, quiet())

	_, err := h.Get()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFactoryPanic)
	assert.Contains(t, err.Error(), "factory blew up")

	// a second Get would deadlock if the guard had not been released
	done := make(chan struct{})
	go func() {
		defer close(done)
		inst, err := h.Get()
		assert.NoError(t, err)
		assert.NotNil(t, inst)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Get blocked after a panicking factory")
	}
}

func TestHolder_Reset(t *testing.T) {
	var calls atomic.Int64
	h := New(countingFactory(&calls, 0), quiet())

	assert.False(t, h.Reset(), "reset of an empty holder drops nothing")

	first := h.MustGet()
	assert.True(t, h.Reset())
	assert.Equal(t, Uninitialized, h.State())

	second := h.MustGet()
	assert.NotSame(t, first, second)
	assert.Equal(t, int64(2), h.Constructions())
	assert.Equal(t, int64(1), first.id, "callers keep the old instance")
}

func TestHolder_ResetDuringRace(t *testing.T) {
	var calls atomic.Int64
	h := New(countingFactory(&calls, 0), quiet())

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := h.Get()
			assert.NoError(t, err)
		}()
		go func() {
			defer wg.Done()
			h.Reset()
		}()
	}
	wg.Wait()

	// every reset drops at most one instance, so constructions is bounded
	assert.LessOrEqual(t, h.Constructions(), int64(21))
	assert.Equal(t, calls.Load(), h.Constructions())
}

func TestHolder_Peek(t *testing.T) {
	var calls atomic.Int64
	h := New(countingFactory(&calls, 0), quiet())

	inst, ok := h.Peek()
	assert.False(t, ok)
	assert.Nil(t, inst)
	assert.Equal(t, int64(0), calls.Load(), "Peek must not construct")

	got := h.MustGet()
	inst, ok = h.Peek()
	assert.True(t, ok)
	assert.Same(t, got, inst)
}

func TestHolder_MustGetPanicsOnFailure(t *testing.T) {
	h := New(func() (*resource, error) { return nil, errors.New("nope") }, quiet())

	assert.Panics(t, func() { h.MustGet() })
}

func TestNew_NilFactoryPanics(t *testing.T) {
	assert.PanicsWithValue(t, "singleton: New(nil factory)", func() {
		New[resource](nil)
	})
}

func TestHolder_Name(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		want string
	}{
		{name: "default", want: DefaultName},
		{name: "custom", opts: []Option{WithName("settings")}, want: "settings"},
		{name: "empty ignored", opts: []Option{WithName("")}, want: DefaultName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := New(func() (*resource, error) { return &resource{}, nil }, tt.opts...)
			assert.Equal(t, tt.want, h.Name())
		})
	}
}

func TestState_String(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{Uninitialized, "uninitialized"},
		{Initialized, "initialized"},
		{State(9), "state(9)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.state.String())
		})
	}
}

func BenchmarkHolder_GetInitialized(b *testing.B) {
	h := New(func() (*resource, error) { return &resource{}, nil }, WithLogger(logging.Discard()))
	h.MustGet()

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := h.Get(); err != nil {
				b.Fatal(err)
			}
		}
	})
}
