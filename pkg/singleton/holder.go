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
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	perrors "github.com/mchmarny/patterns/pkg/errors"
)

// DefaultName labels holders created without WithName.
const DefaultName = "default"

var (
	// ErrNilInstance is returned when a factory reports success but returns nil.
	ErrNilInstance = errors.New("singleton: factory returned nil instance")

	// ErrFactoryPanic is returned when a factory panics during construction.
	ErrFactoryPanic = errors.New("singleton: factory panicked")
)

// State is the lifecycle state of a Holder.
type State int

const (
	// Uninitialized means the slot is empty.
	Uninitialized State = iota
	// Initialized means the slot holds the shared instance.
	Initialized
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Initialized:
		return "initialized"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Factory constructs the guarded instance.
type Factory[T any] func() (*T, error)

// Option configures a Holder.
type Option func(*options)

type options struct {
	name   string
	logger *slog.Logger
}

// WithName sets the label used in logs and metrics. Empty names are ignored.
func WithName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.name = name
		}
	}
}

// WithLogger sets the logger used for construction events.
// When unset, the slog default at the time of the event is used.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Holder lazily constructs a single shared *T on first use and returns the
// same pointer to every caller afterwards, from any goroutine.
//
// The slot is read with an atomic load on the fast path. Only callers that
// observe an empty slot take the guard, re-check the slot and, if it is still
// empty, run the factory. The atomic store that publishes the instance
// happens-before every load that observes it, so no caller can see a
// partially constructed value.
//
// A failed construction leaves the slot empty; the next Get retries.
// The zero Holder is not usable, create one with New.
type Holder[T any] struct {
	slot atomic.Pointer[T]
	mu   sync.Mutex

	factory Factory[T]
	name    string
	logger  *slog.Logger

	attempts      atomic.Int64
	constructions atomic.Int64
}

// New returns an uninitialized Holder that builds its instance with factory.
// It panics if factory is nil.
func New[T any](factory Factory[T], opts ...Option) *Holder[T] {
	if factory == nil {
		panic("singleton: New(nil factory)")
	}

	o := options{name: DefaultName}
	for _, opt := range opts {
		opt(&o)
	}

	return &Holder[T]{
		factory: factory,
		name:    o.name,
		logger:  o.logger,
	}
}

// Get returns the shared instance, constructing it if this is the first
// successful call. Construction errors are returned to the caller that ran
// the factory and wrap the factory's error with code CONSTRUCTION_FAILED.
func (h *Holder[T]) Get() (*T, error) {
	if inst := h.slot.Load(); inst != nil {
		return inst, nil
	}
	return h.getSlow()
}

func (h *Holder[T]) getSlow() (*T, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	// another goroutine may have published while we waited for the guard
	if inst := h.slot.Load(); inst != nil {
		return inst, nil
	}

	inst, err := h.construct()
	if err != nil {
		return nil, err
	}

	h.slot.Store(inst)
	return inst, nil
}

// construct runs the factory. The caller must hold h.mu.
func (h *Holder[T]) construct() (inst *T, err error) {
	attempt := h.attempts.Add(1)
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			inst = nil
			err = fmt.Errorf("%w: %v", ErrFactoryPanic, r)
		}

		elapsed := time.Since(start)
		constructionDuration.WithLabelValues(h.name).Observe(elapsed.Seconds())

		if err != nil {
			constructionsTotal.WithLabelValues(h.name, statusError).Inc()
			h.log().Warn("singleton construction failed",
				slog.String("holder", h.name),
				slog.Int64("attempt", attempt),
				slog.String("error", err.Error()))
			err = perrors.WrapWithContext(perrors.ErrCodeConstructionFailed,
				"failed to construct instance", err, map[string]any{
					"holder":  h.name,
					"attempt": attempt,
				})
			return
		}

		h.constructions.Add(1)
		constructionsTotal.WithLabelValues(h.name, statusSuccess).Inc()
		h.log().Debug("singleton constructed",
			slog.String("holder", h.name),
			slog.Int64("attempt", attempt),
			slog.Duration("duration", elapsed))
	}()

	inst, err = h.factory()
	if err == nil && inst == nil {
		err = ErrNilInstance
	}
	return inst, err
}

// MustGet is like Get but panics if construction fails.
func (h *Holder[T]) MustGet() *T {
	inst, err := h.Get()
	if err != nil {
		panic(err)
	}
	return inst
}

// Peek returns the instance if one has been published. It never constructs.
func (h *Holder[T]) Peek() (*T, bool) {
	inst := h.slot.Load()
	return inst, inst != nil
}

// State reports whether the slot currently holds an instance.
func (h *Holder[T]) State() State {
	if h.slot.Load() != nil {
		return Initialized
	}
	return Uninitialized
}

// Reset drops the published instance so the next Get constructs a new one.
// It takes the same guard as construction, so it never interleaves with a
// factory call. Callers still holding the old pointer keep using it.
// Reset reports whether an instance was dropped.
func (h *Holder[T]) Reset() bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.slot.Swap(nil) == nil {
		return false
	}

	resetsTotal.WithLabelValues(h.name).Inc()
	h.log().Debug("singleton reset", slog.String("holder", h.name))
	return true
}

// Name returns the holder's label.
func (h *Holder[T]) Name() string {
	return h.name
}

// Attempts returns the number of factory invocations, successful or not.
func (h *Holder[T]) Attempts() int64 {
	return h.attempts.Load()
}

// Constructions returns the number of successful factory invocations.
// Without Reset it never exceeds one.
func (h *Holder[T]) Constructions() int64 {
	return h.constructions.Load()
}

func (h *Holder[T]) log() *slog.Logger {
	if h.logger != nil {
		return h.logger
	}
	return slog.Default()
}
