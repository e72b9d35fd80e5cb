// Package singleton provides a generic, lazily initialized, concurrency-safe
// holder for a single shared instance.
//
// # Double-Checked Locking
//
// Get reads the instance slot with an atomic load. Once the slot is populated
// every call returns without taking a lock. While it is empty, callers take the
// guard, re-check the slot (another goroutine may have finished construction
// while they waited) and only then run the factory:
//
//	settings := singleton.New(func() (*Settings, error) {
//	    return loadSettings()
//	}, singleton.WithName("settings"))
//
//	s, err := settings.Get()
//	if err != nil {
//	    return fmt.Errorf("failed to load settings: %w", err)
//	}
//
// # Lifecycle
//
// A holder moves from Uninitialized to Initialized on the first successful
// construction. Reset moves it back; it is meant for test isolation and takes
// the same guard as construction.
//
// # Failure Policy
//
// A failing factory does not poison the holder. The error, wrapped with code
// CONSTRUCTION_FAILED, goes to the caller that ran the factory and the slot
// stays empty so the next Get retries. A factory that panics or returns
// (nil, nil) is treated as a failure.
//
// # Compared to sync.Once
//
// sync.Once would remember a failed attempt forever and offers no reset, so
// package-level state built on it has to be overwritten by tests without
// synchronization. Holder is an ordinary value: tests create a fresh one per
// case and production code can keep one at package level.
//
// # Metrics
//
//   - patterns_singleton_constructions_total{holder,status}
//   - patterns_singleton_construction_duration_seconds{holder}
//   - patterns_singleton_resets_total{holder}
package singleton
