// SPDX-License-Identifier: MIT

// Package sparse: functional configuration for container construction.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: config fields are unexported; public APIs consume ...Option.
package sparse

import "fmt"

// DefaultCapacity is the entry-slice capacity used when no WithCapacity
// option is given: zero, meaning the store allocates lazily on first write.
const DefaultCapacity = 0

// config carries resolved construction options.
type config struct {
	capacity int // pre-allocated entry capacity
}

// Option configures a Matrix at construction time.
type Option func(*config)

// WithCapacity pre-allocates room for n entries, avoiding ordered-insert
// reallocations while populating a matrix whose occupancy is known ahead
// of time. Panics if n is negative.
func WithCapacity(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("sparse: WithCapacity requires n >= 0, got %d", n))
	}

	return func(c *config) { c.capacity = n }
}

// gatherOptions folds opts over the documented defaults.
func gatherOptions(opts ...Option) config {
	cfg := config{capacity: DefaultCapacity}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
