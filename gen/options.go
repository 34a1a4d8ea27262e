// SPDX-License-Identifier: MIT
// Package: combigen/gen
//
// options.go — functional options for sampling.
//
// Contract:
//   • Options are functional (type SampleOption func(*sampleConfig)).
//   • Option constructors PANIC on meaningless inputs (nil sources); the
//     sampling paths themselves never panic.
//   • Determinism is explicit: WithSeed or WithRand. Without options the
//     sampler draws from crypto/rand.
//   • Later options override earlier ones.

package gen

import (
	crand "crypto/rand"
	"io"
	"math/rand"
)

// SampleOption customizes a Sampler.
type SampleOption func(*sampleConfig)

// sampleConfig holds the resolved randomness source. Exactly one of rng
// and entropy is non-nil after newSampleConfig.
type sampleConfig struct {
	rng     *rand.Rand
	entropy io.Reader
}

// WithRand draws indices from r via big.Int.Rand, which is uniform over
// ranges of any width. Panics on nil.
func WithRand(r *rand.Rand) SampleOption {
	if r == nil {
		panic("gen: WithRand(nil)")
	}
	return func(c *sampleConfig) {
		c.rng, c.entropy = r, nil
	}
}

// WithSeed draws indices from a fresh math/rand source seeded with seed.
// Equal seeds and equal generators give equal sample streams.
func WithSeed(seed int64) SampleOption {
	return func(c *sampleConfig) {
		c.rng, c.entropy = rand.New(rand.NewSource(seed)), nil
	}
}

// WithEntropy draws indices from raw random bytes read from r using
// crypto/rand.Int's rejection sampling. Panics on nil.
func WithEntropy(r io.Reader) SampleOption {
	if r == nil {
		panic("gen: WithEntropy(nil)")
	}
	return func(c *sampleConfig) {
		c.rng, c.entropy = nil, r
	}
}

// newSampleConfig applies opts over the crypto/rand default.
func newSampleConfig(opts ...SampleOption) sampleConfig {
	cfg := sampleConfig{entropy: crand.Reader}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
