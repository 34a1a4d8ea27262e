// SPDX-License-Identifier: MIT
// Package: combigen/pattern
//
// options.go — functional options for Compile.
//
// Contract:
//   • Option constructors validate and PANIC on meaningless values; Compile
//     itself never panics.
//   • Defaults: no repeat limit (unbounded quantifiers rejected), universe =
//     printable ASCII.

package pattern

import "github.com/katalvlaran/combigen/gen"

// MaxRepeatCount caps every explicit or substituted repetition count. It is
// gen.MaxRepeat, so every gen repetition renders to a pattern that compiles.
const MaxRepeatCount = gen.MaxRepeat

// Option customizes compilation.
type Option func(*config)

type config struct {
	repeatLimit int    // < 0: unbounded quantifiers are rejected
	universe    []rune // ascending, distinct
}

// WithRepeatLimit substitutes limit for the missing upper bound of *, + and
// {m,}. Panics if limit is negative or above MaxRepeatCount.
func WithRepeatLimit(limit int) Option {
	if limit < 0 || limit > MaxRepeatCount {
		panic("pattern: WithRepeatLimit out of [0, MaxRepeatCount]")
	}
	return func(c *config) {
		c.repeatLimit = limit
	}
}

// WithUniverse sets the runes that '.', negated classes and \D \W \S draw
// from. Runes are sorted ascending and deduplicated. Panics on an empty set.
func WithUniverse(chars string) Option {
	u := sortedRunes([]rune(chars))
	if len(u) == 0 {
		panic("pattern: WithUniverse(\"\")")
	}
	return func(c *config) {
		c.universe = u
	}
}

func newConfig(opts ...Option) config {
	cfg := config{repeatLimit: -1, universe: printableASCII}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
