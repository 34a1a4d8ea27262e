// SPDX-License-Identifier: MIT
// Package: combigen/gen
//
// size.go — the cardinality calculator.
//
// Each node measures itself once (sync.Once): total size plus the partition
// table that decode.go searches. Size and decode therefore read the same
// numbers and cannot drift apart. Children are measured through their own
// once, so a subtree shared by several parents is measured a single time.
//
// Complexity (first call, per node):
//   • Literal/CharSet/Empty: O(1).
//   • Sequence: one multiplication.
//   • Alternation: one addition per child.
//   • Repeat{m,n}: n-m+1 multiplications and additions; n ≤ MaxRepeat keeps
//     the table at most MaxRepeat+1 entries.

package gen

import (
	"fmt"
	"math"
	"math/big"
)

var bigOne = big.NewInt(1)

// Size returns the exact number of indices the generator accepts.
// The result is a fresh copy and may be modified by the caller.
func (g *Generator) Size() *big.Int {
	return new(big.Int).Set(g.measured().size)
}

// SizeUint64 returns Size as a uint64, or ErrCapacityOverflow when the
// exact size needs more than 64 bits.
func (g *Generator) SizeUint64() (uint64, error) {
	n := g.measured().size
	if !n.IsUint64() {
		return 0, fmt.Errorf("SizeUint64: size has %d bits: %w", n.BitLen(), ErrCapacityOverflow)
	}
	return n.Uint64(), nil
}

// Len returns Size as an int, or ErrCapacityOverflow when it does not fit.
func (g *Generator) Len() (int, error) {
	n := g.measured().size
	if !n.IsInt64() || n.Int64() > math.MaxInt {
		return 0, fmt.Errorf("Len: size has %d bits: %w", n.BitLen(), ErrCapacityOverflow)
	}
	return int(n.Int64()), nil
}

// IsEmpty reports whether the generator has no members at all.
func (g *Generator) IsEmpty() bool {
	return g.measured().size.Sign() == 0
}

// measured returns the cached measure, computing it on first use.
// The returned values are shared and must not be modified.
func (g *Generator) measured() *measure {
	g.once.Do(func() { g.m = g.measure() })
	return &g.m
}

// measure runs one step of the cardinality recursion for g.
func (g *Generator) measure() measure {
	switch g.kind {
	case KindEmpty, KindLiteral:
		return measure{size: bigOne}

	case KindCharSet:
		return measure{size: big.NewInt(int64(len(g.alphabet)))}

	case KindSequence:
		l := g.children[0].measured().size
		r := g.children[1].measured().size
		return measure{size: new(big.Int).Mul(l, r)}

	case KindAlternation:
		ends := make([]*big.Int, len(g.children))
		acc := new(big.Int)
		for i, c := range g.children {
			acc = new(big.Int).Add(acc, c.measured().size)
			ends[i] = acc
		}
		return measure{size: acc, ends: ends}

	case KindRepeat:
		return measureRepeat(g.inner().measured().size, g.min, g.max)

	case KindOptional:
		return measure{size: new(big.Int).Add(g.inner().measured().size, bigOne)}

	case KindTransform:
		return measure{size: g.inner().measured().size}
	}
	panic(fmt.Sprintf("gen: unknown kind %d", g.kind))
}

// measureRepeat builds the length buckets of inner{min,max}: bucket i holds
// the s^(min+i) productions of length min+i, laid out shortest first.
func measureRepeat(s *big.Int, min, max int) measure {
	n := max - min + 1
	ends := make([]*big.Int, n)

	p := new(big.Int).Exp(s, big.NewInt(int64(min)), nil) // 0^0 == 1
	acc := new(big.Int)
	for i := 0; i < n; i++ {
		if i > 0 {
			p = new(big.Int).Mul(p, s)
		}
		acc = new(big.Int).Add(acc, p)
		ends[i] = acc
	}
	return measure{size: acc, ends: ends}
}
