// SPDX-License-Identifier: MIT
// Package: combigen/gen
//
// decode.go — the index decoder, inverse of size.go.
//
// Contract:
//   • Get(i) is total on [0, Size()) and rejects everything else with
//     ErrIndexOutOfRange (ErrEmptySpace when Size() == 0). Nothing is wrapped
//     or truncated.
//   • Decoding reads the partition tables produced by measure; it never
//     recomputes a size on its own.
//   • emit is the single traversal behind Get and Visit: it pushes leaf
//     productions to a sink in production order.
//
// Complexity: O(depth + output) big-integer operations per index; Repeat
// buckets and alternation children are located by binary search.

package gen

import (
	"fmt"
	"math/big"
	"sort"
	"strings"
)

const (
	methodGet   = "Get"
	methodVisit = "Visit"
)

// Get returns the production at index.
func (g *Generator) Get(index *big.Int) (string, error) {
	if err := g.checkIndex(methodGet, index); err != nil {
		return "", err
	}
	var sb strings.Builder
	g.emit(index, func(part string) { sb.WriteString(part) })
	return sb.String(), nil
}

// GetUint64 is Get for indices that fit in a uint64.
func (g *Generator) GetUint64(index uint64) (string, error) {
	return g.Get(new(big.Int).SetUint64(index))
}

// Visit streams the production at index to fn one structural part at a
// time, in production order, without building the concatenated string:
// each literal, each character drawn from an alphabet, and the whole
// output of a Transform subtree arrive as separate calls. Empty parts are
// skipped. A nil fn only validates the index.
func (g *Generator) Visit(index *big.Int, fn func(part string)) error {
	if err := g.checkIndex(methodVisit, index); err != nil {
		return err
	}
	if fn == nil {
		return nil
	}
	g.emit(index, func(part string) {
		if part != "" {
			fn(part)
		}
	})
	return nil
}

// checkIndex enforces 0 ≤ index < Size().
func (g *Generator) checkIndex(method string, index *big.Int) error {
	size := g.measured().size
	if size.Sign() == 0 {
		return fmt.Errorf("%s: %w", method, ErrEmptySpace)
	}
	if index == nil {
		return fmt.Errorf("%s: nil index: %w", method, ErrIndexOutOfRange)
	}
	if index.Sign() < 0 || index.Cmp(size) >= 0 {
		return fmt.Errorf("%s: index %s not in [0, %s): %w", method, index, size, ErrIndexOutOfRange)
	}
	return nil
}

// emit pushes the production at idx to out. idx must lie in [0, size) and
// is never modified.
func (g *Generator) emit(idx *big.Int, out func(string)) {
	switch g.kind {
	case KindEmpty:
		// nothing to produce

	case KindLiteral:
		out(g.text)

	case KindCharSet:
		out(string(g.alphabet[idx.Int64()]))

	case KindSequence:
		// Mixed radix: right is the low-order digit.
		r := g.children[1].measured().size
		hi, lo := new(big.Int).QuoRem(idx, r, new(big.Int))
		g.children[0].emit(hi, out)
		g.children[1].emit(lo, out)

	case KindAlternation:
		i, off := locate(g.measured().ends, idx)
		g.children[i].emit(off, out)

	case KindRepeat:
		m := g.measured()
		b, off := locate(m.ends, idx)
		emitDigits(g.inner(), g.min+b, off, out)

	case KindOptional:
		in := g.inner()
		if idx.Cmp(in.measured().size) < 0 {
			in.emit(idx, out)
		}
		// idx == size(inner) is the absent production.

	case KindTransform:
		var sb strings.Builder
		g.inner().emit(idx, func(part string) { sb.WriteString(part) })
		out(g.fn(sb.String()))

	default:
		panic(fmt.Sprintf("gen: unknown kind %d", g.kind))
	}
}

// emitDigits decodes off as a k-digit number in base size(inner), most
// significant digit first, and emits inner once per digit.
func emitDigits(inner *Generator, k int, off *big.Int, out func(string)) {
	if k == 0 {
		return
	}
	base := inner.measured().size
	digits := make([]*big.Int, k)
	rem := new(big.Int).Set(off)
	for j := k - 1; j >= 0; j-- {
		d := new(big.Int)
		rem.QuoRem(rem, base, d)
		digits[j] = d
	}
	for _, d := range digits {
		inner.emit(d, out)
	}
}

// locate finds the part whose half-open range [ends[i-1], ends[i]) holds
// idx and returns its position with the offset of idx inside it. Empty
// parts have zero-width ranges and are never selected.
func locate(ends []*big.Int, idx *big.Int) (int, *big.Int) {
	i := sort.Search(len(ends), func(i int) bool { return ends[i].Cmp(idx) > 0 })
	if i == 0 {
		return 0, idx
	}
	return i, new(big.Int).Sub(idx, ends[i-1])
}
