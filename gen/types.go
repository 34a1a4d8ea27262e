// SPDX-License-Identifier: MIT
// Package: combigen/gen
//
// types.go — the Generator node and its closed set of kinds.
//
// Design:
//   • One concrete node type, discriminated by Kind; the set of kinds is
//     closed and every switch over Kind in this package is exhaustive.
//   • Fields are written once by the constructors in api.go and never
//     mutated afterwards. The only lazily filled state is the measure,
//     guarded by sync.Once.
//   • Operands are shared by pointer. A node may sit under any number of
//     parents in any number of trees.

package gen

import (
	"math/big"
	"sync"
)

// Kind identifies the variant of a Generator.
type Kind uint8

// Generator kinds. The zero Kind is KindEmpty, so the zero Generator is a
// valid generator producing only "".
const (
	KindEmpty Kind = iota
	KindLiteral
	KindCharSet
	KindSequence
	KindAlternation
	KindRepeat
	KindOptional
	KindTransform
)

var kindNames = [...]string{
	KindEmpty:       "Empty",
	KindLiteral:     "Literal",
	KindCharSet:     "CharSet",
	KindSequence:    "Sequence",
	KindAlternation: "Alternation",
	KindRepeat:      "Repeat",
	KindOptional:    "Optional",
	KindTransform:   "Transform",
}

// String returns the kind name, e.g. "Sequence".
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(?)"
}

// TransformFunc post-processes a decoded string. It must be pure: the same
// input always yields the same output and nothing else is observed.
type TransformFunc func(string) string

// Generator is an immutable node describing a finite space of strings.
// Construct it with the functions in api.go; the zero value is Empty.
type Generator struct {
	kind     Kind
	text     string       // KindLiteral
	alphabet []rune       // KindCharSet, duplicates removed, declaration order
	children []*Generator // Sequence: [left, right]; Alternation: choices; Repeat/Optional/Transform: [inner]
	min, max int          // KindRepeat
	fn       TransformFunc

	once sync.Once
	m    measure
}

// measure is the shared result of the cardinality recursion: the total
// size and the partition table the decoder searches.
type measure struct {
	size *big.Int

	// ends[i] is the exclusive upper index of part i: alternation children,
	// or repetition length buckets (length min+i).
	ends []*big.Int
}

// Kind reports the node variant.
func (g *Generator) Kind() Kind { return g.kind }

// Text returns the literal text of a KindLiteral node, "" otherwise.
func (g *Generator) Text() string { return g.text }

// Alphabet returns a copy of the alphabet of a KindCharSet node, in index order.
func (g *Generator) Alphabet() []rune {
	if len(g.alphabet) == 0 {
		return nil
	}
	out := make([]rune, len(g.alphabet))
	copy(out, g.alphabet)
	return out
}

// Children returns a copy of the operand list: [left, right] for sequences,
// the choices for alternations, [inner] for Repeat, Optional and Transform.
func (g *Generator) Children() []*Generator {
	if len(g.children) == 0 {
		return nil
	}
	out := make([]*Generator, len(g.children))
	copy(out, g.children)
	return out
}

// Bounds returns the inclusive repetition counts of a KindRepeat node,
// (0, 1) for KindOptional and (1, 1) for everything else.
func (g *Generator) Bounds() (min, max int) {
	switch g.kind {
	case KindRepeat:
		return g.min, g.max
	case KindOptional:
		return 0, 1
	default:
		return 1, 1
	}
}

// inner returns the single operand of Repeat, Optional and Transform nodes.
func (g *Generator) inner() *Generator { return g.children[0] }
