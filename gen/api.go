// SPDX-License-Identifier: MIT
// Package: combigen/gen
//
// api.go — constructors and combinators.
//
// Contract:
//   • Every constructor returns a NEW node; operands are referenced, never
//     copied or modified.
//   • Constructors that can fail return (node, error) with a sentinel from
//     errors.go wrapped in method context. Infallible ones return the node.
//   • Fluent methods (Then, Or, Optional, Map) mirror the functions for
//     chaining; the fallible ones (RepeatN) keep the error return.
//   • No constructor enumerates anything; sizes are computed lazily.

package gen

import "fmt"

// Method tags used as error context.
const (
	methodSequence    = "Sequence"
	methodAlternation = "Alternation"
	methodRepeat      = "Repeat"
	methodOptional    = "Optional"
	methodTransform   = "Transform"
	methodChars       = "Chars"
)

// Empty returns the generator producing exactly "".
func Empty() *Generator { return emptyGen }

// Lit returns a generator producing exactly text. Lit("") is Empty.
func Lit(text string) *Generator {
	if text == "" {
		return emptyGen
	}
	return &Generator{kind: KindLiteral, text: text}
}

// Char returns a generator producing exactly the one-rune string r.
func Char(r rune) *Generator {
	return &Generator{kind: KindLiteral, text: string(r)}
}

// Chars returns a generator producing one rune of alphabet. Repeated runes
// are dropped (first occurrence wins), and the remaining declaration order
// is the index order. An alphabet without runes fails with ErrEmptyAlphabet.
// Complexity: O(len(alphabet)).
func Chars(alphabet string) (*Generator, error) {
	return CharSet([]rune(alphabet))
}

// CharSet is Chars over a rune slice. The slice is copied.
func CharSet(alphabet []rune) (*Generator, error) {
	if len(alphabet) == 0 {
		return nil, fmt.Errorf("%s: %w", methodChars, ErrEmptyAlphabet)
	}
	return newCharSet(alphabet), nil
}

// newCharSet deduplicates rs into a fresh KindCharSet node. len(rs) > 0.
func newCharSet(rs []rune) *Generator {
	seen := make(map[rune]struct{}, len(rs))
	alpha := make([]rune, 0, len(rs))
	for _, r := range rs {
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		alpha = append(alpha, r)
	}
	return &Generator{kind: KindCharSet, alphabet: alpha}
}

// OneOf returns an alternation of literal choices in the given order.
// OneOf() has no members (size 0).
func OneOf(choices ...string) *Generator {
	children := make([]*Generator, len(choices))
	for i, s := range choices {
		children[i] = Lit(s)
	}
	return &Generator{kind: KindAlternation, children: children}
}

// Sequence returns the concatenation left+right.
// Size: |left|·|right|. Right is the low-order digit of the index.
func Sequence(left, right *Generator) (*Generator, error) {
	if left == nil || right == nil {
		return nil, fmt.Errorf("%s: %w", methodSequence, ErrNilGenerator)
	}
	return &Generator{kind: KindSequence, children: []*Generator{left, right}}, nil
}

// Concat folds parts left to right into nested sequences:
// Concat(a, b, c) == Sequence(Sequence(a, b), c). Concat() is Empty.
func Concat(parts ...*Generator) (*Generator, error) {
	if len(parts) == 0 {
		return emptyGen, nil
	}
	acc := parts[0]
	if acc == nil {
		return nil, fmt.Errorf("%s: part 0: %w", methodSequence, ErrNilGenerator)
	}
	for i, p := range parts[1:] {
		if p == nil {
			return nil, fmt.Errorf("%s: part %d: %w", methodSequence, i+1, ErrNilGenerator)
		}
		acc = &Generator{kind: KindSequence, children: []*Generator{acc, p}}
	}
	return acc, nil
}

// Alternation returns a generator producing one child's production.
// Children keep their declaration order; that order partitions the index
// space. Alternation() is the deliberate empty space (size 0).
func Alternation(children ...*Generator) (*Generator, error) {
	for i, c := range children {
		if c == nil {
			return nil, fmt.Errorf("%s: child %d: %w", methodAlternation, i, ErrNilGenerator)
		}
	}
	cs := make([]*Generator, len(children))
	copy(cs, children)
	return &Generator{kind: KindAlternation, children: cs}, nil
}

// Either returns the alternation of a and b. An operand that is itself an
// alternation contributes its children in place, so Either(Either(a,b),c)
// has three children a, b, c; sizes and index order are unaffected.
func Either(a, b *Generator) (*Generator, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("%s: %w", methodAlternation, ErrNilGenerator)
	}
	cs := make([]*Generator, 0, 2)
	cs = appendChoices(cs, a)
	cs = appendChoices(cs, b)
	return &Generator{kind: KindAlternation, children: cs}, nil
}

func appendChoices(dst []*Generator, g *Generator) []*Generator {
	if g.kind == KindAlternation {
		return append(dst, g.children...)
	}
	return append(dst, g)
}

// MaxRepeat caps the upper count of a repetition. The pattern compiler
// enforces the same limit, so every repetition renders to a compilable form.
const MaxRepeat = 1000

// Repeat returns inner concatenated k times for every k in [min, max].
// Size: Σ_{k=min}^{max} |inner|^k. Both counts must be ≥ 0, min ≤ max and
// max ≤ MaxRepeat, otherwise ErrInvalidBounds.
func Repeat(inner *Generator, min, max int) (*Generator, error) {
	if inner == nil {
		return nil, fmt.Errorf("%s: %w", methodRepeat, ErrNilGenerator)
	}
	if min < 0 || max < 0 {
		return nil, fmt.Errorf("%s: negative count {%d,%d}: %w", methodRepeat, min, max, ErrInvalidBounds)
	}
	if min > max {
		return nil, fmt.Errorf("%s: min=%d > max=%d: %w", methodRepeat, min, max, ErrInvalidBounds)
	}
	if max > MaxRepeat {
		return nil, fmt.Errorf("%s: max=%d exceeds %d: %w", methodRepeat, max, MaxRepeat, ErrInvalidBounds)
	}
	return &Generator{kind: KindRepeat, children: []*Generator{inner}, min: min, max: max}, nil
}

// Times is Repeat(inner, n, n).
func Times(inner *Generator, n int) (*Generator, error) {
	return Repeat(inner, n, n)
}

// Optional returns inner or nothing. Present productions come first; ""
// is the last index. Optional of an Optional returns the operand as is.
func Optional(inner *Generator) (*Generator, error) {
	if inner == nil {
		return nil, fmt.Errorf("%s: %w", methodOptional, ErrNilGenerator)
	}
	if inner.kind == KindOptional {
		return inner, nil
	}
	return &Generator{kind: KindOptional, children: []*Generator{inner}}, nil
}

// Transform returns a generator with the same index space as inner whose
// productions are fn(inner's production). fn need not be injective; Size
// keeps counting indices even when several of them render identically.
func Transform(inner *Generator, fn TransformFunc) (*Generator, error) {
	if inner == nil {
		return nil, fmt.Errorf("%s: %w", methodTransform, ErrNilGenerator)
	}
	if fn == nil {
		return nil, fmt.Errorf("%s: %w", methodTransform, ErrNilTransform)
	}
	return &Generator{kind: KindTransform, children: []*Generator{inner}, fn: fn}, nil
}

// Must returns g or panics with err. Intended for package-level
// generators built from constant arguments.
func Must(g *Generator, err error) *Generator {
	if err != nil {
		panic(err)
	}
	return g
}

// Then is Sequence(g, next), panicking on a nil operand.
func (g *Generator) Then(next *Generator) *Generator {
	return Must(Sequence(g, next))
}

// Or is Either(g, alt), panicking on a nil operand.
func (g *Generator) Or(alt *Generator) *Generator {
	return Must(Either(g, alt))
}

// Optional is Optional(g).
func (g *Generator) Optional() *Generator {
	return Must(Optional(g))
}

// RepeatN is Repeat(g, min, max).
func (g *Generator) RepeatN(min, max int) (*Generator, error) {
	return Repeat(g, min, max)
}

// Map is Transform(g, fn), panicking on a nil fn.
func (g *Generator) Map(fn TransformFunc) *Generator {
	return Must(Transform(g, fn))
}
