// Package gen builds finite, exactly countable spaces of strings and lets you
// count them, walk them in a stable order, jump to any member by index, and
// draw members uniformly at random, without ever materializing the space.
//
// A *Generator is an immutable tree. Leaves produce fixed text (Lit, Char,
// Empty) or one rune from a fixed alphabet (Chars, Digit, AlphaLower, ...).
// Inner nodes combine them:
//
//   - Sequence(a, b)      concatenation,          |a|·|b| members
//   - Alternation(a, ...) one of the children,    Σ|child| members
//   - Repeat(a, m, n)     a repeated m..n times,  Σ_{k=m..n} |a|^k members
//   - Optional(a)         a or nothing,           |a|+1 members
//   - Transform(a, fn)    fn applied to a,        |a| members
//
// Every node has an exact size (*big.Int, never wraps) and a decoder that is
// its inverse: Get(i) for i in [0, Size()) yields each production exactly once.
// The index order is canonical:
//
//   - Sequence is mixed radix with the right operand as the low-order digit.
//   - Alternation partitions indices by child in declaration order.
//   - Repeat partitions indices by length, shortest first; inside a length the
//     leftmost repetition is the most significant digit.
//   - Optional puts the present productions first and "" last.
//
// Size and decode share one measure per node (size plus the partition table
// the decoder searches), computed once and cached, so shared subtrees are
// measured once no matter how many parents reference them.
//
// Transform hooks are not required to be injective. Size counts indices, not
// distinct strings: Digit()×3 mapped through a zero-trimming function still
// reports 1000 members although several indices render to the same text.
//
// Quick example:
//
//	dir := gen.OneOf("N", "E", "S", "W")
//	street := gen.Must(gen.Sequence(dir, gen.Lit(" St")))
//	street.Size()                // 4
//	street.Get(big.NewInt(3))    // "W St"
//
// Generators are safe for concurrent reads. A Sampler built on *rand.Rand is
// not; build one per goroutine or use the default crypto/rand source.
package gen
