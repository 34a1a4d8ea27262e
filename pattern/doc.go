// Package pattern compiles a bounded regular-expression syntax into a
// gen.Generator. It is a front-end only: the result is built from the
// ordinary gen constructors and introduces no node kinds of its own.
//
// Supported syntax:
//
//	abc          literal runes (adjacent runes merge into one literal)
//	\. \* \\ ... escaped metacharacters; \t \n \r \f \v; \xHH
//	\d \w \s     digit, word and space classes; \D \W \S their complements
//	.            any rune of the universe
//	[a-z_] [^0-9] bracket classes with ranges, escapes and negation
//	(x) (?:x)    grouping; groups do not capture
//	x|y|         alternation; an empty branch produces ""
//	x? x{m} x{m,n}
//	x* x+ x{m,}  only with WithRepeatLimit, see below
//	^x$          a leading ^ and trailing $ are accepted and ignored
//
// Index order follows the gen package: alternation branches in source
// order, shorter repetitions first, x? yields x before "". x{0,1} accepts
// the same strings as x? but follows the repetition rule, so its "" comes
// first: the two spell the same language in opposite index orders. Class members are
// ordered as written (ranges ascend), duplicates dropped; negated classes,
// \D \W \S and . list the universe in ascending order minus the excluded
// runes. The default universe is printable ASCII (0x20..0x7E).
//
// Unbounded quantifiers describe infinite spaces, so *, + and {m,} fail with
// ErrUnsupportedSyntax unless the caller substitutes an explicit bound with
// WithRepeatLimit(L): then * means {0,L}, + means {1,L} and {m,} means
// {m,max(m,L)}. There is no implicit default bound.
//
// Rejected with ErrUnsupportedSyntax: backreferences (\1), lookaround
// ((?=, (?!, (?<=, (?<!), named groups ((?P<name>, (?<name>), inline flags
// ((?i)), anchors other than the outer ^ and $, \b \B \A \z, and possessive
// quantifiers. Syntax errors (unbalanced parentheses, bad escapes, bad
// ranges, bad or inverted repeat counts) fail with ErrMalformedPattern.
package pattern
