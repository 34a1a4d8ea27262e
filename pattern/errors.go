// SPDX-License-Identifier: MIT
// Package: combigen/pattern
//
// errors.go — sentinel error kinds and the positioned compile error.
//
// Error policy:
//   • Two sentinel kinds: ErrMalformedPattern and ErrUnsupportedSyntax.
//   • Every compile failure is an *Error carrying the kind, the rune offset
//     and the expression; errors.Is(err, ErrX) selects on the kind.
//   • Inverted repeat bounds additionally match gen.ErrInvalidBounds.

package pattern

import (
	"errors"
	"fmt"
)

// ErrMalformedPattern indicates the expression does not parse: unbalanced
// parentheses, dangling or unknown escapes, unterminated or empty classes,
// reversed ranges, misplaced or inverted quantifiers.
var ErrMalformedPattern = errors.New("pattern: malformed pattern")

// ErrUnsupportedSyntax indicates a well-formed construct outside the
// enumerable subset: unbounded repetition without a limit, backreferences,
// lookaround, named groups, flags and inner anchors.
var ErrUnsupportedSyntax = errors.New("pattern: unsupported syntax")

// Error describes a compile failure at a rune offset of Expr.
type Error struct {
	Kind   error  // ErrMalformedPattern or ErrUnsupportedSyntax
	Expr   string // the full expression
	Offset int    // rune offset of the offending construct
	Msg    string
	cause  error // optional underlying error, e.g. gen.ErrInvalidBounds
}

// Error formats as `pattern: malformed pattern: unterminated group at offset 3 in "(ab"`.
func (e *Error) Error() string {
	return fmt.Sprintf("%v: %s at offset %d in %q", e.Kind, e.Msg, e.Offset, e.Expr)
}

// Unwrap exposes the kind and, when present, the underlying cause.
func (e *Error) Unwrap() []error {
	if e.cause != nil {
		return []error{e.Kind, e.cause}
	}
	return []error{e.Kind}
}
