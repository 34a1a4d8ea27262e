// SPDX-License-Identifier: MIT
// Package: combigen/pattern
//
// compile.go — public entry points.

package pattern

import (
	"unicode/utf8"

	"github.com/tliron/commonlog"

	"github.com/katalvlaran/combigen/gen"
)

var log = commonlog.GetLogger("combigen.pattern")

// Compile parses expr and returns the generator of the strings it matches.
// Failures are *Error values matching ErrMalformedPattern or
// ErrUnsupportedSyntax. Compile does not measure the result.
func Compile(expr string, opts ...Option) (*gen.Generator, error) {
	cfg := newConfig(opts...)
	if !utf8.ValidString(expr) {
		return nil, &Error{Kind: ErrMalformedPattern, Expr: expr, Msg: "invalid UTF-8"}
	}
	g, err := newParser(expr, cfg).parse()
	if err != nil {
		log.Debugf("rejected %q: %s", expr, err)
		return nil, err
	}
	log.Debugf("compiled %q into a %s node", expr, g.Kind())
	return g, nil
}

// MustCompile is Compile that panics on error.
func MustCompile(expr string, opts ...Option) *gen.Generator {
	g, err := Compile(expr, opts...)
	if err != nil {
		panic(err)
	}
	return g
}
