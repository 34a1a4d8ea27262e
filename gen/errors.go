// SPDX-License-Identifier: MIT
// Package: combigen/gen
//
// errors.go — sentinel errors for the gen package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Call sites attach context with %w: "Repeat: min=3 > max=2: <sentinel>".
//   • Generators are immutable, so no error leaves a tree half-built or
//     otherwise unusable; retrying with corrected input is always safe.
//   • Runtime paths never panic. Panics are confined to option constructors
//     (WithRand(nil), ...) and Must.

package gen

import "errors"

// ErrInvalidBounds indicates a repetition with a negative count or min > max.
var ErrInvalidBounds = errors.New("gen: invalid repetition bounds")

// ErrEmptySpace indicates an operation that needs at least one member
// (Get, Visit, All, Random, ...) was invoked on a generator of size 0.
var ErrEmptySpace = errors.New("gen: generator space is empty")

// ErrIndexOutOfRange indicates an index outside [0, Size()).
var ErrIndexOutOfRange = errors.New("gen: index out of range")

// ErrCapacityOverflow indicates an exact size or index does not fit the
// fixed-width type requested by the caller (SizeUint64, Len, ...).
var ErrCapacityOverflow = errors.New("gen: value exceeds fixed-width capacity")

// ErrNilGenerator indicates a nil *Generator was passed as an operand.
var ErrNilGenerator = errors.New("gen: nil generator")

// ErrNilTransform indicates Transform was given a nil mapping function.
var ErrNilTransform = errors.New("gen: nil transform function")

// ErrEmptyAlphabet indicates a character set with no characters.
var ErrEmptyAlphabet = errors.New("gen: empty alphabet")
