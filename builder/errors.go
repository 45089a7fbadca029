// SPDX-License-Identifier: MIT
// Package: jigsaw/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w.
//   • Generate never panics at runtime; option constructors panic on
//     meaningless input.

package builder

import "errors"

// ErrTooSmall indicates a side or tile side below the allowed minimum.
var ErrTooSmall = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a density outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrConstructFailed indicates the generator exhausted its attempts without
// drawing a puzzle that satisfies the uniqueness guarantee.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrPatternFit indicates the requested pattern copies do not fit into the picture.
var ErrPatternFit = errors.New("builder: pattern copies do not fit")
