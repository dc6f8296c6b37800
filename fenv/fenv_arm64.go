// Copyright 2025 The GoMLX Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build arm64

package fenv

import "fmt"

// Rounding-mode encodings on arm64: the RMode field of FPCR, bits 22-23.
// Note Upward and Downward swap numeric values relative to amd64; callers
// must use the constants, never the numbers.
const (
	ToNearest  RoundingMode = 0x000000
	Upward     RoundingMode = 0x400000
	Downward   RoundingMode = 0x800000
	TowardZero RoundingMode = 0xC00000
)

// Supported reports that this build target carries the environment
// backend. PrecisionSupported is false: FPCR has no computation-precision
// field, AArch64 always computes at operand width.
const (
	Supported          = true
	PrecisionSupported = false
)

const roundingMask = 0xC00000

// FPCR accessors implemented in fenv_arm64.s.
func fpcr() uint64
func setFPCR(v uint64)

// Rounding returns the rounding mode currently installed in the executing
// thread's FPCR. No side effects.
func Rounding() RoundingMode {
	return RoundingMode(fpcr()) & roundingMask
}

// SetRounding installs mode in FPCR, then re-queries and returns the newly
// active mode. A value outside the encodable set leaves the register
// unchanged; callers detect rejection by comparing the result with what
// they asked for.
func SetRounding(mode RoundingMode) RoundingMode {
	if mode&^roundingMask == 0 {
		setFPCR(fpcr()&^uint64(roundingMask) | uint64(mode))
	}
	return Rounding()
}

// RoundingModes returns every rounding mode this build target encodes.
func RoundingModes() []RoundingMode {
	return []RoundingMode{ToNearest, Upward, Downward, TowardZero}
}

// String implements fmt.Stringer.
func (m RoundingMode) String() string {
	switch m {
	case ToNearest:
		return "to-nearest"
	case Upward:
		return "upward"
	case Downward:
		return "downward"
	case TowardZero:
		return "toward-zero"
	}
	return fmt.Sprintf("RoundingMode(%#x)", uint32(m))
}
