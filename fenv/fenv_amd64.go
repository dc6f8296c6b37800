// Copyright 2025 The GoMLX Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build amd64

package fenv

import "fmt"

// Rounding-mode encodings on amd64: the RC field of the x87 control word,
// bits 10-11. The same field exists in MXCSR at bits 13-14; SetRounding
// keeps the two registers in agreement, the way C libraries implement
// fesetround on this architecture.
const (
	ToNearest  RoundingMode = 0x000
	Downward   RoundingMode = 0x400
	Upward     RoundingMode = 0x800
	TowardZero RoundingMode = 0xC00
)

// Precision-mode encodings: the PC field of the x87 control word, bits 8-9.
// MXCSR has no counterpart; SSE arithmetic always computes at operand width.
const (
	PrecisionFloat      PrecisionMode = 0x000
	PrecisionDouble     PrecisionMode = 0x200
	PrecisionLongDouble PrecisionMode = 0x300
)

// Supported and PrecisionSupported report that this build target carries
// the environment backend, including precision control.
const (
	Supported          = true
	PrecisionSupported = true
)

const (
	roundingMask  = 0xC00
	precisionMask = 0x300

	// The RC field sits 3 bits higher in MXCSR than in the control word.
	mxcsrRoundingMask = 0x6000
	mxcsrRoundShift   = 3
)

// Register accessors implemented in fenv_amd64.s.
func controlWord() uint16
func setControlWord(cw uint16)
func mxcsr() uint32
func setMXCSR(v uint32)

// Rounding returns the rounding mode currently installed in the executing
// thread's floating-point unit. No side effects.
func Rounding() RoundingMode {
	return RoundingMode(controlWord()) & roundingMask
}

// SetRounding installs mode in both the x87 control word and MXCSR, then
// re-queries and returns the newly active mode. The re-query is the only
// failure signal: a value outside the encodable set leaves the environment
// unchanged, so callers detect rejection by comparing the result with what
// they asked for.
func SetRounding(mode RoundingMode) RoundingMode {
	if mode&^roundingMask == 0 {
		cw := controlWord()
		setControlWord(cw&^roundingMask | uint16(mode))
		m := mxcsr()
		setMXCSR(m&^mxcsrRoundingMask | uint32(mode)<<mxcsrRoundShift)
	}
	return Rounding()
}

// Precision returns the FPU's internal computation precision. No side
// effects.
func Precision() PrecisionMode {
	return PrecisionMode(controlWord()) & precisionMask
}

// SetPrecision installs mode as the internal computation precision, then
// re-queries and returns the newly active mode. Same contract as
// SetRounding: an unencodable value changes nothing. The fourth PC bit
// pattern (0x100) is reserved by the hardware and treated as unencodable.
func SetPrecision(mode PrecisionMode) PrecisionMode {
	switch mode {
	case PrecisionFloat, PrecisionDouble, PrecisionLongDouble:
		cw := controlWord()
		setControlWord(cw&^precisionMask | uint16(mode))
	}
	return Precision()
}

// RoundingModes returns every rounding mode this build target encodes.
func RoundingModes() []RoundingMode {
	return []RoundingMode{ToNearest, Downward, Upward, TowardZero}
}

// PrecisionModes returns every precision mode this build target encodes.
func PrecisionModes() []PrecisionMode {
	return []PrecisionMode{PrecisionFloat, PrecisionDouble, PrecisionLongDouble}
}

// String implements fmt.Stringer.
func (m RoundingMode) String() string {
	switch m {
	case ToNearest:
		return "to-nearest"
	case Downward:
		return "downward"
	case Upward:
		return "upward"
	case TowardZero:
		return "toward-zero"
	}
	return fmt.Sprintf("RoundingMode(%#x)", uint32(m))
}

// String implements fmt.Stringer.
func (m PrecisionMode) String() string {
	switch m {
	case PrecisionFloat:
		return "float"
	case PrecisionDouble:
		return "double"
	case PrecisionLongDouble:
		return "long-double"
	}
	return fmt.Sprintf("PrecisionMode(%#x)", uint32(m))
}
