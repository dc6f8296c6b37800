// Copyright 2025 The GoMLX Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fpucontrol

// Rounding-control field encodings, control word bits 10-11.
const (
	RoundNearest Word = 0x000
	RoundDown    Word = 0x400
	RoundUp      Word = 0x800
	RoundZero    Word = 0xC00
)

// Precision-control field encodings, control word bits 8-9.
const (
	PrecisionSingle   Word = 0x000
	PrecisionDouble   Word = 0x200
	PrecisionExtended Word = 0x300
)

// Supported reports that this build target carries the control-word
// backend.
const Supported = true

const (
	roundingMask  = RoundNearest | RoundDown | RoundUp | RoundZero
	precisionMask = PrecisionExtended | PrecisionDouble | PrecisionSingle
)

// Register accessors implemented in fpucontrol_amd64.s.
func controlWord() uint16
func setControlWord(cw uint16)

// ControlWord returns the raw control word. Useful to observe the fields
// set operations must leave alone.
func ControlWord() Word {
	return Word(controlWord())
}

// Rounding returns the rounding-control field of the control word, all
// other bits masked off. No side effects.
func Rounding() Word {
	return ControlWord() & roundingMask
}

// SetRounding replaces the rounding-control field with mode and returns the
// field's value from before the write. The whole word is read, the field
// cleared, mode OR-ed in, and the whole word written back; every bit
// outside the field keeps its value.
//
// mode is not masked first: bits of mode outside the rounding field go into
// the register as given. Passing anything but one of the Round constants
// alters unrelated control bits.
func SetRounding(mode Word) Word {
	cw := ControlWord()
	setControlWord(uint16(cw&^roundingMask | mode))
	return cw & roundingMask
}

// Precision returns the precision-control field of the control word, all
// other bits masked off. No side effects.
func Precision() Word {
	return ControlWord() & precisionMask
}

// SetPrecision replaces the precision-control field with mode and returns
// the field's value from before the write. Same full-word discipline and
// same unmasked-argument contract as SetRounding.
func SetPrecision(mode Word) Word {
	cw := ControlWord()
	setControlWord(uint16(cw&^precisionMask | mode))
	return cw & precisionMask
}

// RoundingModes returns every rounding-control field encoding.
func RoundingModes() []Word {
	return []Word{RoundNearest, RoundDown, RoundUp, RoundZero}
}

// PrecisionModes returns every non-reserved precision-control field
// encoding.
func PrecisionModes() []Word {
	return []Word{PrecisionSingle, PrecisionDouble, PrecisionExtended}
}
