// Copyright 2025 The GoMLX Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build amd64 || arm64

package fenv

// WithRounding runs fn with mode installed and restores the previous
// rounding mode afterwards, also when fn panics. The usual thread caveat
// applies: without runtime.LockOSThread the restore may land on a
// different OS thread than the set.
func WithRounding(mode RoundingMode, fn func()) {
	prev := Rounding()
	defer SetRounding(prev)
	SetRounding(mode)
	fn()
}
