// Copyright 2025 The GoMLX Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fenv controls the floating-point environment of the executing OS
// thread: the rounding mode applied to inexact results and, on amd64, the
// internal precision the FPU computes with.
//
// The mode encodings are the platform's own register bit patterns, exposed
// as named constants per GOARCH; the numeric values are not portable across
// architectures. On a GOARCH without a floating-point environment backend
// the constants and operations are absent and Supported is false.
//
// Everything here is ambient hardware state scoped to the current OS
// thread. No function blocks, errors or synchronizes; a goroutine that sets
// a mode and wants to keep it must be pinned with runtime.LockOSThread.
// Setting a mode affects every subsequent floating-point operation on the
// thread, including the Go runtime's own, until it is changed again.
package fenv

// RoundingMode selects how inexact floating-point results are converted to
// representable values. Values are platform bit-field encodings; use the
// package constants.
type RoundingMode uint32

// PrecisionMode selects the internal width the FPU computes with,
// independent of operand types. Only amd64 (x87) has this control.
type PrecisionMode uint32
