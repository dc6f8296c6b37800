// Copyright 2025 The GoMLX Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fpenv reports which floating-point environment backends a build
// carries.
//
// The actual control surface lives in two sub-packages, selected per GOARCH
// at compile time:
//
//   - Package fenv drives the rounding mode (and, on amd64, the internal
//     computation precision) through the platform's floating-point
//     environment, the fegetround/fesetround model.
//   - Package fpucontrol reads and writes the x87 control word directly,
//     masking individual bit-fields, amd64 only.
//
// A build target carries one backend, both, or neither. Nothing is emulated:
// on an unsupported GOARCH the mode constants and operations of a backend do
// not exist, and the backend's Supported constant is false.
//
// All of this state is live hardware configuration of the executing OS
// thread. There is no handle and no cleanup; callers that change a mode and
// care about which thread it lands on must pin the goroutine with
// runtime.LockOSThread first. Neither this package nor the backends add any
// synchronization.
package fpenv
