// Copyright 2025 The GoMLX Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fpucontrol reads and writes the x87 floating-point control word
// of the executing OS thread, one bit-field at a time.
//
// This is the raw register model: get operations return the masked field,
// set operations rewrite the complete 16-bit word (the register also packs
// exception masks, so partial writes are never attempted) and return the
// field's value from before the write. The amd64 encodings are the only
// ones; on every other GOARCH the package compiles to just Supported =
// false.
//
// The argument to a set operation is deliberately not masked: bits outside
// the target field are written to the register verbatim, matching the
// classic fpu_control interface. See SetRounding.
//
// The control word is per-OS-thread state with no owner and no
// synchronization here; pin goroutines with runtime.LockOSThread when that
// matters. Note that on amd64 Go arithmetic runs on SSE, so this register
// does not steer Go's own floating-point results, only x87 code sharing
// the thread.
package fpucontrol

// Word is the x87 control word, or a bit-field extracted from it.
type Word uint16
