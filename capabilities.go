// Copyright 2025 The GoMLX Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fpenv

import (
	"fmt"
	"sync"

	"k8s.io/klog/v2"

	"github.com/gomlx/fpenv/fenv"
	"github.com/gomlx/fpenv/fpucontrol"
)

// Capabilities describes which floating-point environment backends this
// build carries. The set is fixed at compile time per GOARCH.
type Capabilities struct {
	// Env reports whether the environment-style backend (package fenv)
	// is present.
	Env bool

	// EnvPrecision reports whether package fenv additionally controls the
	// FPU's internal computation precision. Implies Env.
	EnvPrecision bool

	// ControlWord reports whether the raw control-word backend (package
	// fpucontrol) is present.
	ControlWord bool
}

var logCapabilitiesOnce sync.Once

// Capable returns the backends compiled into this binary. An operation of a
// backend whose flag is false does not exist in the build at all, so this is
// a report for humans and logs, not a runtime dispatch point: portable code
// gates on the backends' Supported constants instead.
func Capable() Capabilities {
	c := Capabilities{
		Env:          fenv.Supported,
		EnvPrecision: fenv.PrecisionSupported,
		ControlWord:  fpucontrol.Supported,
	}
	logCapabilitiesOnce.Do(func() {
		klog.V(1).Infof("fpenv capabilities: %s", c)
	})
	return c
}

// String implements fmt.Stringer.
func (c Capabilities) String() string {
	return fmt.Sprintf("env=%t envPrecision=%t controlWord=%t",
		c.Env, c.EnvPrecision, c.ControlWord)
}
