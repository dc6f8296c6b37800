//go:build amd64 || arm64

package main

import (
	"github.com/pkg/errors"

	"github.com/gomlx/fpenv/fenv"
)

var roundingByName = map[string]fenv.RoundingMode{
	"nearest": fenv.ToNearest,
	"down":    fenv.Downward,
	"up":      fenv.Upward,
	"zero":    fenv.TowardZero,
}

// applyRounding installs the named rounding mode through the environment
// backend.
func applyRounding(name string) error {
	mode, ok := roundingByName[name]
	if !ok {
		return errors.Errorf("unknown rounding mode %q, want nearest, down, up or zero", name)
	}
	if got := fenv.SetRounding(mode); got != mode {
		return errors.Errorf("platform refused rounding mode %s, still %s", mode, got)
	}
	return nil
}

func liveRows() []row {
	rows := []row{{"rounding (env)", fenv.Rounding().String()}}
	return append(rows, archRows()...)
}
