package main

import (
	"fmt"

	"github.com/gomlx/fpenv/fenv"
	"github.com/gomlx/fpenv/fpucontrol"
)

func archRows() []row {
	return []row{
		{"precision (env)", fenv.Precision().String()},
		{"rounding (control word)", fmt.Sprintf("%#05x", uint16(fpucontrol.Rounding()))},
		{"precision (control word)", fmt.Sprintf("%#05x", uint16(fpucontrol.Precision()))},
		{"raw control word", fmt.Sprintf("%#06x", uint16(fpucontrol.ControlWord()))},
	}
}
