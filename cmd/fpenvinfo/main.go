// Copyright 2025 The GoMLX Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// fpenvinfo prints the floating-point environment of the thread it runs
// on: which fpenv backends the build carries, the live rounding and
// precision modes from each backend, the raw control-word bits where they
// exist, and a little CPU feature context.
//
// Usage:
//
//	fpenvinfo [--set_round=nearest|down|up|zero]
//
// With --set_round the mode is installed through the environment backend
// before the report, so the report shows the result of the change.
package main

import (
	"flag"
	"fmt"
	"runtime"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/sys/cpu"
	"k8s.io/klog/v2"

	"github.com/gomlx/fpenv"
)

var flagSetRound = flag.String("set_round", "",
	"Install a rounding mode before reporting: nearest, down, up or zero.")

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	keyStyle     = lipgloss.NewStyle().Width(24).Foreground(lipgloss.Color("245"))
)

// row is one key/value line of the report.
type row struct {
	key, value string
}

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	// The registers are per-thread; everything below must observe the
	// same one.
	runtime.LockOSThread()

	if *flagSetRound != "" {
		if err := applyRounding(*flagSetRound); err != nil {
			klog.Exitf("--set_round: %v", err)
		}
	}

	caps := fpenv.Capable()
	var b strings.Builder
	b.WriteString(titleStyle.Render("Floating-point environment") + "\n")

	writeSection(&b, "Build capabilities", []row{
		{"environment backend", fmt.Sprintf("%t", caps.Env)},
		{"precision control", fmt.Sprintf("%t", caps.EnvPrecision)},
		{"control-word backend", fmt.Sprintf("%t", caps.ControlWord)},
	})
	if rows := liveRows(); len(rows) > 0 {
		writeSection(&b, "Live state", rows)
	}
	writeSection(&b, "CPU", cpuRows())

	fmt.Print(b.String())
}

func writeSection(b *strings.Builder, name string, rows []row) {
	b.WriteString(sectionStyle.Render(name) + "\n")
	for _, r := range rows {
		b.WriteString("  " + keyStyle.Render(r.key) + r.value + "\n")
	}
}

func cpuRows() []row {
	rows := []row{{"GOARCH", runtime.GOARCH}}
	switch runtime.GOARCH {
	case "amd64":
		rows = append(rows,
			row{"SSE4.1", fmt.Sprintf("%t", cpu.X86.HasSSE41)},
			row{"AVX", fmt.Sprintf("%t", cpu.X86.HasAVX)},
			row{"AVX512F", fmt.Sprintf("%t", cpu.X86.HasAVX512F)},
		)
	case "arm64":
		rows = append(rows,
			row{"FP", fmt.Sprintf("%t", cpu.ARM64.HasFP)},
			row{"ASIMD", fmt.Sprintf("%t", cpu.ARM64.HasASIMD)},
		)
	}
	return rows
}
