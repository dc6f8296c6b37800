//go:build !amd64 && !arm64

package fenv

// Supported and PrecisionSupported are false: this build target has no
// floating-point environment backend. The mode constants and operations do
// not exist here; referencing them is a compile error, which is the
// capability check.
const (
	Supported          = false
	PrecisionSupported = false
)
