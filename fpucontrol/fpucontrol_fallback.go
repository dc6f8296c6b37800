//go:build !amd64

package fpucontrol

// Supported is false: only the x87 FPU exposes this control word. The Word
// constants and operations do not exist here; referencing them is a
// compile error, which is the capability check.
const Supported = false
