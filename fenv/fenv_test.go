//go:build amd64 || arm64

package fenv

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lockAndRestore pins the test to its OS thread (the rounding mode is
// per-thread state) and puts the entry mode back when the test ends.
func lockAndRestore(t *testing.T) {
	t.Helper()
	runtime.LockOSThread()
	prev := Rounding()
	t.Cleanup(func() {
		SetRounding(prev)
		runtime.UnlockOSThread()
	})
}

func TestRoundingRoundTrip(t *testing.T) {
	lockAndRestore(t)
	for _, mode := range RoundingModes() {
		got := SetRounding(mode)
		require.Equal(t, mode, got, "SetRounding(%s) returned %s", mode, got)
		assert.Equal(t, mode, Rounding(), "Rounding() after SetRounding(%s)", mode)
	}
}

func TestSetRoundingIdempotent(t *testing.T) {
	lockAndRestore(t)
	for _, mode := range RoundingModes() {
		first := SetRounding(mode)
		second := SetRounding(mode)
		assert.Equal(t, first, second, "repeated SetRounding(%s) disagreed", mode)
		assert.Equal(t, mode, second)
	}
}

func TestSetRoundingInvalidIsNoOp(t *testing.T) {
	lockAndRestore(t)
	require.Equal(t, ToNearest, SetRounding(ToNearest))

	// Bit 0 is outside the rounding field on every supported GOARCH. The
	// only rejection signal is the returned, unchanged mode.
	const bogus = RoundingMode(0x1)
	assert.Equal(t, ToNearest, SetRounding(bogus))
	assert.Equal(t, ToNearest, Rounding())
}

func TestRoundDownThenQuery(t *testing.T) {
	lockAndRestore(t)
	SetRounding(ToNearest)
	SetRounding(Downward)
	assert.Equal(t, Downward, Rounding())
}

func TestRoundUpTwiceSameResult(t *testing.T) {
	lockAndRestore(t)
	first := SetRounding(Upward)
	second := SetRounding(Upward)
	assert.Equal(t, first, second)
	assert.Equal(t, Upward, second)
}

func TestWithRounding(t *testing.T) {
	lockAndRestore(t)
	SetRounding(ToNearest)
	WithRounding(TowardZero, func() {
		assert.Equal(t, TowardZero, Rounding())
	})
	assert.Equal(t, ToNearest, Rounding())
}

func TestWithRoundingRestoresOnPanic(t *testing.T) {
	lockAndRestore(t)
	SetRounding(ToNearest)
	assert.Panics(t, func() {
		WithRounding(Upward, func() { panic("inner") })
	})
	assert.Equal(t, ToNearest, Rounding())
}

func TestRoundingModeStrings(t *testing.T) {
	assert.Equal(t, "to-nearest", ToNearest.String())
	assert.Equal(t, "downward", Downward.String())
	assert.Equal(t, "upward", Upward.String())
	assert.Equal(t, "toward-zero", TowardZero.String())
	assert.Contains(t, RoundingMode(0x1).String(), "RoundingMode")
}

func TestRoundingModesEnumeratesAll(t *testing.T) {
	modes := RoundingModes()
	require.Len(t, modes, 4)
	seen := make(map[RoundingMode]bool)
	for _, m := range modes {
		assert.False(t, seen[m], "duplicate mode %s", m)
		seen[m] = true
	}
	assert.True(t, seen[ToNearest])
	assert.True(t, seen[TowardZero])
}
