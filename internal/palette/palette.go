// Package palette maps true-color samples onto the xterm 256-color palette.
//
// Indices 0-15 are the terminal's basic colors and are never produced.
// Indices 16-231 form a 6x6x6 color cube and 232-255 a 24-step gray ramp.
package palette

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	cubeBase  = 16
	cubeWhite = 231
	rampBase  = 232
	rampSteps = 24

	// Gray values outside [rampLow, rampHigh] use the cube's black and white
	// so terminals without a true ramp black still render them.
	rampLow  = 8
	rampHigh = 248
)

// Quantize returns the palette index closest in spirit to (r, g, b).
func Quantize(r, g, b uint8) uint8 {
	if r == g && g == b {
		return gray(r)
	}
	return cubeBase + 36*(r/51) + 6*(g/51) + b/51
}

// gray places v on the ramp. The multiply happens before the divide so
// 8..248 spreads across all 24 steps.
func gray(v uint8) uint8 {
	switch {
	case v < rampLow:
		return cubeBase
	case v > rampHigh:
		return cubeWhite
	}
	step := (int(v) - rampLow) * rampSteps / (rampHigh - rampLow + 1)
	return uint8(rampBase + step) //nolint:gosec // step is in [0, 23]
}

// FromColor quantizes any Go color. Alpha is removed before quantizing and a
// fully transparent sample is treated as black.
func FromColor(c color.Color) uint8 {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return Quantize(0, 0, 0)
	}
	r, g, b := cf.RGB255()
	return Quantize(r, g, b)
}

// RGB returns the nominal xterm color for a cube or ramp index.
// Basic colors (0-15) are not defined here and return black.
func RGB(index uint8) colorful.Color {
	switch {
	case index < cubeBase:
		return colorful.Color{}
	case index < rampBase:
		i := int(index) - cubeBase
		return colorful.Color{
			R: cubeLevel(i / 36),
			G: cubeLevel((i / 6) % 6),
			B: cubeLevel(i % 6),
		}
	default:
		v := float64(8+10*(int(index)-rampBase)) / 255
		return colorful.Color{R: v, G: v, B: v}
	}
}

func cubeLevel(n int) float64 {
	if n == 0 {
		return 0
	}
	return float64(55+40*n) / 255
}
