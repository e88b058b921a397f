package render

import (
	"image/color"
	"math"

	"fortio.org/safecast"
)

// HueColor maps a phase in [0, 1) onto a smooth, always-lit rainbow. Each channel
// is a phase-shifted |sin| kept in [0.2, 1] so no hue ever goes black.
func HueColor(h float64) color.NRGBA {
	return RGB(
		math.Abs(math.Sin(h*math.Pi))*0.8+0.2,
		math.Abs(math.Sin((h+0.33)*math.Pi))*0.8+0.2,
		math.Abs(math.Sin((h+0.67)*math.Pi))*0.8+0.2,
	)
}

// RGB builds an opaque colour from channels in [0, 1]; out of range values are clamped.
func RGB(r, g, b float64) color.NRGBA {
	return color.NRGBA{R: channel(r), G: channel(g), B: channel(b), A: 255}
}

// Shade scales the colour channels of c by k in [0, 1].
func Shade(c color.NRGBA, k float64) color.NRGBA {
	return RGB(float64(c.R)/255*k, float64(c.G)/255*k, float64(c.B)/255*k)
}

func channel(v float64) uint8 {
	return safecast.MustRound[uint8](math.Max(0, math.Min(1, v)) * 255)
}
