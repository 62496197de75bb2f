package simulation

import (
	"image/color"

	"github.com/meghashyamc/bee/geometry"
)

// TintRGBA converts a tint with channels in [0, 1] to an opaque RGBA color.
// Channels outside the range are clamped and NaN channels become 0.
func TintRGBA(tint Color) color.RGBA {
	return color.RGBA{
		R: channelToByte(tint.X()),
		G: channelToByte(tint.Y()),
		B: channelToByte(tint.Z()),
		A: 255,
	}
}

func channelToByte(c geometry.FloatingPoint[float32]) uint8 {
	if !c.Greater(geometry.NewFloatingPoint[float32](0)) {
		return 0
	}
	if c.GreaterOrEqual(geometry.NewFloatingPoint[float32](1)) {
		return 255
	}
	return uint8(c.Value() * 255)
}
