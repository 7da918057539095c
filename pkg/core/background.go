package core

import "image/color"

// GradientBackground is a debug gradient over pixel coordinates:
// red grows with x, blue grows with y.
type GradientBackground struct{}

// ColorAt returns (floor(0.3x), 0, floor(0.3y)) clipped to 8 bits
func (GradientBackground) ColorAt(x, y int) color.RGBA {
	return color.RGBA{
		R: clampChannel(0.3 * float64(x)),
		G: 0,
		B: clampChannel(0.3 * float64(y)),
		A: 255,
	}
}

// SolidBackground fills every missed pixel with one color
type SolidBackground struct {
	Color color.RGBA
}

// ColorAt returns the solid color
func (b SolidBackground) ColorAt(x, y int) color.RGBA {
	return b.Color
}

// NewSolidBackground creates an opaque solid background
func NewSolidBackground(r, g, b uint8) SolidBackground {
	return SolidBackground{Color: color.RGBA{R: r, G: g, B: b, A: 255}}
}

// clampChannel truncates a value to an 8-bit channel, saturating at 0 and 255
func clampChannel(v float64) uint8 {
	return uint8(max(0, min(255, v)))
}

// NormalToColor maps each component of a unit normal from [-1,1] to [0,255]
func NormalToColor(normal Vec3) color.RGBA {
	c := normal.AddScalar(1).Multiply(0.5 * 255).Clamp(0, 255)
	return color.RGBA{R: uint8(c.X), G: uint8(c.Y), B: uint8(c.Z), A: 255}
}
