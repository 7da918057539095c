package core

import "image/color"

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// Background provides the color of pixels whose ray hits nothing
type Background interface {
	ColorAt(x, y int) color.RGBA
}
