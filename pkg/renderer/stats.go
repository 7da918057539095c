package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels       int           // Total number of pixels rendered
	HitPixels         int           // Pixels whose ray hit at least one shape
	IntersectionTests int           // Shape intersection queries performed
	Tiles             int           // Number of tiles the image was split into
	Workers           int           // Number of workers used
	Duration          time.Duration // Wall time of the render
}

// MissPixels returns the number of pixels showing the background
func (s RenderStats) MissPixels() int {
	return s.TotalPixels - s.HitPixels
}

// HitRatio returns the fraction of pixels that hit a shape
func (s RenderStats) HitRatio() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	return float64(s.HitPixels) / float64(s.TotalPixels)
}

// merge adds the per-tile counters of other into s
func (s *RenderStats) merge(other RenderStats) {
	s.TotalPixels += other.TotalPixels
	s.HitPixels += other.HitPixels
	s.IntersectionTests += other.IntersectionTests
}
