package field

import "image/color"

// Surface is the 2D drawing target the engine renders into. Implementations
// wrap whatever the host provides (an ebiten image, a test recorder).
//
// Size is read from the engine's resize-debounce goroutine while the host
// may be mutating the surface, so implementations must synchronize Size
// with any mutation of their dimensions.
type Surface interface {
	// Size reports the current pixel dimensions.
	Size() (width, height float64)
	// Clear wipes the whole surface.
	Clear()
	// FillCircle draws a filled disc.
	FillCircle(x, y, r float64, c color.Color)
	// StrokeLine draws a line of the given stroke width.
	StrokeLine(x1, y1, x2, y2, width float64, c color.Color)
}

// render draws one tick's worth of state: particles first, edges over them.
func render(s Surface, cfg Config, pal palette, particles []Particle, edges []Edge) {
	s.Clear()
	if cfg.ShowParticles {
		for i := range particles {
			s.FillCircle(particles[i].X, particles[i].Y, particles[i].Radius, pal.particle)
		}
	}
	for _, e := range edges {
		a := particles[e.I]
		b := particles[e.J]
		s.StrokeLine(a.X, a.Y, b.X, b.Y, cfg.LineWidth, pal.edgeColor(e.Opacity))
	}
}
