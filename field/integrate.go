package field

import (
	"math"
	"math/rand"
)

// Integration constants.
const (
	damping       = 0.99
	jitter        = 0.05
	pointerForce  = 0.5
	speedClampMul = 2
)

// Pointer is the latest pointer sample in surface-local coordinates.
// Present is false while the pointer is outside the surface.
type Pointer struct {
	X, Y    float64
	Present bool
}

// integrate advances every particle by one tick: pointer repulsion, position
// update, damping, jitter, per-axis speed clamp, boundary reflection.
func integrate(particles []Particle, cfg Config, ptr Pointer, width, height float64, rng *rand.Rand) {
	maxV := speedClampMul * cfg.Speed
	for i := range particles {
		p := &particles[i]

		if cfg.MouseInteraction && ptr.Present {
			dx := p.X - ptr.X
			dy := p.Y - ptr.Y
			d := math.Hypot(dx, dy)
			if d < cfg.MouseRadius {
				force := (cfg.MouseRadius - d) / cfg.MouseRadius
				angle := math.Atan2(dy, dx)
				p.VX += force * pointerForce * math.Cos(angle)
				p.VY += force * pointerForce * math.Sin(angle)
				p.Radius = p.OriginalRadius * (1 + force)
			} else {
				p.Radius = p.OriginalRadius
			}
		} else {
			p.Radius = p.OriginalRadius
		}

		p.X += p.VX
		p.Y += p.VY

		p.VX *= damping
		p.VY *= damping

		// Jitter re-energizes the system so damping never stalls it.
		p.VX += (rng.Float64() - 0.5) * 2 * jitter
		p.VY += (rng.Float64() - 0.5) * 2 * jitter

		p.VX = clamp(p.VX, -maxV, maxV)
		p.VY = clamp(p.VY, -maxV, maxV)

		if p.X < 0 || p.X > width {
			p.VX = -p.VX
			p.X = clamp(p.X, 0, width)
		}
		if p.Y < 0 || p.Y > height {
			p.VY = -p.VY
			p.Y = clamp(p.Y, 0, height)
		}
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
