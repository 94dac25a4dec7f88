package field

import "math/rand"

// Particle is a single point of the field. Particles are owned by their
// handle and only ever touched inside a tick.
type Particle struct {
	X, Y           float64
	VX, VY         float64
	Radius         float64
	OriginalRadius float64
}

// seed produces exactly cfg.ParticleCount particles scattered uniformly over
// the surface. Velocities start in [-speed/2, speed/2] per axis and radii in
// [1, particleRadius+1].
func seed(cfg Config, width, height float64, rng *rand.Rand) []Particle {
	particles := make([]Particle, cfg.ParticleCount)
	for i := range particles {
		r := 1 + rng.Float64()*cfg.ParticleRadius
		particles[i] = Particle{
			X:              rng.Float64() * width,
			Y:              rng.Float64() * height,
			VX:             (rng.Float64() - 0.5) * cfg.Speed,
			VY:             (rng.Float64() - 0.5) * cfg.Speed,
			Radius:         r,
			OriginalRadius: r,
		}
	}
	return particles
}
