package field

import "math"

// edgeOpacityScale keeps even zero-distance edges translucent.
const edgeOpacityScale = 0.8

// Edge connects particles I and J with a distance-derived opacity.
type Edge struct {
	I, J    int
	Opacity float64
}

// buildGraph emits an edge for every unordered pair closer than lineDistance,
// with opacity (1 - d/lineDistance) * 0.8. The pass is deliberately O(n²);
// particle counts stay small enough that a spatial index would not pay off.
func buildGraph(particles []Particle, lineDistance float64) []Edge {
	var edges []Edge
	for i := 0; i < len(particles); i++ {
		for j := i + 1; j < len(particles); j++ {
			d := math.Hypot(particles[i].X-particles[j].X, particles[i].Y-particles[j].Y)
			if d < lineDistance {
				edges = append(edges, Edge{
					I:       i,
					J:       j,
					Opacity: (1 - d/lineDistance) * edgeOpacityScale,
				})
			}
		}
	}
	return edges
}
