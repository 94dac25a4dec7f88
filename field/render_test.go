package field

import (
	"image/color"
	"testing"
)

func TestRenderDrawsParticlesThenEdges(t *testing.T) {
	cfg := DefaultConfig()
	surface := &recordingSurface{w: 800, h: 600}
	particles := []Particle{
		{X: 0, Y: 0, Radius: 2},
		{X: 50, Y: 0, Radius: 2},
	}
	edges := buildGraph(particles, cfg.LineDistance)

	render(surface, cfg, newPalette(cfg), particles, edges)

	want := []string{"clear", "circle", "circle", "line"}
	if len(surface.ops) != len(want) {
		t.Fatalf("ops = %v, want %v", surface.ops, want)
	}
	for i := range want {
		if surface.ops[i] != want[i] {
			t.Fatalf("ops = %v, want %v", surface.ops, want)
		}
	}
}

func TestRenderHidesParticlesButKeepsEdges(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ShowParticles = false
	surface := &recordingSurface{w: 800, h: 600}
	particles := []Particle{
		{X: 0, Y: 0, Radius: 2},
		{X: 50, Y: 0, Radius: 2},
	}

	render(surface, cfg, newPalette(cfg), particles, buildGraph(particles, cfg.LineDistance))

	for _, op := range surface.ops {
		if op == "circle" {
			t.Fatal("particle disc drawn with ShowParticles disabled")
		}
	}
	if len(surface.lines) != 1 {
		t.Fatalf("drew %d edges, want 1", len(surface.lines))
	}
}

func TestRenderEdgeUsesComputedOpacity(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LineColor = "rgba(100, 100, 100, 0.9)"
	cfg.LineWidth = 2.5
	surface := &recordingSurface{w: 800, h: 600}
	particles := []Particle{
		{X: 0, Y: 0, Radius: 2},
		{X: 75, Y: 0, Radius: 2}, // opacity (1 - 75/150) * 0.8 = 0.4
	}

	render(surface, cfg, newPalette(cfg), particles, buildGraph(particles, cfg.LineDistance))

	if len(surface.lines) != 1 {
		t.Fatalf("drew %d lines, want 1", len(surface.lines))
	}
	line := surface.lines[0]
	if line.width != 2.5 {
		t.Errorf("line width = %f, want 2.5", line.width)
	}
	want := color.RGBA{100, 100, 100, 102} // 0.4 * 255, rounded
	if line.c != want {
		t.Errorf("line color = %v, want %v", line.c, want)
	}
}
