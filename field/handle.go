// Package field implements an ambient particle field: points drifting inside
// a bounded surface, connected by proximity lines, repelled by the pointer
// and paused while not visible. The engine is host-agnostic; it draws through
// the Surface interface and is driven by a Scheduler the host pumps once per
// frame.
package field

import (
	"math/rand"
	"sync"
	"time"
)

// IntersectionThreshold is the viewport visibility fraction at or above
// which the surface counts as intersecting.
const IntersectionThreshold = 0.1

// resizeDebounce coalesces bursts of resize signals into one reseed.
const resizeDebounce = 200 * time.Millisecond

// Handle owns one particle field: its config, particle collection, pointer
// state and run state. Created by New, torn down by Destroy.
//
// The engine itself is single-threaded per tick, but the resize debounce
// timer fires on its own goroutine and input events may too, so all state is
// guarded by one mutex.
type Handle struct {
	mu  sync.Mutex
	rng *rand.Rand

	cfg Config
	pal palette

	surface Surface
	sched   Scheduler

	particles     []Particle
	pointer       Pointer
	width, height float64

	enabled      bool // Start called and Stop not
	running      bool
	visible      bool
	intersecting bool
	destroyed    bool
	inert        bool

	resizeTimer *time.Timer
	// resizeGen invalidates timer fires that raced with a newer Resized:
	// a fire whose generation is stale is discarded, so each resize burst
	// lands exactly one reseed.
	resizeGen uint64
	debounce  time.Duration
}

// New creates a handle bound to the given surface and scheduler. A nil
// surface or scheduler yields an inert handle on which every call is a
// no-op; creation never fails.
func New(surface Surface, sched Scheduler, cfg Config) *Handle {
	return newHandle(surface, sched, cfg, rand.New(rand.NewSource(time.Now().UnixNano())))
}

func newHandle(surface Surface, sched Scheduler, cfg Config, rng *rand.Rand) *Handle {
	if surface == nil || sched == nil {
		return &Handle{inert: true}
	}
	h := &Handle{
		rng:     rng,
		cfg:     sanitize(cfg),
		surface: surface,
		sched:   sched,
		// Visibility and intersection default to true so a host without
		// those signals runs the engine unconditionally.
		visible:      true,
		intersecting: true,
		debounce:     resizeDebounce,
	}
	h.pal = newPalette(h.cfg)
	h.width, h.height = surface.Size()
	h.particles = seed(h.cfg, h.width, h.height, h.rng)
	return h
}

// Start makes the handle eligible to run. It transitions to Running
// immediately when the surface is intersecting and the page visible.
func (h *Handle) Start() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.inert || h.destroyed {
		return
	}
	h.enabled = true
	h.evaluateLocked()
}

// Stop halts tick production and cancels any pending tick.
func (h *Handle) Stop() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.inert || h.destroyed {
		return
	}
	h.enabled = false
	h.evaluateLocked()
}

// Destroy tears the handle down. All subsequent calls are no-ops.
func (h *Handle) Destroy() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.inert || h.destroyed {
		return
	}
	h.destroyed = true
	h.enabled = false
	h.running = false
	h.sched.Cancel()
	if h.resizeTimer != nil {
		h.resizeTimer.Stop()
		h.resizeTimer = nil
	}
	h.particles = nil
}

// Running reports whether ticks are currently being produced.
func (h *Handle) Running() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.running
}

// Config returns the active configuration.
func (h *Handle) Config() Config {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.cfg
}

// Reconfigure swaps the configuration and reseeds the whole collection.
func (h *Handle) Reconfigure(cfg Config) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.inert || h.destroyed {
		return
	}
	h.cfg = sanitize(cfg)
	h.pal = newPalette(h.cfg)
	h.particles = seed(h.cfg, h.width, h.height, h.rng)
}

// Reseed discards and replaces the particle collection.
func (h *Handle) Reseed() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.inert || h.destroyed {
		return
	}
	h.particles = seed(h.cfg, h.width, h.height, h.rng)
}

// PointerMoved records a pointer sample in surface-local coordinates. The
// sample is consumed by the next tick.
func (h *Handle) PointerMoved(x, y float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.inert || h.destroyed {
		return
	}
	h.pointer = Pointer{X: x, Y: y, Present: true}
}

// PointerLeft marks the pointer as absent.
func (h *Handle) PointerLeft() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.inert || h.destroyed {
		return
	}
	h.pointer.Present = false
}

// PageVisible feeds the host's page-visibility signal. Going hidden stops
// tick production; becoming visible resumes it when the other conditions
// hold.
func (h *Handle) PageVisible(visible bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.inert || h.destroyed {
		return
	}
	h.visible = visible
	h.evaluateLocked()
}

// Intersection feeds the host's viewport-intersection signal with the
// currently visible fraction of the surface.
func (h *Handle) Intersection(fraction float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.inert || h.destroyed {
		return
	}
	h.intersecting = fraction >= IntersectionThreshold
	h.evaluateLocked()
}

// Resized signals that the surface's container changed size. Signals are
// debounced; after the quiet period the surface is re-measured and the
// collection reseeded. The run state is left untouched.
func (h *Handle) Resized() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.inert || h.destroyed {
		return
	}
	h.resizeGen++
	gen := h.resizeGen
	if h.resizeTimer != nil {
		h.resizeTimer.Stop()
	}
	h.resizeTimer = time.AfterFunc(h.debounce, func() { h.applyResize(gen) })
}

func (h *Handle) applyResize(gen uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if gen != h.resizeGen {
		// A newer Resized superseded this fire while it waited on the
		// lock; its own timer delivers the reseed.
		return
	}
	h.resizeTimer = nil
	if h.inert || h.destroyed {
		return
	}
	h.width, h.height = h.surface.Size()
	h.particles = seed(h.cfg, h.width, h.height, h.rng)
}

// evaluateLocked reconciles the run state with the gating conditions and
// schedules or cancels the tick accordingly.
func (h *Handle) evaluateLocked() {
	want := h.enabled && h.visible && h.intersecting && !h.destroyed
	switch {
	case want && !h.running:
		h.running = true
		h.sched.Schedule(h.tick)
	case !want && h.running:
		h.running = false
		h.sched.Cancel()
	}
}

// tick runs one Integrator -> Graph Builder -> Render pass and schedules the
// next one. The running flag is re-checked at the top so a canceled tick
// that was already in flight does nothing.
func (h *Handle) tick() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.inert || h.destroyed || !h.running {
		return
	}
	integrate(h.particles, h.cfg, h.pointer, h.width, h.height, h.rng)
	edges := buildGraph(h.particles, h.cfg.LineDistance)
	render(h.surface, h.cfg, h.pal, h.particles, edges)
	h.sched.Schedule(h.tick)
}
