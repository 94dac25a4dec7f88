// Package ebitenfield adapts the field engine to Ebitengine: an offscreen
// image as the drawing surface and a per-frame scheduler pumped from the
// game's Update.
package ebitenfield

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Surface renders the field into an offscreen ebiten image that the host
// composites during Draw. The engine reads Size from its resize-debounce
// goroutine while the game goroutine may be resizing, so all state is
// mutex-guarded.
type Surface struct {
	mu     sync.Mutex
	canvas *ebiten.Image
	w, h   int
}

// NewSurface allocates an offscreen surface of the given pixel size.
func NewSurface(width, height int) *Surface {
	return &Surface{
		canvas: ebiten.NewImage(width, height),
		w:      width,
		h:      height,
	}
}

// Size reports the surface dimensions in pixels.
func (s *Surface) Size() (float64, float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return float64(s.w), float64(s.h)
}

// Clear wipes the canvas to transparent so the host background shows
// through.
func (s *Surface) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.canvas.Clear()
}

// FillCircle draws an antialiased filled disc.
func (s *Surface) FillCircle(x, y, r float64, c color.Color) {
	s.mu.Lock()
	defer s.mu.Unlock()
	vector.DrawFilledCircle(s.canvas, float32(x), float32(y), float32(r), c, true)
}

// StrokeLine draws an antialiased line.
func (s *Surface) StrokeLine(x1, y1, x2, y2, width float64, c color.Color) {
	s.mu.Lock()
	defer s.mu.Unlock()
	vector.StrokeLine(s.canvas, float32(x1), float32(y1), float32(x2), float32(y2), float32(width), c, true)
}

// Image exposes the canvas for compositing.
func (s *Surface) Image() *ebiten.Image {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.canvas
}

// Resize reallocates the canvas. The caller is expected to signal the
// engine's Resized afterwards so particle state follows the new bounds.
func (s *Surface) Resize(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if width == s.w && height == s.h {
		return
	}
	s.canvas.Deallocate()
	s.canvas = ebiten.NewImage(width, height)
	s.w = width
	s.h = height
}

// FrameScheduler holds the single pending tick callback. The game's Update
// calls RunPending once per frame; Schedule from within a running tick
// re-arms it for the next frame.
type FrameScheduler struct {
	mu      sync.Mutex
	pending func()
}

// Schedule replaces the pending callback.
func (f *FrameScheduler) Schedule(tick func()) {
	f.mu.Lock()
	f.pending = tick
	f.mu.Unlock()
}

// Cancel drops the pending callback.
func (f *FrameScheduler) Cancel() {
	f.mu.Lock()
	f.pending = nil
	f.mu.Unlock()
}

// RunPending takes and runs the pending callback, if any. Taking it first
// lets the callback schedule its successor.
func (f *FrameScheduler) RunPending() {
	f.mu.Lock()
	tick := f.pending
	f.pending = nil
	f.mu.Unlock()
	if tick != nil {
		tick()
	}
}
