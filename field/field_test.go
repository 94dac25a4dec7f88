package field

import (
	"image/color"
	"math/rand"
)

// recordingSurface captures draw calls for assertions.
type recordingSurface struct {
	w, h   float64
	ops    []string
	clears int
	lines  []lineOp
}

type lineOp struct {
	x1, y1, x2, y2 float64
	width          float64
	c              color.Color
}

func (s *recordingSurface) Size() (float64, float64) { return s.w, s.h }

func (s *recordingSurface) Clear() {
	s.clears++
	s.ops = append(s.ops, "clear")
}

func (s *recordingSurface) FillCircle(x, y, r float64, c color.Color) {
	s.ops = append(s.ops, "circle")
}

func (s *recordingSurface) StrokeLine(x1, y1, x2, y2, width float64, c color.Color) {
	s.ops = append(s.ops, "line")
	s.lines = append(s.lines, lineOp{x1, y1, x2, y2, width, c})
}

// manualScheduler lets tests drive ticks one at a time.
type manualScheduler struct {
	pending func()
}

func (m *manualScheduler) Schedule(tick func()) { m.pending = tick }
func (m *manualScheduler) Cancel()              { m.pending = nil }

// step runs the pending tick, reporting whether there was one.
func (m *manualScheduler) step() bool {
	tick := m.pending
	m.pending = nil
	if tick == nil {
		return false
	}
	tick()
	return true
}

func testRand() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func testHandle(cfg Config, w, h float64) (*Handle, *recordingSurface, *manualScheduler) {
	surface := &recordingSurface{w: w, h: h}
	sched := &manualScheduler{}
	return newHandle(surface, sched, cfg, testRand()), surface, sched
}
