package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/aquilax/go-perlin"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/tlanglois/particle-net-go/ebitenfield"
	"github.com/tlanglois/particle-net-go/field"
)

const (
	defaultWidth  = 1024
	defaultHeight = 640

	// Background noise parameters
	noiseStep  = 32
	noiseScale = 0.004
	noiseSpeed = 0.08
)

var (
	configPath = flag.String("config", "", "JSON config file to load (missing fields keep defaults)")
	width      = flag.Int("width", defaultWidth, "Window width")
	height     = flag.Int("height", defaultHeight, "Window height")
	particles  = flag.Int("particles", -1, "Override particle count")
)

// Game wires the field engine to Ebitengine: it pumps the scheduler, feeds
// input and visibility signals, and composites the surface over a slow
// Perlin-noise wash.
type Game struct {
	surface *ebitenfield.Surface
	sched   *ebitenfield.FrameScheduler
	handle  *field.Handle

	noise   *perlin.Perlin
	t       float64
	paused  bool
	focused bool

	outsideW, outsideH int
}

func NewGame(cfg field.Config, w, h int) *Game {
	g := &Game{
		surface:  ebitenfield.NewSurface(w, h),
		sched:    &ebitenfield.FrameScheduler{},
		noise:    perlin.NewPerlin(2, 2, 3, time.Now().UnixNano()),
		focused:  true,
		outsideW: w,
		outsideH: h,
	}
	g.handle = field.New(g.surface, g.sched, cfg)
	g.handle.Start()
	return g
}

func (g *Game) Update() error {
	if err := g.handleInput(); err != nil {
		return err
	}

	// Map window focus to the page-visibility signal.
	if focused := ebiten.IsFocused(); focused != g.focused {
		g.focused = focused
		g.handle.PageVisible(focused)
	}

	// Follow window resizes; the handle debounces the reseed itself.
	sw, sh := g.surface.Size()
	if g.outsideW != int(sw) || g.outsideH != int(sh) {
		g.surface.Resize(g.outsideW, g.outsideH)
		g.handle.Resized()
	}

	g.feedPointer()

	g.t += noiseSpeed / 60
	g.sched.RunPending()
	return nil
}

func (g *Game) handleInput() error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
		if g.paused {
			g.handle.Stop()
		} else {
			g.handle.Start()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.handle.Reseed()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := field.SaveConfig("config.json", g.handle.Config()); err != nil {
			log.Printf("save config: %v", err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		cfg, err := field.LoadConfig("config.json")
		if err != nil {
			log.Printf("load config: %v", err)
		} else {
			g.handle.Reconfigure(cfg)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.handle.Destroy()
		return ebiten.Termination
	}
	return nil
}

// feedPointer reports the cursor in surface-local coordinates, or absence
// when it is outside the surface or the window lost focus.
func (g *Game) feedPointer() {
	mx, my := ebiten.CursorPosition()
	w, h := g.surface.Size()
	if g.focused && mx >= 0 && my >= 0 && float64(mx) <= w && float64(my) <= h {
		g.handle.PointerMoved(float64(mx), float64(my))
	} else {
		g.handle.PointerLeft()
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawBackground(screen)
	screen.DrawImage(g.surface.Image(), nil)

	status := fmt.Sprintf("particles: %d  running: %v  fps: %.0f  [Space] pause  [R] reseed  [S/L] save/load config",
		g.handle.Config().ParticleCount, g.handle.Running(), ebiten.ActualFPS())
	ebitenutil.DebugPrintAt(screen, status, 8, 8)
}

// drawBackground fills the screen with a coarse, slowly drifting noise wash.
func (g *Game) drawBackground(screen *ebiten.Image) {
	w := screen.Bounds().Dx()
	h := screen.Bounds().Dy()
	for y := 0; y < h; y += noiseStep {
		for x := 0; x < w; x += noiseStep {
			n := g.noise.Noise3D(float64(x)*noiseScale, float64(y)*noiseScale, g.t)
			lum := uint8(12 + 10*(n+1))
			c := color.RGBA{R: lum / 2, G: lum / 2, B: lum, A: 255}
			vector.DrawFilledRect(screen, float32(x), float32(y), noiseStep, noiseStep, c, false)
		}
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.outsideW = outsideWidth
	g.outsideH = outsideHeight
	return outsideWidth, outsideHeight
}

func main() {
	flag.Parse()

	cfg := field.DefaultConfig()
	if *configPath != "" {
		loaded, err := field.LoadConfig(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		cfg = loaded
	}
	if *particles >= 0 {
		cfg.ParticleCount = *particles
	}

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle("Particle Net")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)

	game := NewGame(cfg, *width, *height)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
