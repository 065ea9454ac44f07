//go:build ebiten

package app

import (
	"image/color"
	"time"

	"wireworld/internal/core"
	"wireworld/internal/render"
	"wireworld/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 180

type paletteProvider interface {
	Palette() []color.RGBA
}

// Game adapts a core simulation to the ebiten.Game interface. It owns the
// run/pause flag and the step pacing; the sim only advances when told to.
type Game struct {
	sim     core.Sim
	editor  core.Editor
	painter *render.GridPainter
	hud     *ui.HUD
	palette []color.RGBA
	stepper *core.FixedStep

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config) *Game {
	size := sim.Size()
	g := &Game{
		sim:     sim,
		painter: render.NewGridPainter(size.W, size.H),
		hud:     ui.NewHUD(sim, hudWidth),
		stepper: core.NewFixedStep(cfg.Steps),
		scale:   cfg.Scale,
		seed:    cfg.Seed,
	}
	if g.scale <= 0 {
		g.scale = 1
	}
	if e, ok := sim.(core.Editor); ok {
		g.editor = e
	}
	if p, ok := sim.(paletteProvider); ok {
		g.palette = p.Palette()
	} else {
		g.palette = []color.RGBA{{A: 255}, {R: 255, G: 255, B: 255, A: 255}}
	}
	return g
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		if c, ok := g.sim.(core.Clearer); ok {
			c.Clear()
		}
	}

	g.handlePointer()

	// Stepping is paced separately from the frame rate.
	due := g.stepper.ShouldStep()
	if (!g.paused && due) || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}

	g.hud.Update(!g.paused)
	return nil
}

func (g *Game) handlePointer() {
	if g.editor == nil {
		return
	}
	px, py := ebiten.CursorPosition()
	x, y := cellAt(px, py, g.scale)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.editor.ApplyEdit(x, y, core.EditPrimary)
	}
	// Clearing is idempotent, so it follows the cursor while held.
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		g.editor.ApplyEdit(x, y, core.EditSecondary)
	}
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.palette, g.scale)
	g.hud.Draw(screen, g.sim.Size().W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + hudWidth, s.H * g.scale
}

// WindowSize returns the window size matching Layout.
func (g *Game) WindowSize() (int, int) {
	return g.Layout(0, 0)
}
