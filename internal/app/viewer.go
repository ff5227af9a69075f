//go:build ebiten

package app

import (
	"time"

	"rnalattice/internal/core"
	"rnalattice/internal/lattice"
	"rnalattice/internal/render"
	"rnalattice/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a lattice.Board to the ebiten.Game interface, driving one
// TryMove (and, at the configured rate, one TryBond) per unpaused tick.
type Game struct {
	board   *lattice.Board
	painter *render.BoardPainter
	hud     *ui.HUD
	overlay *ui.Overlay

	rng         *core.RNG
	stepper     *core.FixedStep
	movesPerSec int
	seed        int64
	xSize       int
	ySize       int
	zSize       int
	density     float64
	bondEvery   int
	tickCount   int64
	scale       int
	hudWidth    int
	z           int
	paused      bool
	tickOnce    bool
}

// New constructs a Game over a freshly seeded board of the given size.
// movesPerSec, if positive, caps how many tryMove calls happen per real
// second independent of the render frame rate; 0 advances once per frame.
func New(xSize, ySize, zSize int, density float64, bondEvery, scale, hudWidth int, seed int64, movesPerSec int) *Game {
	g := &Game{
		xSize:     xSize,
		ySize:     ySize,
		zSize:     zSize,
		scale:     scale,
		hudWidth:  hudWidth,
		density:   density,
		bondEvery: bondEvery,
	}
	g.SetMovesPerSec(movesPerSec)
	g.Reset(seed)
	return g
}

// SetMovesPerSec configures real-time throttling of the simulation rate.
func (g *Game) SetMovesPerSec(movesPerSec int) {
	g.movesPerSec = movesPerSec
	if movesPerSec > 0 {
		g.stepper = core.NewFixedStep(movesPerSec)
	} else {
		g.stepper = nil
	}
}

// Reset rebuilds the board from scratch with the given seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.tickCount = 0
	g.tickOnce = false
	g.rng = core.NewRNG(seed)
	if g.movesPerSec > 0 {
		g.stepper = core.NewFixedStep(g.movesPerSec)
	}

	b := lattice.New(g.xSize, g.ySize, g.zSize)
	b.AddBases(g.density, g.rng)
	g.board = b

	g.painter = render.NewBoardPainter(b.XSize, b.YSize)
	g.hud = ui.NewHUD(b, g.hudWidth)
	g.overlay = ui.NewOverlay(b, g.z, g.scale)
}

// Update handles per-frame input and advances the simulation.
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

	g.hud.Update(g.board.XSize*g.scale)
	g.overlay.Update()

	if (!g.paused) || g.tickOnce {
		if g.stepper == nil || g.stepper.ShouldStep() || g.tickOnce {
			g.board.TryMove(g.rng)
			g.tickCount++
			if g.bondEvery > 0 && g.tickCount%int64(g.bondEvery) == 0 {
				g.board.TryBond(g.rng)
			}
		}
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current board slice plus overlay and HUD panel.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.board, g.z, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.board.XSize*g.scale, g.scale)
}

// Layout returns the logical screen size: the board slice plus the HUD panel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.painter.Size()
	return w*g.scale + g.hudWidth, h * g.scale
}
