//go:build ebiten

package app

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"pixelgarden/internal/render"
	"pixelgarden/internal/sims/garden"
	"pixelgarden/internal/ui"
)

// Tool enumerates what the mouse paints into the grid.
type Tool uint8

const (
	ToolWater Tool = iota
	ToolSoil
	ToolSeed
	ToolInsect
	ToolWorm
	ToolDig

	toolCount
)

func (t Tool) String() string {
	switch t {
	case ToolWater:
		return "water"
	case ToolSoil:
		return "soil"
	case ToolSeed:
		return "seed"
	case ToolInsect:
		return "insect"
	case ToolWorm:
		return "worm"
	case ToolDig:
		return "dig"
	default:
		return "unknown"
	}
}

// Game adapts the garden world to the ebiten.Game interface and layers the
// brush/tool input on top of it.
type Game struct {
	world   *garden.World
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay

	scale    int
	paused   bool
	tickOnce bool
	seed     int64

	tool    Tool
	weather bool
}

// New constructs a Game for the provided world.
func New(world *garden.World, scale int, seed int64) *Game {
	size := world.Size()
	return &Game{
		world:   world,
		painter: render.NewGridPainter(size.W, size.H),
		hud:     ui.NewHUD(world, ui.DefaultPanelWidth),
		overlay: ui.NewOverlay(world),
		scale:   scale,
		seed:    seed,
		weather: true,
	}
}

// Reset reinitializes the world state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.world.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
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
	if inpututil.IsKeyJustPressed(ebiten.KeyW) {
		g.weather = !g.weather
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyV) {
		mode := g.world.CycleViewMode()
		log.Printf("view mode: %s", mode)
	}

	for k := ebiten.Key1; k <= ebiten.Key6; k++ {
		if inpututil.IsKeyJustPressed(k) {
			g.tool = Tool(k - ebiten.Key1)
		}
	}

	panelOffset := g.world.Size().W * g.scale
	g.hud.Update(panelOffset)

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		if mx < panelOffset {
			g.paint(mx/g.scale, my/g.scale)
		}
	}

	if (!g.paused) || g.tickOnce {
		if g.weather {
			g.world.Sunlight(0)
			g.world.Rain(0, 0)
		}
		g.world.Step()
		g.tickOnce = false
	}
	return nil
}

func (g *Game) paint(x, y int) {
	switch g.tool {
	case ToolWater:
		g.world.PlaceWater(x, y, 120)
	case ToolSoil:
		g.world.PlaceSoil(x, y, 15, 25)
	case ToolSeed:
		g.world.PlaceSeed(x, y, 100)
	case ToolInsect:
		g.world.PlaceInsect(x, y, 90)
	case ToolWorm:
		g.world.PlaceWorm(x, y, 90)
	case ToolDig:
		g.world.Dig(x, y)
	}
}

// Draw renders the world, the hover overlay, the parameter panel, and a
// one-line status readout.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.world.Cells(), g.world.Palette(), g.scale)

	size := g.world.Size()
	panelOffset := size.W * g.scale
	mx, my := ebiten.CursorPosition()
	if mx >= 0 && mx < panelOffset {
		g.overlay.Draw(screen, mx/g.scale, my/g.scale, g.scale, g.brushColor())
	}
	g.hud.Draw(screen, panelOffset, size.H*g.scale)

	status := fmt.Sprintf("tick %d  tool: %s (1-6)  view: %s (V)  weather: %v (W)",
		g.world.Tick(), g.tool, g.world.ViewMode(), g.weather)
	if g.paused {
		status += "  [paused]"
	}
	ebitenutil.DebugPrint(screen, status)
}

func (g *Game) brushColor() color.RGBA {
	switch g.tool {
	case ToolWater:
		return color.RGBA{R: 80, G: 140, B: 255, A: 255}
	case ToolSoil:
		return color.RGBA{R: 140, G: 105, B: 60, A: 255}
	case ToolSeed:
		return color.RGBA{R: 220, G: 200, B: 110, A: 255}
	case ToolInsect:
		return color.RGBA{R: 70, G: 70, B: 70, A: 255}
	case ToolWorm:
		return color.RGBA{R: 210, G: 140, B: 150, A: 255}
	default:
		return color.RGBA{R: 230, G: 80, B: 80, A: 255}
	}
}

// Layout returns the logical screen size including the parameter panel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.world.Size()
	return s.W*g.scale + g.hud.Width(), s.H * g.scale
}
