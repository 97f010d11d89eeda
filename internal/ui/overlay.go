//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"pixelgarden/internal/sims/garden"
)

// Overlay draws the brush cursor over the hovered cell and an inspector
// readout of that cell's attributes.
type Overlay struct {
	world *garden.World
	pixel *ebiten.Image
}

// NewOverlay constructs an overlay bound to the world being displayed.
func NewOverlay(world *garden.World) *Overlay {
	px := ebiten.NewImage(1, 1)
	px.Fill(color.White)
	return &Overlay{world: world, pixel: px}
}

// Draw highlights the cell at (cellX, cellY) and prints its attributes in
// the bottom-left corner. Out-of-bounds positions draw nothing.
func (o *Overlay) Draw(screen *ebiten.Image, cellX, cellY, scale int, brush color.RGBA) {
	if o == nil {
		return
	}
	g := o.world.Grid()
	i := g.Index(cellX, cellY)
	if i == garden.None {
		return
	}
	if scale <= 0 {
		scale = 1
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	op.GeoM.Translate(float64(cellX*scale), float64(cellY*scale))
	brush.A = 110
	op.ColorScale.ScaleWithColor(brush)
	screen.DrawImage(o.pixel, op)

	info := fmt.Sprintf("(%d,%d) %s", cellX, cellY, g.Type[i])
	if g.Type[i] != garden.CellAir {
		info += fmt.Sprintf("/%s  w:%d e:%d n:%d",
			g.State[i], g.Water[i], g.Energy[i], g.Nutrient[i])
	}
	size := o.world.Size()
	text.Draw(screen, info, basicfont.Face7x13, 4, size.H*scale-4, color.RGBA{R: 235, G: 235, B: 235, A: 255})
}
