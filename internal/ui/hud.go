//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"pixelgarden/internal/core"
)

// DefaultPanelWidth is the pixel width reserved for the parameter panel.
const DefaultPanelWidth = 230

const (
	rowHeight  = 14
	groupGap   = 8
	panelPad   = 8
	buttonSize = 11
)

type paramRow struct {
	param     core.Parameter
	y         int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// HUD renders the tunable-parameter panel to the right of the simulation view
// and applies click adjustments through the sim's parameter setters.
type HUD struct {
	sim   core.Sim
	width int

	panel      *ebiten.Image
	lastHeight int
	pixel      *ebiten.Image

	rows    []paramRow
	offsetX int

	intSetter   core.IntParameterSetter
	floatSetter core.FloatParameterSetter
}

// NewHUD constructs a HUD for the provided simulation.
func NewHUD(sim core.Sim, width int) *HUD {
	if width <= 0 {
		width = DefaultPanelWidth
	}
	h := &HUD{sim: sim, width: width}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	if setter, ok := sim.(core.IntParameterSetter); ok {
		h.intSetter = setter
	}
	if setter, ok := sim.(core.FloatParameterSetter); ok {
		h.floatSetter = setter
	}
	return h
}

// Width reports the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update rebuilds the row layout from the sim's current parameter snapshot
// and handles panel clicks. offsetX is where the panel starts on screen.
func (h *HUD) Update(offsetX int) {
	if h == nil {
		return
	}
	h.offsetX = offsetX

	provider, ok := h.sim.(core.ParametersProvider)
	if !ok {
		h.rows = h.rows[:0]
		return
	}
	h.layoutRows(provider.Parameters())
	h.handleClick()
}

func (h *HUD) layoutRows(snap core.ParameterSnapshot) {
	h.rows = h.rows[:0]
	y := panelPad + rowHeight // leave a line for the title
	for _, group := range snap.Groups {
		y += groupGap + rowHeight
		for _, param := range group.Params {
			minusX := h.width - 2*(buttonSize+4) - panelPad
			plusX := h.width - (buttonSize + 4) - panelPad
			h.rows = append(h.rows, paramRow{
				param:     param,
				y:         y,
				minusRect: image.Rect(minusX, y-buttonSize, minusX+buttonSize, y),
				plusRect:  image.Rect(plusX, y-buttonSize, plusX+buttonSize, y),
			})
			y += rowHeight
		}
	}
}

func (h *HUD) handleClick() {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.offsetX {
		return
	}
	px := mx - h.offsetX
	for i := range h.rows {
		row := &h.rows[i]
		switch {
		case image.Pt(px, my).In(row.minusRect):
			h.adjust(row.param, -1)
			return
		case image.Pt(px, my).In(row.plusRect):
			h.adjust(row.param, 1)
			return
		}
	}
}

// adjust nudges a parameter one step in the given direction. Holding shift
// multiplies the step by ten. Keys without a matching setter are ignored.
func (h *HUD) adjust(param core.Parameter, direction int) {
	step := 1
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		step = 10
	}
	switch param.Type {
	case core.ParamTypeInt:
		if h.intSetter == nil {
			return
		}
		value, err := strconv.Atoi(param.Value)
		if err != nil {
			return
		}
		h.intSetter.SetIntParameter(param.Key, value+direction*step)
	case core.ParamTypeFloat:
		if h.floatSetter == nil {
			return
		}
		value, err := strconv.ParseFloat(param.Value, 64)
		if err != nil {
			return
		}
		h.floatSetter.SetFloatParameter(param.Key, value+float64(direction*step)*0.01)
	}
}

// Draw paints the panel anchored at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	text.Draw(h.panel, h.sim.Name()+" parameters", face, panelPad, panelPad+rowHeight-2, color.RGBA{R: 230, G: 230, B: 235, A: 255})

	if provider, ok := h.sim.(core.ParametersProvider); ok {
		// Group headers are re-derived from the snapshot so they stay in
		// sync with the row layout built in Update.
		y := panelPad + rowHeight
		for _, grp := range provider.Parameters().Groups {
			y += groupGap + rowHeight
			text.Draw(h.panel, grp.Name, face, panelPad, y-rowHeight-2, color.RGBA{R: 150, G: 170, B: 150, A: 255})
			y += rowHeight * len(grp.Params)
		}
	}

	valueColor := color.RGBA{R: 210, G: 210, B: 180, A: 255}
	labelColor := color.RGBA{R: 170, G: 175, B: 185, A: 255}
	for i := range h.rows {
		row := &h.rows[i]
		if row.y >= height {
			break
		}
		text.Draw(h.panel, row.param.Label, face, panelPad, row.y-2, labelColor)
		valueX := row.minusRect.Min.X - 7*len(row.param.Value) - 6
		text.Draw(h.panel, row.param.Value, face, valueX, row.y-2, valueColor)
		h.drawButton(row.minusRect, "-")
		h.drawButton(row.plusRect, "+")
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawButton(r image.Rectangle, glyph string) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.Dx()), float64(r.Dy()))
	op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
	op.ColorScale.ScaleWithColor(color.RGBA{R: 45, G: 50, B: 60, A: 255})
	h.panel.DrawImage(h.pixel, op)
	text.Draw(h.panel, glyph, basicfont.Face7x13, r.Min.X+3, r.Max.Y-2, color.RGBA{R: 220, G: 220, B: 220, A: 255})
}
